// Package observe provides ready-made climb.Observer implementations for
// headless runs: a Recorder that accumulates the distance history and
// run-level bookkeeping (best distance, improvement, distinct local optima),
// a structured-logging observer backed by zap, and a Multi fan-out that
// feeds several observers from one engine.
//
// None of these are required by the search core; they are the library-side
// counterparts of what a visual front end would render (distance-over-time
// plot, live counters, status badge), kept behind the same narrow Observer
// interface so the engine stays independent of them.
package observe
