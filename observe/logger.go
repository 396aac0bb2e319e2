// Package observe - structured-logging observer.
//
// Logger is the headless stand-in for a live view: accepted moves at Debug,
// convergence at Info. The search core itself never logs; everything below
// flows through the Observer seam only.
package observe

import (
	"go.uber.org/zap"

	"github.com/Se7enCodes/tspclimb/tour"
)

// Logger logs engine notifications through a zap logger.
type Logger struct {
	log *zap.Logger
}

// NewLogger wraps l into an observer. A nil l degrades to zap.NewNop(), so
// the zero-config path stays silent rather than panicking.
func NewLogger(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}

	return &Logger{log: l}
}

// OnStep implements climb.Observer.
func (o *Logger) OnStep(st *tour.State, i, j int, accepted bool) {
	if !accepted {
		o.log.Debug("move rejected",
			zap.Int("i", i),
			zap.Int("j", j),
			zap.Float64("distance", st.TotalDistance),
		)

		return
	}
	o.log.Debug("move accepted",
		zap.Int("i", i),
		zap.Int("j", j),
		zap.Float64("distance", st.TotalDistance),
	)
}

// OnConverged implements climb.Observer.
func (o *Logger) OnConverged(st *tour.State, iterations int) {
	o.log.Info("converged",
		zap.Int("iterations", iterations),
		zap.Float64("best_dist", st.TotalDistance),
	)
}
