// Package calc derives body-composition and energy-balance figures. Every
// method is total: bad input yields a zero result and a logged warning, and
// callers treat zero as "unavailable".
package calc

import (
	"math"

	"github.com/saadjs/fitday/internal/logger"
)

// KcalPerKg is the energy density used for body-mass change.
const KcalPerKg = 7700

type Engine struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{log: log.With("component", "calc")}
}

// roundInt rounds half up, so -0.5 becomes 0 and 2.5 becomes 3.
func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}

func round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

func positive(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}
