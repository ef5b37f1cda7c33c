package sfat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Domain is an ordered, evenly spaced sequence of sample points.
type Domain []float64

// Linspace returns n evenly spaced points from start to stop inclusive.
func Linspace(start, stop float64, n int) (Domain, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidDomain, n)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidDomain, start, stop)
	}
	if start >= stop {
		return nil, fmt.Errorf("%w: start %g must be below stop %g", ErrInvalidDomain, start, stop)
	}
	d := make(Domain, n)
	floats.Span(d, start, stop)
	d[n-1] = stop
	return d, nil
}

// Start returns the first point.
func (d Domain) Start() float64 { return d[0] }

// Stop returns the last point.
func (d Domain) Stop() float64 { return d[len(d)-1] }
