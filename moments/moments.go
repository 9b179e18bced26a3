package moments

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/vibrolab/vibrostats/bands"
	"github.com/vibrolab/vibrostats/psd"
)

// Spectral computes spectral moments of the requested orders for every band
// the policy defines on the curve. The result has one row per band and one
// column per order, in the order given.
//
// The i-th spectral moment of a band is the trapezoidal integral of
// (2πf)^i · S(f) over the band's frequency samples. Orders may be zero or
// fractional: order 0 is the band area (variance), order 2 relates to the
// mean-square frequency and order 4 to curvature.
func Spectral(c *psd.Curve, p bands.Policy, orders []float64) ([][]float64, error) {
	for _, order := range orders {
		if math.IsNaN(order) || math.IsInf(order, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, order)
		}
	}

	bounds, err := bands.Split(c, p)
	if err != nil {
		return nil, err
	}

	ranges := bands.Ranges(bounds)
	result := make([][]float64, len(ranges))
	for k, r := range ranges {
		freqs := c.Frequencies[r[0] : r[1]+1]
		values := c.Values[r[0] : r[1]+1]

		row := make([]float64, len(orders))
		for j, order := range orders {
			row[j] = moment(freqs, values, order)
		}
		result[k] = row
	}

	return result, nil
}

// moment integrates (2πf)^i · S(f) over the given band samples. A band of
// fewer than two samples has zero area.
func moment(freqs, values []float64, order float64) float64 {
	if len(freqs) < 2 {
		return 0
	}

	integrand := make([]float64, len(freqs))
	for n, f := range freqs {
		integrand[n] = math.Pow(2*math.Pi*f, order) * values[n]
	}

	return integrate.Trapezoidal(freqs, integrand)
}
