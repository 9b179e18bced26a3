package spectral_test

import (
	"fmt"

	"github.com/vibrolab/vibrostats/bands"
	"github.com/vibrolab/vibrostats/spectral"
)

// Build a SpectralData from a known PSD curve, read the cached
// whole-spectrum statistics, then query band-wise moments with a
// user-defined split at 2 Hz.
func Example() {
	freqs := []float64{0, 1, 2, 3, 4}
	values := []float64{1, 1, 1, 1, 1}

	sd, err := spectral.FromPSD(values, freqs)
	if err != nil {
		panic(err)
	}

	coeffs := sd.Coefficients()
	fmt.Printf("m0 = %.1f\n", coeffs.Moments[0])

	split := bands.UserDefinedBands{Frequencies: []float64{2, 4}}
	m, err := sd.SpectralMoments(split, []float64{0})
	if err != nil {
		panic(err)
	}
	fmt.Printf("band areas = %.1f, %.1f\n", m[0][0], m[1][0])

	// Output:
	// m0 = 4.0
	// band areas = 2.0, 2.0
}
