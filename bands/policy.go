package bands

// Policy selects how a PSD is partitioned into contiguous frequency bands.
// It is a closed set: EqualAreaBands and UserDefinedBands are the only
// implementations, and both are used as values.
type Policy interface {
	isPolicy()
}

// EqualAreaBands splits the PSD into N bands carrying equal shares of the
// cumulative magnitude sum. The frequency spacing is deliberately left out
// of the area computation; downstream fatigue formulas were validated
// against that exact definition.
type EqualAreaBands struct {
	N int
}

// UserDefinedBands places one band boundary at the sample nearest each of
// the given upper band frequencies, in the order supplied. Consumers supply
// the frequencies in ascending order.
type UserDefinedBands struct {
	Frequencies []float64
}

func (EqualAreaBands) isPolicy()   {}
func (UserDefinedBands) isPolicy() {}
