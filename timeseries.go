package helio

import "sort"

// ScalarSeries is an ordered set of (epoch, value) samples with linear
// interpolation between samples. Epochs are fractional Julian Dates and are
// expected to be strictly increasing: construction does not reject unsorted
// input, but interpolation is only defined for sorted samples (callers own
// their reference tables).
type ScalarSeries struct {
	epochs []float64
	values []float64
}

// NewScalarSeries creates a new scalar series from parallel epoch/value slices.
func NewScalarSeries(epochs, values []float64) *ScalarSeries {
	if len(epochs) != len(values) {
		panic("helio: scalar series epochs and values must have the same length")
	}
	return &ScalarSeries{epochs: epochs, values: values}
}

// Len returns the number of samples.
func (s *ScalarSeries) Len() int {
	return len(s.epochs)
}

// Range returns the first and last sampled epochs. An empty series returns (0, 0).
func (s *ScalarSeries) Range() (start, end float64) {
	if len(s.epochs) == 0 {
		return 0, 0
	}
	return s.epochs[0], s.epochs[len(s.epochs)-1]
}

// Interpolate returns the linearly interpolated value at jde. Queries outside
// the sampled range clamp to the nearest endpoint; an empty series returns zero.
func (s *ScalarSeries) Interpolate(jde float64) float64 {
	n := len(s.epochs)
	switch {
	case n == 0:
		return 0
	case jde <= s.epochs[0]:
		return s.values[0]
	case jde >= s.epochs[n-1]:
		return s.values[n-1]
	}
	i := bracket(s.epochs, jde)
	t := (jde - s.epochs[i]) / (s.epochs[i+1] - s.epochs[i])
	return lerp(s.values[i], s.values[i+1], t)
}

// Extrapolate behaves like Interpolate inside the sampled range but continues
// the first (resp. last) segment linearly outside of it. A series with fewer
// than two samples falls back to Interpolate.
func (s *ScalarSeries) Extrapolate(jde float64) float64 {
	n := len(s.epochs)
	if n < 2 {
		return s.Interpolate(jde)
	}
	var i int
	switch {
	case jde < s.epochs[0]:
		i = 0
	case jde > s.epochs[n-1]:
		i = n - 2
	default:
		return s.Interpolate(jde)
	}
	t := (jde - s.epochs[i]) / (s.epochs[i+1] - s.epochs[i])
	return lerp(s.values[i], s.values[i+1], t)
}

// VectorSeries is the 3-vector counterpart of ScalarSeries: the linear blend
// is applied component-wise.
type VectorSeries struct {
	epochs []float64
	values [][]float64
}

// NewVectorSeries creates a new vector series from parallel epoch/value slices.
func NewVectorSeries(epochs []float64, values [][]float64) *VectorSeries {
	if len(epochs) != len(values) {
		panic("helio: vector series epochs and values must have the same length")
	}
	return &VectorSeries{epochs: epochs, values: values}
}

// Len returns the number of samples.
func (s *VectorSeries) Len() int {
	return len(s.epochs)
}

// Range returns the first and last sampled epochs. An empty series returns (0, 0).
func (s *VectorSeries) Range() (start, end float64) {
	if len(s.epochs) == 0 {
		return 0, 0
	}
	return s.epochs[0], s.epochs[len(s.epochs)-1]
}

// Interpolate returns the component-wise linear interpolation at jde, clamped
// to the endpoints outside the sampled range. An empty series returns the zero
// vector.
func (s *VectorSeries) Interpolate(jde float64) []float64 {
	n := len(s.epochs)
	switch {
	case n == 0:
		return []float64{0, 0, 0}
	case jde <= s.epochs[0]:
		return append([]float64{}, s.values[0]...)
	case jde >= s.epochs[n-1]:
		return append([]float64{}, s.values[n-1]...)
	}
	i := bracket(s.epochs, jde)
	t := (jde - s.epochs[i]) / (s.epochs[i+1] - s.epochs[i])
	v0, v1 := s.values[i], s.values[i+1]
	out := make([]float64, len(v0))
	for k := range out {
		out[k] = lerp(v0[k], v1[k], t)
	}
	return out
}

// Extrapolate continues the boundary segments linearly outside the sampled
// range, component-wise.
func (s *VectorSeries) Extrapolate(jde float64) []float64 {
	n := len(s.epochs)
	if n < 2 {
		return s.Interpolate(jde)
	}
	var i int
	switch {
	case jde < s.epochs[0]:
		i = 0
	case jde > s.epochs[n-1]:
		i = n - 2
	default:
		return s.Interpolate(jde)
	}
	t := (jde - s.epochs[i]) / (s.epochs[i+1] - s.epochs[i])
	v0, v1 := s.values[i], s.values[i+1]
	out := make([]float64, len(v0))
	for k := range out {
		out[k] = lerp(v0[k], v1[k], t)
	}
	return out
}

// bracket returns the index i such that epochs[i] <= jde < epochs[i+1].
// The caller guarantees jde lies strictly inside the sampled range.
func bracket(epochs []float64, jde float64) int {
	i := sort.SearchFloat64s(epochs, jde)
	if i > 0 && (i == len(epochs) || epochs[i] != jde) {
		i--
	}
	return i
}
