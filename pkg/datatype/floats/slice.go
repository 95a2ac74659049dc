package floats

import "math"

// Undefined marks a value that has no meaningful result, e.g. a rolling window
// without enough history.
var Undefined = math.NaN()

func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

// Fill returns a slice of the given length with every element set to v.
func Fill(length int, v float64) Slice {
	s := make(Slice, length)
	for i := range s {
		s[i] = v
	}
	return s
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return Undefined
	}
	return s.Sum() / float64(length)
}

func (s Slice) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

// Tail returns a copy of the last size elements.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

func (s Slice) Sub(b Slice) (c Slice) {
	length := min(len(s), len(b))
	c = make(Slice, length)
	for i := 0; i < length; i++ {
		c[i] = s[i] - b[i]
	}
	return c
}

// HasUndefined reports whether any element is undefined.
func (s Slice) HasUndefined() bool {
	for _, v := range s {
		if IsUndefined(v) {
			return true
		}
	}
	return false
}

// FirstDefined returns the index of the first defined element, or -1.
func (s Slice) FirstDefined() int {
	for i, v := range s {
		if !IsUndefined(v) {
			return i
		}
	}
	return -1
}
