package floats

// RollingApply evaluates f over every trailing window of the given size.
// Rows with fewer than window observations, and windows holding an undefined
// value, come out undefined.
func RollingApply(s Slice, window int, f func(win Slice) float64) Slice {
	out := Fill(len(s), Undefined)
	if window <= 0 {
		return out
	}

	for i := window - 1; i < len(s); i++ {
		win := s[i-window+1 : i+1]
		if win.HasUndefined() {
			continue
		}

		out[i] = f(win)
	}

	return out
}

// RollingMean is the arithmetic mean over the trailing window, summed per window
// so that every value is the exact mean of its inputs.
func RollingMean(s Slice, window int) Slice {
	return RollingApply(s, window, Slice.Mean)
}

// RollingMin returns the lowest value of each trailing window.
func RollingMin(s Slice, window int) Slice {
	return RollingApply(s, window, Slice.Min)
}

// RollingMax returns the highest value of each trailing window.
func RollingMax(s Slice, window int) Slice {
	return RollingApply(s, window, Slice.Max)
}

// PctChange returns (s[i] - s[i-1]) / s[i-1]. The first element, and any
// element whose previous value is zero, is undefined.
func PctChange(s Slice) Slice {
	out := Fill(len(s), Undefined)
	for i := 1; i < len(s); i++ {
		prev := s[i-1]
		if prev == 0 {
			continue
		}
		out[i] = (s[i] - prev) / prev
	}
	return out
}
