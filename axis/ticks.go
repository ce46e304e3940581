package axis

import "math"

// ComputeEntries returns label values between min and max and the number
// of fraction digits needed to display them.
//
// The interval is rounded to one significant digit and never drops below
// granularity (when positive). With force set, exactly labelCount values
// are spread evenly from min to max.
func ComputeEntries(min, max float64, labelCount int, granularity float64, force bool) ([]float64, int) {
	return appendEntries(nil, min, max, labelCount, granularity, force)
}

func appendEntries(dst []float64, min, max float64, labelCount int, granularity float64, force bool) ([]float64, int) {
	span := math.Abs(max - min)
	if labelCount <= 0 || span <= 0 || !isFinite(span) {
		return dst, 0
	}

	interval := roundToNextSignificant(span / float64(labelCount))
	if granularity > 0 && interval < granularity {
		interval = granularity
	}

	magnitude := roundToNextSignificant(math.Pow(10, math.Floor(math.Log10(interval))))
	if magnitude > 0 && interval/magnitude > 5 {
		// avoid intervals like 0.9 or 90
		interval = math.Floor(10 * magnitude)
		if interval == 0 {
			interval = 10 * magnitude
		}
	}

	if force {
		if labelCount == 1 {
			return append(dst, min), decimalsFor(span)
		}
		interval = span / float64(labelCount-1)
		for i := 0; i < labelCount; i++ {
			dst = append(dst, min+float64(i)*interval)
		}
		return dst, decimalsFor(interval)
	}

	if interval == 0 {
		return dst, 0
	}

	first := math.Ceil(min/interval) * interval
	last := math.Nextafter(math.Floor(max/interval)*interval, math.Inf(1))
	for i := 0; ; i++ {
		f := first + float64(i)*interval
		if f > last {
			break
		}
		if f == 0 {
			f = 0 // drop negative zero
		} else if f > max {
			f = max
		}
		dst = append(dst, f)
	}
	return dst, decimalsFor(interval)
}

func decimalsFor(interval float64) int {
	if interval <= 0 || interval >= 1 || !isFinite(interval) {
		return 0
	}
	return int(math.Ceil(-math.Log10(interval)))
}

// roundToNextSignificant rounds v to its first significant digit.
func roundToNextSignificant(v float64) float64 {
	if v == 0 || !isFinite(v) {
		return 0
	}
	d := math.Ceil(math.Log10(math.Abs(v)))
	magnitude := math.Pow(10, 1-d)
	return math.Round(v*magnitude) / magnitude
}
