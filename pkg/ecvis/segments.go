package ecvis

import "math"

// Segment is one continuous piece of the real curve: the upper branch as
// sampled and the lower branch mirrored across the x-axis.
type Segment struct {
	Upper []Point[float64] `json:"upper"`
	Lower []Point[float64] `json:"lower"`
}

// Segments groups the upper branch into polylines. A new segment starts when
// an x position is skipped (no real point there) or when the distance
// between consecutive points, multiplied by config.Scale, exceeds
// config.Threshold.
func (c *RealCurve) Segments(xMin, xMax, step float64, config SegmentConfig) ([]Segment, error) {
	n, err := sampleCount(xMin, xMax, step)
	if err != nil {
		return nil, err
	}

	scale := config.Scale
	if scale <= 0 {
		scale = 1
	}
	threshold := config.Threshold
	if threshold <= 0 {
		threshold = scale
	}

	var (
		segments []Segment
		current  []Point[float64]
		last     Point[float64]
		lastIdx  = -2
	)

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, mirror(current))
		}
		current = nil
	}

	for i := 0; i < n; i++ {
		x := xMin + float64(i)*step
		y, ok := c.upper(x)
		if !ok {
			continue
		}
		p := NewPoint(x, y)

		if lastIdx == i-1 && len(current) > 0 {
			d := math.Hypot(x-last.X(), y-last.Y()) * scale
			if d > threshold {
				flush()
			}
		} else {
			flush()
		}

		current = append(current, p)
		last, lastIdx = p, i
	}
	flush()

	return segments, nil
}

func mirror(upper []Point[float64]) Segment {
	lower := make([]Point[float64], len(upper))
	for i, p := range upper {
		lower[i] = NewPoint(p.X(), -p.Y())
	}
	return Segment{Upper: upper, Lower: lower}
}
