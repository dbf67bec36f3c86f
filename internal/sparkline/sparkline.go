// Package sparkline turns a price series into an SVG polyline path.
package sparkline

import (
	"math"
	"strconv"
	"strings"
)

// Point is one plotted sample.
type Point struct {
	X, Y float64
}

// Points scales series into a w by h box. Non-finite samples are dropped;
// fewer than two remaining samples yields nil. A flat series is drawn at
// mid-height.
func Points(series []float64, w, h float64) []Point {
	vals := make([]float64, 0, len(series))
	for _, v := range series {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) < 2 {
		return nil
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	dx := w / float64(len(vals)-1)
	span := hi - lo
	pts := make([]Point, len(vals))
	for i, v := range vals {
		y := h / 2
		if span > 0 {
			y = h - (v-lo)/span*h
		}
		pts[i] = Point{X: float64(i) * dx, Y: y}
	}
	return pts
}

// BuildPath encodes the scaled series as "M x,y L x,y ..." with two-decimal
// coordinates. It returns "" when there is nothing to draw.
func BuildPath(series []float64, w, h float64) string {
	pts := Points(series, w, h)
	if len(pts) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', 2, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', 2, 64))
	}
	return b.String()
}
