package ggchart

import "math"

// AngleForPoint returns the angle in degrees of (x, y) around center.
// 0 degrees points right (3 o'clock) and angles grow clockwise, so the
// result matches the sweep used by pie slices and radar spokes.
func AngleForPoint(center Point, x, y float64) float64 {
	tx, ty := x-center.X, y-center.Y
	length := math.Hypot(tx, ty)
	if length == 0 {
		return 0
	}
	r := math.Acos(clamp(ty/length, -1, 1))
	angle := r * 180 / math.Pi
	if x > center.X {
		angle = 360 - angle
	}
	angle += 90
	if angle > 360 {
		angle -= 360
	}
	return angle
}

// DistanceToCenter returns the distance of (x, y) from center.
func DistanceToCenter(center Point, x, y float64) float64 {
	return math.Hypot(x-center.X, y-center.Y)
}

// PositionOnCircle returns the point at dist from center along angle
// degrees (clockwise from 3 o'clock).
func PositionOnCircle(center Point, dist, angle float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: center.X + dist*math.Cos(rad),
		Y: center.Y + dist*math.Sin(rad),
	}
}

// NormalizedAngle maps angle into [0, 360).
func NormalizedAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
