package forecast

import (
	"errors"
	"time"
)

// ErrDegenerateSeries is returned when a trend cannot be fitted
var ErrDegenerateSeries = errors.New("series needs at least two distinct time offsets")

// Point is a (day offset, amount) pair
type Point struct {
	T float64
	Y float64
}

// TrendModel is a fitted line amount = Slope*t + Intercept
type TrendModel struct {
	Slope     float64
	Intercept float64
}

// Predict evaluates the line at day offset t
func (m TrendModel) Predict(t float64) float64 {
	return m.Slope*t + m.Intercept
}

// SeriesPoints converts buckets into points where t is the number of days
// since the first bucket's start.
func SeriesPoints(buckets []Bucket) []Point {
	if len(buckets) == 0 {
		return nil
	}
	first := buckets[0].PeriodStart
	points := make([]Point, len(buckets))
	for i, b := range buckets {
		points[i] = Point{
			T: float64(daysBetween(first, b.PeriodStart)),
			Y: b.TotalAmount.InexactFloat64(),
		}
	}
	return points
}

// Fit runs ordinary least squares over points
func Fit(points []Point) (TrendModel, error) {
	n := float64(len(points))
	if n < 2 {
		return TrendModel{}, ErrDegenerateSeries
	}

	var sumT, sumY float64
	for _, p := range points {
		sumT += p.T
		sumY += p.Y
	}
	meanT := sumT / n
	meanY := sumY / n

	var cov, varT float64
	for _, p := range points {
		dt := p.T - meanT
		cov += dt * (p.Y - meanY)
		varT += dt * dt
	}
	if varT == 0 {
		return TrendModel{}, ErrDegenerateSeries
	}

	slope := cov / varT
	return TrendModel{Slope: slope, Intercept: meanY - slope*meanT}, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
