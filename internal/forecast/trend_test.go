package forecast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitExactLine(t *testing.T) {
	model, err := Fit([]Point{{T: 0, Y: 5}, {T: 10, Y: 25}, {T: 20, Y: 45}})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, model.Slope, 1e-9)
	assert.InDelta(t, 5.0, model.Intercept, 1e-9)
	assert.InDelta(t, 65.0, model.Predict(30), 1e-9)
}

func TestFitNoisySeries(t *testing.T) {
	// Least squares over t = 0, 31, 60 and y = 10, 20, 30
	model, err := Fit([]Point{{T: 0, Y: 10}, {T: 31, Y: 20}, {T: 60, Y: 30}})
	require.NoError(t, err)
	assert.InDelta(t, 1800.0/5402.0, model.Slope, 1e-9)
	assert.InDelta(t, 20-model.Slope*91.0/3.0, model.Intercept, 1e-9)
}

func TestFitFlatSeries(t *testing.T) {
	model, err := Fit([]Point{{T: 0, Y: 7}, {T: 7, Y: 7}, {T: 14, Y: 7}})
	require.NoError(t, err)
	assert.Zero(t, model.Slope)
	assert.InDelta(t, 7.0, model.Intercept, 1e-9)
}

func TestFitDegenerate(t *testing.T) {
	_, err := Fit(nil)
	assert.ErrorIs(t, err, ErrDegenerateSeries)

	_, err = Fit([]Point{{T: 0, Y: 1}})
	assert.ErrorIs(t, err, ErrDegenerateSeries)

	_, err = Fit([]Point{{T: 3, Y: 1}, {T: 3, Y: 9}})
	assert.ErrorIs(t, err, ErrDegenerateSeries)
}

func TestSeriesPoints(t *testing.T) {
	assert.Nil(t, SeriesPoints(nil))

	points := SeriesPoints([]Bucket{
		{PeriodStart: date(2024, 1, 1), TotalAmount: decimal.NewFromInt(10)},
		{PeriodStart: date(2024, 2, 1), TotalAmount: decimal.RequireFromString("20.5")},
		{PeriodStart: date(2024, 3, 1), TotalAmount: decimal.NewFromInt(30)},
	})
	require.Len(t, points, 3)
	assert.Equal(t, []float64{0, 31, 60}, []float64{points[0].T, points[1].T, points[2].T})
	assert.Equal(t, 20.5, points[1].Y)
}
