package benchmark

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentileInterpolation(t *testing.T) {
	// 中位数与Q3之间的线性插值
	result := Compare(85000, 65000, 82000, 110000)
	assert.InDelta(t, 52.68, result.Percentile, 0.01)
	assert.Equal(t, StatusAboveAverage, result.Status)
}

func TestPercentileBoundaries(t *testing.T) {
	q1, median, q3 := 65000.0, 82000.0, 110000.0

	assert.InDelta(t, 25.0, Percentile(q1, q1, median, q3), 1e-9)
	assert.InDelta(t, 50.0, Percentile(median, q1, median, q3), 1e-9)
	assert.InDelta(t, 75.0, Percentile(q3, q1, median, q3), 1e-9)
}

func TestPercentileMonotonic(t *testing.T) {
	q1, median, q3 := 100.0, 200.0, 400.0

	prev := math.Inf(-1)
	for v := -50.0; v <= 900; v += 7 {
		p := Percentile(v, q1, median, q3)
		assert.GreaterOrEqual(t, p, prev, "value %v", v)
		assert.False(t, math.IsNaN(p))
		prev = p
	}
}

func TestPercentileSaturatesAt100(t *testing.T) {
	// 超过Q3+(Q3-中位数)后封顶100
	assert.InDelta(t, 100.0, Percentile(1e12, 100, 200, 400), 1e-9)
	assert.InDelta(t, 100.0, Percentile(600, 100, 200, 400), 1e-9)
	assert.InDelta(t, 87.5, Percentile(500, 100, 200, 400), 1e-9)
}

func TestPercentileDegenerateIntervals(t *testing.T) {
	// 三点重合时任意输入都要给出有限百分位
	for _, v := range []float64{-10, 0, 50, 100, 1000} {
		p := Percentile(v, 100, 100, 100)
		assert.False(t, math.IsNaN(p), "value %v", v)
		assert.False(t, math.IsInf(p, 0), "value %v", v)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
	}

	assert.InDelta(t, 25.0, Percentile(100, 100, 100, 200), 1e-9)
	assert.InDelta(t, 50.0, Percentile(150, 100, 150, 150), 1e-9)
	assert.InDelta(t, 100.0, Percentile(200, 100, 150, 150), 1e-9)
}

func TestPercentileZeroQ1(t *testing.T) {
	assert.Equal(t, 0.0, Percentile(0, 0, 100, 200))
	assert.Equal(t, 0.0, Percentile(-5, 0, 100, 200))
	assert.Equal(t, 0.0, Percentile(-5, 100, 200, 300))
}

func TestStatusThresholds(t *testing.T) {
	assert.Equal(t, StatusExcellent, StatusOf(75))
	assert.Equal(t, StatusExcellent, StatusOf(92))
	assert.Equal(t, StatusAboveAverage, StatusOf(50))
	assert.Equal(t, StatusAboveAverage, StatusOf(74.9))
	assert.Equal(t, StatusAverage, StatusOf(25))
	assert.Equal(t, StatusAverage, StatusOf(49.9))
	assert.Equal(t, StatusBelowAverage, StatusOf(24.9))
	assert.Equal(t, StatusBelowAverage, StatusOf(0))
}

func TestCompareRecordQuartileFallback(t *testing.T) {
	record := &Record{
		Domain:     "hr",
		Role:       "Software Engineer",
		Median:     100,
		SourceName: "GSO Vietnam Wage Report 2024",
		SourceURL:  "https://www.gso.gov.vn",
	}

	// 缺Q1/Q3时按中位数0.8/1.2倍回退
	result := CompareRecord(100, record)
	assert.InDelta(t, 80.0, result.BenchmarkQ1, 1e-9)
	assert.InDelta(t, 120.0, result.BenchmarkQ3, 1e-9)
	assert.InDelta(t, 50.0, result.Percentile, 1e-9)
	assert.Contains(t, result.Message, "Nguồn: GSO Vietnam Wage Report 2024")
	assert.Contains(t, result.BenchmarkSource, "https://www.gso.gov.vn")
}

func TestCompareMessages(t *testing.T) {
	excellent := Compare(400, 100, 200, 400)
	assert.Contains(t, excellent.Message, "Xuất sắc")

	below := Compare(10, 100, 200, 400)
	assert.Contains(t, below.Message, "Cơ hội cải thiện")
}
