/*
 * @module service/benchmark/comparator
 * @description 百分位比较器：以基准分布的(Q1,中位数,Q3)对用户值做分段线性插值,输出百分位与四级状态
 * @architecture 工具函数层 - 纯函数
 * @documentReference ai_docs/benchmark.md
 * @stateFlow 区间判定 -> 分段插值(含退化区间短路) -> 状态阈值判定 -> 文案组装
 * @rules 任何退化区间(Q1==中位数或中位数==Q3)不得除零,短路到最近的边界百分位;超出Q3的值在100处饱和
 * @dependencies 无
 * @refs service/kpi, api/controllers
 */

package benchmark

import "fmt"

// ComparisonStatus 四级状态
type ComparisonStatus string

const (
	StatusExcellent    ComparisonStatus = "excellent"
	StatusAboveAverage ComparisonStatus = "above_average"
	StatusAverage      ComparisonStatus = "average"
	StatusBelowAverage ComparisonStatus = "below_average"
)

// ComparisonResult 单次基准比较的输出,创建后不可变
type ComparisonResult struct {
	UserValue       float64          `json:"user_value"`
	BenchmarkMedian float64          `json:"benchmark_median"`
	BenchmarkQ1     float64          `json:"benchmark_q1"`
	BenchmarkQ3     float64          `json:"benchmark_q3"`
	Percentile      float64          `json:"percentile"`
	Status          ComparisonStatus `json:"status"`
	Message         string           `json:"message"`
	BenchmarkSource string           `json:"benchmark_source,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// Percentile 分段线性插值估算用户值在基准分布中的百分位
// 四个分段:[0,Q1]、(Q1,中位数]、(中位数,Q3]、(Q3,∞),超出Q3部分按(Q3-中位数)为尺度,封顶100
func Percentile(value, q1, median, q3 float64) float64 {
	switch {
	case value <= q1:
		if q1 == 0 {
			return 0
		}
		p := 25 * (value / q1)
		if p < 0 {
			return 0
		}
		if p > 25 {
			return 25
		}
		return p
	case value <= median:
		if median == q1 {
			return 50
		}
		return 25 + 25*(value-q1)/(median-q1)
	case value <= q3:
		if q3 == median {
			return 75
		}
		return 50 + 25*(value-median)/(q3-median)
	default:
		if q3 == median {
			return 100
		}
		excess := (value - q3) / (q3 - median)
		if excess > 1 {
			excess = 1
		}
		return 75 + 25*excess
	}
}

// StatusOf 固定阈值的四级状态判定
func StatusOf(percentile float64) ComparisonStatus {
	switch {
	case percentile >= 75:
		return StatusExcellent
	case percentile >= 50:
		return StatusAboveAverage
	case percentile >= 25:
		return StatusAverage
	default:
		return StatusBelowAverage
	}
}

// Compare 用户值与基准三元组比较
func Compare(value, q1, median, q3 float64) *ComparisonResult {
	percentile := Percentile(value, q1, median, q3)
	status := StatusOf(percentile)
	return &ComparisonResult{
		UserValue:       value,
		BenchmarkMedian: median,
		BenchmarkQ1:     q1,
		BenchmarkQ3:     q3,
		Percentile:      percentile,
		Status:          status,
		Message:         statusMessage(status, percentile),
	}
}

// CompareRecord 用户值与一条基准记录比较
// 记录缺Q1/Q3时按中位数的0.8/1.2倍回退,文案附带来源出处
func CompareRecord(value float64, record *Record) *ComparisonResult {
	q1 := record.Percentile25
	if q1 == 0 {
		q1 = record.Median * 0.8
	}
	q3 := record.Percentile75
	if q3 == 0 {
		q3 = record.Median * 1.2
	}

	result := Compare(value, q1, record.Median, q3)
	result.Notes = record.Notes
	if record.SourceName != "" {
		result.BenchmarkSource = record.SourceName
		if record.SourceURL != "" {
			result.BenchmarkSource = fmt.Sprintf("%s (%s)", record.SourceName, record.SourceURL)
		}
		result.Message = fmt.Sprintf("%s. Nguồn: %s", result.Message, record.SourceName)
	}
	return result
}

func statusMessage(status ComparisonStatus, percentile float64) string {
	switch status {
	case StatusExcellent:
		return fmt.Sprintf("Xuất sắc! Cao hơn %.0f%% thị trường Vietnam", percentile)
	case StatusAboveAverage:
		return fmt.Sprintf("Khá tốt! Cao hơn %.0f%% thị trường", percentile)
	case StatusAverage:
		return fmt.Sprintf("Trung bình thị trường (percentile %.0f)", percentile)
	default:
		return fmt.Sprintf("Dưới trung bình - Cơ hội cải thiện (percentile %.0f)", percentile)
	}
}
