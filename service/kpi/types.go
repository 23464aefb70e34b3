/*
 * @module service/kpi/types
 * @description KPI计算结果与跳过原因的类型定义
 * @architecture 数据模型层
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow KPIResult由引擎一次性创建,创建后不可变;跳过的KPI以SkipReason记录而非错误
 * @rules Value必须为有限实数,NaN/Inf一律视为无法计算并跳过;Benchmark为空指针表示该KPI无固定基准
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

// Status KPI相对基准的状态
type Status string

const (
	StatusAbove    Status = "Above"
	StatusBelow    Status = "Below"
	StatusAtTarget Status = "At Target"
)

// SkipReason 单个KPI被跳过的原因
// 跳过是正常结果而非错误,引擎整体调用永不因单个KPI失败而中断
type SkipReason string

const (
	SkipMissingColumn    SkipReason = "missing_column"
	SkipZeroDenominator  SkipReason = "zero_denominator"
	SkipNoNumericData    SkipReason = "no_numeric_data"
	SkipUnparseableDates SkipReason = "unparseable_dates"
)

// KPIResult 单个已算出的KPI
// Status语义:结合方向标志后的达标判断,Above表示优于基准而非数值大于基准
type KPIResult struct {
	Name         string   `json:"name"`
	Value        float64  `json:"value"`
	Benchmark    *float64 `json:"benchmark,omitempty"`
	Status       Status   `json:"status,omitempty"`
	SourceColumn string   `json:"source_column,omitempty"`
	Insight      string   `json:"insight,omitempty"`
}

// Attempt 一次KPI计算尝试,成功时Result非空,跳过时Skip非空
// 保留尝试记录使测试可以断言KPI为何缺席,而不只是缺席本身
type Attempt struct {
	Name   string     `json:"name"`
	Result *KPIResult `json:"result,omitempty"`
	Skip   SkipReason `json:"skip,omitempty"`
}
