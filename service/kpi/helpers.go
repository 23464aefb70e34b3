/*
 * @module service/kpi/helpers
 * @description KPI计算的公共算术助手：求和比率、均值、是否率、状态判定与洞察文案
 * @architecture 内部工具层
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow calc按单次计算创建 -> 各领域方法通过助手累积Attempt -> 引擎收集结果
 * @rules 比率类KPI一律按整列求和后相除,不做逐行比率再平均;分母为零或全NaN跳过该KPI
 * @dependencies 无
 * @refs service/kpi/engine, service/kpi/domain_*
 */

package kpi

import (
	"fmt"
	"math"
	"strings"

	"insight-service/service/dataset"
	"insight-service/service/resolver"
)

// 状态判定的相对容差,|value-benchmark|在此相对范围内视为达标
const statusEpsilon = 1e-9

// calc 单次KPI计算的工作区,随Attempt列表一起丢弃
type calc struct {
	ds       *dataset.Dataset
	res      resolver.ColumnResolver
	attempts []Attempt
}

func (c *calc) column(concept string) (string, bool) {
	return c.res.Resolve(concept, c.ds.Columns())
}

// numbers 解析概念并取出数值列,列缺失或无任何有效数值时ok=false
func (c *calc) numbers(concept string) (string, []float64, bool) {
	col, ok := c.column(concept)
	if !ok {
		return "", nil, false
	}
	values, ok := c.ds.Numbers(col)
	if !ok {
		return col, nil, false
	}
	return col, values, true
}

func (c *calc) skip(name string, reason SkipReason) {
	c.attempts = append(c.attempts, Attempt{Name: name, Skip: reason})
}

func (c *calc) emit(result *KPIResult) {
	if math.IsNaN(result.Value) || math.IsInf(result.Value, 0) {
		c.skip(result.Name, SkipNoNumericData)
		return
	}
	c.attempts = append(c.attempts, Attempt{Name: result.Name, Result: result})
}

// result 构造单个KPI结果并附带状态与洞察
func result(name string, value float64, sourceCol string, benchmark *float64, lowerIsBetter bool) *KPIResult {
	r := &KPIResult{
		Name:         name,
		Value:        value,
		Benchmark:    benchmark,
		SourceColumn: sourceCol,
	}
	if benchmark != nil {
		r.Status = classify(value, *benchmark, lowerIsBetter)
	}
	r.Insight = buildInsight(name, value, benchmark, r.Status)
	return r
}

// classify 结合方向标志判定达标状态
// Above表示优于基准:高优指标取值更高,低优指标取值更低
func classify(value, benchmark float64, lowerIsBetter bool) Status {
	scale := math.Max(math.Abs(value), math.Abs(benchmark))
	if math.Abs(value-benchmark) <= statusEpsilon*math.Max(scale, 1) {
		return StatusAtTarget
	}
	better := value > benchmark
	if lowerIsBetter {
		better = value < benchmark
	}
	if better {
		return StatusAbove
	}
	return StatusBelow
}

func buildInsight(name string, value float64, benchmark *float64, status Status) string {
	formatted := formatValue(value)
	if benchmark == nil {
		return fmt.Sprintf("%s: %s", name, formatted)
	}
	bench := formatValue(*benchmark)
	switch status {
	case StatusAbove:
		return fmt.Sprintf("%s đạt %s, vượt mức chuẩn %s", name, formatted, bench)
	case StatusBelow:
		return fmt.Sprintf("%s đạt %s, chưa đạt mức chuẩn %s", name, formatted, bench)
	default:
		return fmt.Sprintf("%s đạt %s, đúng mức chuẩn %s", name, formatted, bench)
	}
}

// formatValue 洞察文案用的数值格式,整数不带小数位
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// sumKPI 求和类KPI
func (c *calc) sumKPI(name, concept string, benchmark *float64, lowerIsBetter bool) {
	col, values, ok := c.numbers(concept)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	total, n := dataset.Sum(values)
	if n == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	c.emit(result(name, total, col, benchmark, lowerIsBetter))
}

// meanKPI 均值类KPI,聚合始终基于全精度列值
func (c *calc) meanKPI(name, concept string, benchmark *float64, lowerIsBetter bool) {
	col, values, ok := c.numbers(concept)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	mean, n := dataset.Mean(values)
	if n == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	c.emit(result(name, mean, col, benchmark, lowerIsBetter))
}

// ratioKPI 比率类KPI:分子列求和除以分母列求和再乘scale
// 采用整列求和而非逐行比率的平均,避免小分母行的偏差
func (c *calc) ratioKPI(name, numConcept, denConcept string, scale float64, benchmark *float64, lowerIsBetter bool) {
	numCol, numValues, ok := c.numbers(numConcept)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	_, denValues, ok := c.numbers(denConcept)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	numSum, numN := dataset.Sum(numValues)
	denSum, denN := dataset.Sum(denValues)
	if numN == 0 || denN == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	if denSum == 0 {
		c.skip(name, SkipZeroDenominator)
		return
	}
	c.emit(result(name, numSum/denSum*scale, numCol, benchmark, lowerIsBetter))
}

// flagRateKPI 是否率KPI:命中真值集合的行数占有值行数的百分比
func (c *calc) flagRateKPI(name, concept string, truthy []string, benchmark *float64, lowerIsBetter bool) {
	col, ok := c.column(concept)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	values, ok := c.ds.Strings(col)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	hits, total := 0, 0
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		total++
		for _, t := range truthy {
			if v == t {
				hits++
				break
			}
		}
	}
	if total == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	c.emit(result(name, float64(hits)/float64(total)*100, col, benchmark, lowerIsBetter))
}

func bench(v float64) *float64 {
	return &v
}

func isNaN(v float64) bool {
	return math.IsNaN(v)
}
