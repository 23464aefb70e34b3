/*
 * @module service/kpi/domain_sales
 * @description Sales领域KPI清单：赢单率、管道价值、加权管道、平均单规模、销售周期、赢单收入
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 赢单/输单按阶段文本包含won/lost判定;销售周期仅统计两端日期均可解析的赢单行
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import (
	"math"
	"strings"

	"insight-service/service/dataset"
)

var (
	benchWinRate    = bench(20.0)
	benchSalesCycle = bench(60.0)
)

// dealOutcome 按阶段文本划分的成交状态
type dealOutcome int

const (
	dealOpen dealOutcome = iota
	dealWon
	dealLost
)

func outcomeOf(stage string) dealOutcome {
	s := strings.ToLower(stage)
	switch {
	case strings.Contains(s, "won"):
		return dealWon
	case strings.Contains(s, "lost"):
		return dealLost
	default:
		return dealOpen
	}
}

func (c *calc) computeSales() {
	stageCol, stageOK := c.column("stage")
	valueCol, valueOK := c.column("deal_value")

	var stages []string
	if stageOK {
		stages, stageOK = c.ds.Strings(stageCol)
	}
	var values []float64
	if valueOK {
		values, valueOK = c.ds.Numbers(valueCol)
	}

	c.salesWinRate(stages, stageOK)
	c.salesPipeline(valueCol, values, valueOK, stages, stageOK)
	c.salesCycle(stages, stageOK)
}

// salesWinRate 赢单率:赢单数/(赢单数+输单数)×100,未关闭的单不计入
func (c *calc) salesWinRate(stages []string, ok bool) {
	const name = "Win Rate (%)"
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	won, lost := 0, 0
	for _, stage := range stages {
		switch outcomeOf(stage) {
		case dealWon:
			won++
		case dealLost:
			lost++
		}
	}
	if won+lost == 0 {
		c.skip(name, SkipZeroDenominator)
		return
	}
	stageCol, _ := c.column("stage")
	c.emit(result(name, float64(won)/float64(won+lost)*100, stageCol, benchWinRate, false))
}

func (c *calc) salesPipeline(valueCol string, values []float64, valueOK bool, stages []string, stageOK bool) {
	if !valueOK {
		c.skip("Total Pipeline Value", SkipMissingColumn)
		c.skip("Weighted Pipeline", SkipMissingColumn)
		c.skip("Average Deal Size", SkipMissingColumn)
		c.skip("Closed Won Revenue", SkipMissingColumn)
		return
	}

	// 无阶段列时全部视为open
	outcome := func(i int) dealOutcome {
		if stageOK && i < len(stages) {
			return outcomeOf(stages[i])
		}
		return dealOpen
	}

	var openSum, wonSum float64
	var wonValues []float64
	openN, wonN := 0, 0
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		switch outcome(i) {
		case dealOpen:
			openSum += v
			openN++
		case dealWon:
			wonSum += v
			wonValues = append(wonValues, v)
			wonN++
		}
	}

	if openN > 0 {
		c.emit(result("Total Pipeline Value", openSum, valueCol, nil, false))
	} else {
		c.skip("Total Pipeline Value", SkipNoNumericData)
	}

	c.weightedPipeline(valueCol, values, outcome)

	if wonN > 0 {
		mean, _ := dataset.Mean(wonValues)
		c.emit(result("Average Deal Size", mean, valueCol, nil, false))
		c.emit(result("Closed Won Revenue", wonSum, valueCol, nil, false))
	} else {
		c.skip("Average Deal Size", SkipNoNumericData)
		c.skip("Closed Won Revenue", SkipNoNumericData)
	}
}

// weightedPipeline 加权管道:Σ(未关闭单金额×成交概率/100)
func (c *calc) weightedPipeline(valueCol string, values []float64, outcome func(int) dealOutcome) {
	const name = "Weighted Pipeline"
	_, probs, ok := c.numbers("probability")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	total := 0.0
	n := 0
	for i, v := range values {
		if i >= len(probs) || math.IsNaN(v) || math.IsNaN(probs[i]) {
			continue
		}
		if outcome(i) != dealOpen {
			continue
		}
		total += v * probs[i] / 100
		n++
	}
	if n == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	c.emit(result(name, total, valueCol, nil, false))
}

// salesCycle 销售周期:赢单行的创建到关闭天数均值,日期解析失败的行剔除
func (c *calc) salesCycle(stages []string, stageOK bool) {
	const name = "Sales Cycle (days)"
	createdCol, ok := c.column("created_date")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	closedCol, ok := c.column("close_date")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	created, createdValid, _ := c.ds.Times(createdCol)
	closed, closedValid, _ := c.ds.Times(closedCol)

	total := 0.0
	n := 0
	for i := range created {
		if i >= len(closed) || !createdValid[i] || !closedValid[i] {
			continue
		}
		if stageOK && i < len(stages) && outcomeOf(stages[i]) != dealWon {
			continue
		}
		total += closed[i].Sub(created[i]).Hours() / 24
		n++
	}
	if n == 0 {
		c.skip(name, SkipUnparseableDates)
		return
	}
	c.emit(result(name, total/float64(n), closedCol, benchSalesCycle, true))
}
