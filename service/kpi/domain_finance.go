/*
 * @module service/kpi/domain_finance
 * @description Finance领域KPI清单：利润率三件套、收入增长、现金流、流动性比率、负债权益比
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 利润率按整列求和相除;比率类优先取现成比率列的均值,缺失时退回资产/负债列求和相除
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import "insight-service/service/dataset"

var (
	benchNetMargin       = bench(10.0)
	benchGrossMargin     = bench(40.0)
	benchOperatingMargin = bench(20.0)
	benchCurrentRatio    = bench(1.5)
	benchQuickRatio      = bench(1.0)
	benchDebtToEquity    = bench(2.0)
)

func (c *calc) computeFinance() {
	c.ratioKPI("Net Profit Margin (%)", "net_income", "revenue", 100, benchNetMargin, false)
	c.ratioKPI("Gross Margin (%)", "gross_profit", "revenue", 100, benchGrossMargin, false)
	c.ratioKPI("Operating Margin (%)", "operating_income", "revenue", 100, benchOperatingMargin, false)
	c.revenueGrowth()
	c.sumKPI("Operating Cash Flow", "operating_cash_flow", nil, false)
	c.sumKPI("Free Cash Flow", "free_cash_flow", nil, false)
	c.financialRatio("Current Ratio", "current_ratio", "current_assets", "current_liabilities", benchCurrentRatio, false)
	c.financialRatio("Quick Ratio", "quick_ratio", "quick_assets", "current_liabilities", benchQuickRatio, false)
	c.financialRatio("Debt-to-Equity Ratio", "debt_to_equity", "total_debt", "equity", benchDebtToEquity, true)
}

// revenueGrowth 收入增长:首期到末期的变化百分比
func (c *calc) revenueGrowth() {
	const name = "Revenue Growth (%)"
	col, values, ok := c.numbers("revenue")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	var valid []float64
	for _, v := range values {
		if !isNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) < 2 {
		c.skip(name, SkipNoNumericData)
		return
	}
	first, last := valid[0], valid[len(valid)-1]
	if first == 0 {
		c.skip(name, SkipZeroDenominator)
		return
	}
	c.emit(result(name, (last-first)/first*100, col, nil, false))
}

// financialRatio 财务比率:优先取现成比率列的均值,否则退回分子/分母列求和相除
func (c *calc) financialRatio(name, ratioConcept, numConcept, denConcept string, benchmark *float64, lowerIsBetter bool) {
	if col, values, ok := c.numbers(ratioConcept); ok {
		if mean, n := dataset.Mean(values); n > 0 {
			c.emit(result(name, mean, col, benchmark, lowerIsBetter))
			return
		}
	}
	c.ratioKPI(name, numConcept, denConcept, 1, benchmark, lowerIsBetter)
}
