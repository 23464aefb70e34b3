/*
 * @module service/kpi/domain_marketing
 * @description Marketing领域KPI清单：收入、花费、ROAS、CPA、CTR、CPC、转化率
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules ROAS/CPA/CTR/CPC全部基于整列求和;转化数为零时CPA跳过而非产出Inf
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

// 越南市场Marketing基准常量,CPA按VND计
var (
	benchROAS           = bench(4.0)
	benchCTR            = bench(3.17)
	benchCPA            = bench(200000)
	benchConversionRate = bench(2.5)
)

func (c *calc) computeMarketing() {
	c.sumKPI("Total Revenue", "revenue", nil, false)
	c.sumKPI("Total Spend", "spend", nil, false)
	c.ratioKPI("ROAS", "revenue", "spend", 1, benchROAS, false)
	c.ratioKPI("Cost Per Acquisition (CPA)", "spend", "conversions", 1, benchCPA, true)
	c.ratioKPI("CTR (%)", "clicks", "impressions", 100, benchCTR, false)
	c.ratioKPI("CPC", "spend", "clicks", 1, nil, true)
	c.ratioKPI("Conversion Rate (%)", "conversions", "clicks", 100, benchConversionRate, false)
}
