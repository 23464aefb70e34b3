/*
 * @module service/kpi/domain_ecommerce
 * @description E-commerce领域KPI清单：转化率、AOV、弃购率、单次访问收入、回购率、跳出率、移动端占比
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 弃购率=(加购-结账)/加购×100,按整列求和;占比类列(回购/跳出/移动端)取列均值
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import "insight-service/service/dataset"

// 越南电商基准,AOV按VND计(iPrice 2024中位区间的中值)
var (
	benchEcomConversion = bench(2.5)
	benchAOV            = bench(450000)
	benchCartAbandon    = bench(77.0)
	benchReturning      = bench(30.0)
	benchBounce         = bench(45.0)
)

func (c *calc) computeEcommerce() {
	c.ratioKPI("Conversion Rate (%)", "transactions", "sessions", 100, benchEcomConversion, false)
	c.ratioKPI("AOV (Average Order Value)", "revenue", "transactions", 1, benchAOV, false)
	c.cartAbandonment()
	c.ratioKPI("Revenue per Session", "revenue", "sessions", 1, nil, false)
	c.meanKPI("Returning Customer Rate (%)", "returning", benchReturning, false)
	c.meanKPI("Bounce Rate (%)", "bounce", benchBounce, true)
	c.meanKPI("Mobile Traffic (%)", "mobile", nil, false)
}

// cartAbandonment 弃购率:(加购总数-结账总数)/加购总数×100
func (c *calc) cartAbandonment() {
	const name = "Cart Abandonment Rate (%)"
	cartCol, cartValues, ok := c.numbers("add_to_cart")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	_, checkoutValues, ok := c.numbers("checkout")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	cartSum, cartN := dataset.Sum(cartValues)
	checkoutSum, checkoutN := dataset.Sum(checkoutValues)
	if cartN == 0 || checkoutN == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	if cartSum == 0 {
		c.skip(name, SkipZeroDenominator)
		return
	}
	c.emit(result(name, (cartSum-checkoutSum)/cartSum*100, cartCol, benchCartAbandon, true))
}
