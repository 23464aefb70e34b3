/*
 * @module service/kpi/domain_operations
 * @description Operations领域KPI清单：准时交付率、订单准确率、平均履约时长、库存周转
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 准时/准确列兼容Yes-No文本与0-1数值两种表示;库存周转=销货成本总和/平均库存
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import "insight-service/service/dataset"

var (
	benchOnTimeDelivery = bench(95.0)
	benchOrderAccuracy  = bench(99.0)
)

func (c *calc) computeOperations() {
	c.boolOrNumericRate("On-time Delivery (%)", "on_time", benchOnTimeDelivery)
	c.boolOrNumericRate("Order Accuracy (%)", "accurate", benchOrderAccuracy)
	c.meanKPI("Avg Fulfillment Time", "fulfillment_time", nil, true)
	c.inventoryTurnover()
}

// boolOrNumericRate 百分比KPI,列为0-1数值时取均值×100,否则按Yes-No是否率
func (c *calc) boolOrNumericRate(name, concept string, benchmark *float64) {
	col, ok := c.column(concept)
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	if values, ok := c.ds.Numbers(col); ok {
		if mean, n := dataset.Mean(values); n > 0 {
			if mean <= 1 {
				mean *= 100
			}
			c.emit(result(name, mean, col, benchmark, false))
			return
		}
	}
	c.flagRateKPI(name, concept, yesValues, benchmark, false)
}

// inventoryTurnover 库存周转:销货成本总和/库存均值
func (c *calc) inventoryTurnover() {
	const name = "Inventory Turnover"
	cogsCol, cogsValues, ok := c.numbers("cogs")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	_, invValues, ok := c.numbers("inventory")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	cogsSum, cogsN := dataset.Sum(cogsValues)
	invMean, invN := dataset.Mean(invValues)
	if cogsN == 0 || invN == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	if invMean == 0 {
		c.skip(name, SkipZeroDenominator)
		return
	}
	c.emit(result(name, cogsSum/invMean, cogsCol, nil, false))
}
