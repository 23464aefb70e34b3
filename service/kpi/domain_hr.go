/*
 * @module service/kpi/domain_hr
 * @description HR领域KPI清单：平均/中位/极差薪资、在册人数、离职率
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 薪资聚合基于全精度原始列,供下游按列均值做精确审计比对;薪资不设固定常量基准,由基准库按职位查询
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import (
	"math"

	"insight-service/service/dataset"
)

var benchAttrition = bench(15.0)

// 离职标记的真值集合,兼容状态列文本
var attritionValues = []string{"yes", "true", "1", "left", "resigned", "terminated", "nghỉ việc", "nghi viec"}

func (c *calc) computeHR() {
	col, salaries, ok := c.numbers("salary")
	if !ok {
		c.skip("Average Salary", SkipMissingColumn)
		c.skip("Median Salary", SkipMissingColumn)
		c.skip("Salary Range", SkipMissingColumn)
	} else {
		c.salaryKPIs(col, salaries)
	}

	c.emit(result("Headcount", float64(c.ds.RowCount()), "", nil, false))
	c.flagRateKPI("Attrition Rate (%)", "attrition", attritionValues, benchAttrition, true)
}

func (c *calc) salaryKPIs(col string, salaries []float64) {
	mean, n := dataset.Mean(salaries)
	if n == 0 {
		c.skip("Average Salary", SkipNoNumericData)
		c.skip("Median Salary", SkipNoNumericData)
		c.skip("Salary Range", SkipNoNumericData)
		return
	}
	median, _ := dataset.Median(salaries)

	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range salaries {
		if isNaN(v) {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	c.emit(result("Average Salary", mean, col, nil, false))
	c.emit(result("Median Salary", median, col, nil, false))
	c.emit(result("Salary Range", maxV-minV, col, nil, false))
}
