/*
 * @module service/kpi/domain_general
 * @description General兜底领域：对前几个数值列输出总和与均值摘要
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 按原始列顺序取前5个含有效数值的列,保证输出确定;无数值列时返回空结果而非错误
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import (
	"fmt"

	"insight-service/service/dataset"
)

// general领域最多摘要的数值列数
const generalMaxColumns = 5

func (c *calc) computeGeneral() {
	picked := 0
	for _, col := range c.ds.Columns() {
		if picked >= generalMaxColumns {
			break
		}
		values, ok := c.ds.Numbers(col)
		if !ok {
			continue
		}
		total, n := dataset.Sum(values)
		if n == 0 {
			continue
		}
		mean, _ := dataset.Mean(values)
		c.emit(result(fmt.Sprintf("Total %s", col), total, col, nil, false))
		c.emit(result(fmt.Sprintf("Average %s", col), mean, col, nil, false))
		picked++
	}
}
