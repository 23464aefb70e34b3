/*
 * @module service/kpi/domain_manufacturing
 * @description Manufacturing领域KPI清单：FPY、不良率、产量、节拍、稼动率、停机、单位成本与OEE三因子分解
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules FPY+不良率恒等于100(同一良品/不良品划分推导);OEE=可用率×性能率×良品率×100,三因子单独可取
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

import "insight-service/service/dataset"

var (
	benchFPY         = bench(95.0)
	benchDefectRate  = bench(2.0)
	benchUtilization = bench(90.0)
	benchOEE         = bench(85.0)
)

func (c *calc) computeManufacturing() {
	unitsCol, unitsValues, unitsOK := c.numbers("units_produced")
	var unitsSum float64
	unitsN := 0
	if unitsOK {
		unitsSum, unitsN = dataset.Sum(unitsValues)
	}
	hasUnits := unitsOK && unitsN > 0 && unitsSum > 0

	c.yieldAndDefect(unitsSum, hasUnits)

	if unitsOK && unitsN > 0 {
		mean, _ := dataset.Mean(unitsValues)
		c.emit(result("Avg Production Output (units/shift)", mean, unitsCol, nil, false))
	} else {
		c.skip("Avg Production Output (units/shift)", SkipMissingColumn)
	}

	c.cycleTime(unitsSum, hasUnits)
	c.ratioKPI("Machine Utilization (%)", "actual_run", "available_hours", 100, benchUtilization, false)
	c.sumKPI("Total Downtime (hours)", "downtime_hours", nil, true)
	c.meanKPI("Avg Downtime (hours/shift)", "downtime_hours", nil, true)
	c.costPerUnit(unitsSum, hasUnits)
	c.oee(unitsSum, hasUnits)
}

// yieldAndDefect FPY与不良率
// 两者来自同一良品/不良品划分,缺一列时用另一列按恒等式推导,保证二者之和恒为100
func (c *calc) yieldAndDefect(unitsSum float64, hasUnits bool) {
	if !hasUnits {
		c.skip("First Pass Yield (%)", SkipMissingColumn)
		c.skip("Defect Rate (%)", SkipMissingColumn)
		return
	}

	goodCol, goodValues, goodOK := c.numbers("good_units")
	defectCol, defectValues, defectOK := c.numbers("defective_units")

	var fpy, defectRate float64
	var fpySource, defectSource string
	switch {
	case goodOK:
		goodSum, n := dataset.Sum(goodValues)
		if n == 0 {
			c.skip("First Pass Yield (%)", SkipNoNumericData)
			c.skip("Defect Rate (%)", SkipNoNumericData)
			return
		}
		fpy = goodSum / unitsSum * 100
		defectRate = 100 - fpy
		fpySource, defectSource = goodCol, goodCol
		if defectOK {
			defectSource = defectCol
		}
	case defectOK:
		defectSum, n := dataset.Sum(defectValues)
		if n == 0 {
			c.skip("First Pass Yield (%)", SkipNoNumericData)
			c.skip("Defect Rate (%)", SkipNoNumericData)
			return
		}
		defectRate = defectSum / unitsSum * 100
		fpy = 100 - defectRate
		fpySource, defectSource = defectCol, defectCol
	default:
		c.skip("First Pass Yield (%)", SkipMissingColumn)
		c.skip("Defect Rate (%)", SkipMissingColumn)
		return
	}

	c.emit(result("First Pass Yield (%)", fpy, fpySource, benchFPY, false))
	c.emit(result("Defect Rate (%)", defectRate, defectSource, benchDefectRate, true))
}

// cycleTime 节拍时间:可用工时总分钟数/总产量
func (c *calc) cycleTime(unitsSum float64, hasUnits bool) {
	const name = "Cycle Time (min/unit)"
	col, hours, ok := c.numbers("available_hours")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	if !hasUnits {
		c.skip(name, SkipZeroDenominator)
		return
	}
	hoursSum, n := dataset.Sum(hours)
	if n == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	c.emit(result(name, hoursSum*60/unitsSum, col, nil, true))
}

// costPerUnit 单位成本:总生产成本/总产量
func (c *calc) costPerUnit(unitsSum float64, hasUnits bool) {
	const name = "Cost per Unit (VND)"
	col, costs, ok := c.numbers("production_cost")
	if !ok {
		c.skip(name, SkipMissingColumn)
		return
	}
	if !hasUnits {
		c.skip(name, SkipZeroDenominator)
		return
	}
	costSum, n := dataset.Sum(costs)
	if n == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	c.emit(result(name, costSum/unitsSum, col, nil, true))
}

// oee OEE三因子分解
// 可用率=(可用工时-停机工时)/可用工时;性能率=实际产量/理论最大产量;良品率=良品/实际产量
// 三个因子各自作为独立KPI输出,便于定位短板因子
func (c *calc) oee(unitsSum float64, hasUnits bool) {
	const name = "OEE - Overall Equipment Effectiveness (%)"

	availCol, availValues, availOK := c.numbers("available_hours")
	_, downValues, downOK := c.numbers("downtime_hours")
	_, theoreticalValues, theoreticalOK := c.numbers("theoretical_max")
	_, goodValues, goodOK := c.numbers("good_units")

	if !availOK || !downOK || !theoreticalOK || !goodOK || !hasUnits {
		c.skip(name, SkipMissingColumn)
		return
	}

	availSum, availN := dataset.Sum(availValues)
	downSum, downN := dataset.Sum(downValues)
	theoreticalSum, theoreticalN := dataset.Sum(theoreticalValues)
	goodSum, goodN := dataset.Sum(goodValues)
	if availN == 0 || downN == 0 || theoreticalN == 0 || goodN == 0 {
		c.skip(name, SkipNoNumericData)
		return
	}
	if availSum == 0 || theoreticalSum == 0 {
		c.skip(name, SkipZeroDenominator)
		return
	}

	availability := (availSum - downSum) / availSum
	performance := unitsSum / theoreticalSum
	quality := goodSum / unitsSum

	c.emit(result("OEE Availability (%)", availability*100, availCol, nil, false))
	c.emit(result("OEE Performance (%)", performance*100, availCol, nil, false))
	c.emit(result("OEE Quality (%)", quality*100, availCol, nil, false))
	c.emit(result(name, availability*performance*quality*100, availCol, benchOEE, false))
}
