/*
 * @module service/kpi/domain_customer_service
 * @description Customer Service领域KPI清单：响应/解决时长、CSAT、一次解决率、SLA达成率、升级率、重开率、工单金额
 * @architecture 服务层 - 领域计算方法
 * @documentReference ai_docs/kpi_catalogue.md
 * @stateFlow 见service/kpi/engine
 * @rules 是否类列(sla_met/escalated/reopened)按Yes命中行占有值行的百分比计算,空值行不计入分母
 * @dependencies 无
 * @refs service/kpi/engine
 */

package kpi

var (
	benchFirstResponse  = bench(60.0)
	benchResolutionTime = bench(24.0)
	benchCSAT           = bench(4.0)
	benchFCR            = bench(70.0)
	benchSLAMet         = bench(95.0)
	benchEscalation     = bench(10.0)
	benchReopen         = bench(5.0)
)

var yesValues = []string{"yes", "y", "true", "1", "có", "co"}
var noValues = []string{"no", "n", "false", "0", "không", "khong"}

func (c *calc) computeCustomerService() {
	c.meanKPI("Avg First Response Time (mins)", "first_response", benchFirstResponse, true)
	c.meanKPI("Avg Resolution Time (hours)", "resolution_time", benchResolutionTime, true)
	c.meanKPI("CSAT Score", "satisfaction_score", benchCSAT, false)
	c.flagRateKPI("First Contact Resolution (%)", "reopened", noValues, benchFCR, false)
	c.flagRateKPI("SLA Met (%)", "sla", yesValues, benchSLAMet, false)
	c.flagRateKPI("Escalation Rate (%)", "escalated", yesValues, benchEscalation, true)
	c.flagRateKPI("Reopen Rate (%)", "reopened", yesValues, benchReopen, true)
	c.sumKPI("Total Ticket Value (VND)", "ticket_value", nil, false)
}
