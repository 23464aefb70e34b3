/*
 * @module service/kpi/engine
 * @description KPI引擎：按业务域分发计算固定KPI清单，单个KPI失败只影响自身
 * @architecture 服务层 - 纯函数式计算,无每请求可变状态,可在并发调用间安全共享
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow 域键归一化 -> 领域分发 -> 逐KPI尝试(算出或记录跳过原因) -> 打点 -> 返回结果映射
 * @rules 同一数据集与域的两次计算结果必须逐位一致;单个KPI的列缺失/零分母/日期解析失败均不中断整体
 * @dependencies github.com/prometheus/client_golang
 * @refs service/resolver, service/meta, service/metrics
 */

package kpi

import (
	"time"

	"insight-service/service/dataset"
	"insight-service/service/meta"
	"insight-service/service/metrics"
	"insight-service/service/resolver"
)

// Engine KPI计算引擎,持有列解析策略,自身无可变状态
type Engine struct {
	res resolver.ColumnResolver
}

// NewEngine 创建KPI引擎
func NewEngine(res resolver.ColumnResolver) *Engine {
	return &Engine{res: res}
}

// ComputeAttempts 计算指定领域的全部KPI尝试,保留每个KPI算出或跳过的记录
// 未知领域按general处理
func (e *Engine) ComputeAttempts(ds *dataset.Dataset, domain string) []Attempt {
	start := time.Now()

	key := meta.DomainGeneral
	if profile, ok := meta.GetProfile(domain); ok {
		key = profile.Key
	}

	c := &calc{ds: ds, res: e.res}
	switch key {
	case meta.DomainHR:
		c.computeHR()
	case meta.DomainMarketing:
		c.computeMarketing()
	case meta.DomainEcommerce:
		c.computeEcommerce()
	case meta.DomainSales:
		c.computeSales()
	case meta.DomainFinance:
		c.computeFinance()
	case meta.DomainManufacturing:
		c.computeManufacturing()
	case meta.DomainOperations:
		c.computeOperations()
	case meta.DomainCustomerService:
		c.computeCustomerService()
	default:
		c.computeGeneral()
	}

	metrics.AnalysisTotal.WithLabelValues(key).Inc()
	for _, attempt := range c.attempts {
		if attempt.Result != nil {
			metrics.KPIComputedTotal.WithLabelValues(key).Inc()
		} else {
			metrics.KPISkippedTotal.WithLabelValues(key, string(attempt.Skip)).Inc()
		}
	}
	metrics.EngineDuration.WithLabelValues(key).Observe(time.Since(start).Seconds())

	return c.attempts
}

// ComputeKPIs 计算指定领域的KPI,仅返回成功算出的部分
func (e *Engine) ComputeKPIs(ds *dataset.Dataset, domain string) map[string]*KPIResult {
	attempts := e.ComputeAttempts(ds, domain)
	results := make(map[string]*KPIResult, len(attempts))
	for _, attempt := range attempts {
		if attempt.Result != nil {
			results[attempt.Name] = attempt.Result
		}
	}
	return results
}
