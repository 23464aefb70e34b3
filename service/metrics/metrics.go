/*
 * @module service/metrics/metrics
 * @description Prometheus指标定义，覆盖分析请求量、KPI计算/跳过计数与引擎耗时分布
 * @architecture 常量层 - 进程级指标注册
 * @documentReference ai_docs/observability.md
 * @stateFlow 包加载时注册到默认Registry -> 业务代码打点 -> /metrics暴露
 * @rules 指标命名统一insight_前缀;标签基数受控,reason与domain均为有限枚举
 * @dependencies github.com/prometheus/client_golang
 * @refs service/kpi, service/benchmark, main.go
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisTotal 按业务域统计的分析请求总数
	AnalysisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_analysis_total",
		Help: "Total analysis runs by business domain",
	}, []string{"domain"})

	// KPIComputedTotal 成功算出的KPI总数
	KPIComputedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_kpi_computed_total",
		Help: "KPIs successfully computed by domain",
	}, []string{"domain"})

	// KPISkippedTotal 被跳过的KPI总数,按跳过原因细分
	KPISkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_kpi_skipped_total",
		Help: "KPIs skipped by domain and skip reason",
	}, []string{"domain", "reason"})

	// EngineDuration KPI引擎单次计算耗时分布
	EngineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insight_engine_duration_seconds",
		Help:    "KPI engine computation latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"domain"})

	// BenchmarkQueryTotal 基准查询总数,按是否命中细分
	BenchmarkQueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_benchmark_query_total",
		Help: "Benchmark store queries by domain and outcome",
	}, []string{"domain", "outcome"})

	// BenchmarkReloadTotal 基准数据整表重载次数
	BenchmarkReloadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_benchmark_reload_total",
		Help: "Benchmark wholesale reloads by result",
	}, []string{"result"})
)
