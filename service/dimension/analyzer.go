/*
 * @module service/dimension/analyzer
 * @description 维度分析器：按类别维度分组聚合指标,输出排序榜单与规则化行动洞察
 * @architecture 服务层 - 纯函数式计算
 * @documentReference ai_docs/dimension.md
 * @stateFlow 分组 -> 聚合(sum/mean/count) -> 降序排序 -> 规则化洞察合成
 * @rules 洞察为结构化记录而非自由文本;scale_winner要求超出全集均值1.5倍,stop_bleeding要求ROAS<1且花费高于中位数,两个条件缺一不可
 * @dependencies 无
 * @refs service/kpi, api/controllers
 */

package dimension

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"insight-service/service/dataset"
)

// Aggregation 分组聚合方式
type Aggregation string

const (
	AggSum   Aggregation = "sum"
	AggMean  Aggregation = "mean"
	AggCount Aggregation = "count"
)

// 洞察类型
const (
	InsightScaleWinner        = "scale_winner"
	InsightStopBleeding       = "stop_bleeding"
	InsightBudgetReallocation = "budget_reallocation"
)

// scale_winner的触发倍数:组内比率超过全集均值的1.5倍
const scaleWinnerFactor = 1.5

// Group 单个维度组的聚合结果
type Group struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Insight 规则化行动洞察,供下游叙事层引用但不依赖其生成
type Insight struct {
	Type    string `json:"type"`
	Group   string `json:"group"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Breakdown 单维度聚合榜单
type Breakdown struct {
	Dimension   string      `json:"dimension"`
	Metric      string      `json:"metric"`
	Aggregation Aggregation `json:"aggregation"`
	Groups      []Group     `json:"groups"`
	Best        string      `json:"best"`
	Worst       string      `json:"worst"`
}

// Analyzer 维度分析器,无状态,可在并发调用间共享
type Analyzer struct{}

// NewAnalyzer 创建维度分析器
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze 按维度列分组聚合指标列并降序排序
// 维度值为空的行不参与分组;并列值按组名排序保证输出确定
func (a *Analyzer) Analyze(ds *dataset.Dataset, dimension, metric string, agg Aggregation) (*Breakdown, error) {
	dims, ok := ds.Strings(dimension)
	if !ok {
		return nil, fmt.Errorf("维度列不存在: %s", dimension)
	}
	values, ok := ds.Numbers(metric)
	if !ok {
		return nil, fmt.Errorf("指标列不存在: %s", metric)
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	validCounts := make(map[string]int)
	for i, dim := range dims {
		dim = strings.TrimSpace(dim)
		if dim == "" {
			continue
		}
		counts[dim]++
		if i < len(values) && !math.IsNaN(values[i]) {
			sums[dim] += values[i]
			validCounts[dim]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("维度列无有效分组: %s", dimension)
	}

	groups := make([]Group, 0, len(counts))
	for name, count := range counts {
		value := sums[name]
		switch agg {
		case AggMean:
			// 均值只除以指标可解析的行数,与dataset.Mean的NaN跳过约定一致
			if valid := validCounts[name]; valid > 0 {
				value /= float64(valid)
			}
		case AggCount:
			value = float64(count)
		}
		groups = append(groups, Group{Name: name, Value: value, Count: count})
	}
	sortGroups(groups)

	return &Breakdown{
		Dimension:   dimension,
		Metric:      metric,
		Aggregation: agg,
		Groups:      groups,
		Best:        groups[0].Name,
		Worst:       groups[len(groups)-1].Name,
	}, nil
}

// ROASGroup 单个组的收入/花费/ROAS
type ROASGroup struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	ROAS    float64 `json:"roas"`
}

// ROASBreakdown 按维度分组的ROAS榜单与洞察
type ROASBreakdown struct {
	Dimension   string      `json:"dimension"`
	AverageROAS float64     `json:"average_roas"`
	Groups      []ROASGroup `json:"groups"`
	Best        string      `json:"best"`
	Worst       string      `json:"worst"`
	Insights    []Insight   `json:"insights"`
}

// AnalyzeROAS 按维度分组计算各组ROAS并合成规则化洞察
// 全集平均ROAS按总收入/总花费计算,与KPI引擎的求和口径一致
func (a *Analyzer) AnalyzeROAS(ds *dataset.Dataset, dimension, revenueCol, spendCol string) (*ROASBreakdown, error) {
	dims, ok := ds.Strings(dimension)
	if !ok {
		return nil, fmt.Errorf("维度列不存在: %s", dimension)
	}
	revenues, ok := ds.Numbers(revenueCol)
	if !ok {
		return nil, fmt.Errorf("收入列不存在: %s", revenueCol)
	}
	spends, ok := ds.Numbers(spendCol)
	if !ok {
		return nil, fmt.Errorf("花费列不存在: %s", spendCol)
	}

	revSums := make(map[string]float64)
	spendSums := make(map[string]float64)
	for i, dim := range dims {
		dim = strings.TrimSpace(dim)
		if dim == "" {
			continue
		}
		if i < len(revenues) && !math.IsNaN(revenues[i]) {
			revSums[dim] += revenues[i]
		}
		if i < len(spends) && !math.IsNaN(spends[i]) {
			spendSums[dim] += spends[i]
		}
	}
	if len(spendSums) == 0 {
		return nil, fmt.Errorf("维度列无有效分组: %s", dimension)
	}

	var totalRevenue, totalSpend float64
	var spendList []float64
	groups := make([]ROASGroup, 0, len(spendSums))
	for name, spend := range spendSums {
		revenue := revSums[name]
		group := ROASGroup{Name: name, Revenue: revenue, Spend: spend}
		if spend > 0 {
			group.ROAS = revenue / spend
		}
		totalRevenue += revenue
		totalSpend += spend
		spendList = append(spendList, spend)
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].ROAS != groups[j].ROAS {
			return groups[i].ROAS > groups[j].ROAS
		}
		return groups[i].Name < groups[j].Name
	})

	averageROAS := 0.0
	if totalSpend > 0 {
		averageROAS = totalRevenue / totalSpend
	}
	medianSpend, _ := dataset.Median(spendList)

	breakdown := &ROASBreakdown{
		Dimension:   dimension,
		AverageROAS: averageROAS,
		Groups:      groups,
		Best:        groups[0].Name,
		Worst:       groups[len(groups)-1].Name,
	}
	breakdown.Insights = a.roasInsights(groups, averageROAS, medianSpend)
	return breakdown, nil
}

// roasInsights ROAS榜单的规则化洞察
func (a *Analyzer) roasInsights(groups []ROASGroup, averageROAS, medianSpend float64) []Insight {
	var insights []Insight

	for _, group := range groups {
		if averageROAS > 0 && group.ROAS > scaleWinnerFactor*averageROAS {
			insights = append(insights, Insight{
				Type:    InsightScaleWinner,
				Group:   group.Name,
				Message: fmt.Sprintf("%s đạt ROAS %.2f, gấp %.1f lần trung bình toàn bộ", group.Name, group.ROAS, group.ROAS/averageROAS),
				Action:  fmt.Sprintf("Tăng ngân sách cho %s để mở rộng hiệu quả", group.Name),
			})
		}
		if group.ROAS < 1.0 && group.Spend > medianSpend {
			insights = append(insights, Insight{
				Type:    InsightStopBleeding,
				Group:   group.Name,
				Message: fmt.Sprintf("%s đang lỗ với ROAS %.2f trong khi chi tiêu %.0f cao hơn trung vị", group.Name, group.ROAS, group.Spend),
				Action:  fmt.Sprintf("Tạm dừng hoặc tối ưu lại %s trước khi chi thêm", group.Name),
			})
		}
	}

	best, worst := groups[0], groups[len(groups)-1]
	if len(groups) >= 2 && worst.Spend > 0 && best.ROAS >= 2*worst.ROAS && best.ROAS > 0 {
		insights = append(insights, Insight{
			Type:    InsightBudgetReallocation,
			Group:   worst.Name,
			Message: fmt.Sprintf("Chuyển ngân sách từ %s (ROAS %.2f) sang %s (ROAS %.2f) sẽ cải thiện hiệu quả tổng thể", worst.Name, worst.ROAS, best.Name, best.ROAS),
			Action:  fmt.Sprintf("Phân bổ lại một phần ngân sách của %s sang %s", worst.Name, best.Name),
		})
	}
	return insights
}

func sortGroups(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Value != groups[j].Value {
			return groups[i].Value > groups[j].Value
		}
		return groups[i].Name < groups[j].Name
	})
}
