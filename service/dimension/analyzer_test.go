package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insight-service/service/dataset"
)

func mustDataset(t *testing.T, columns []string, rows [][]interface{}) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns, rows)
	require.NoError(t, err)
	return ds
}

func channelDataset(t *testing.T) *dataset.Dataset {
	// Facebook: ROAS 9, Google: 3, TikTok: 0.5, Email: 2
	return mustDataset(t,
		[]string{"channel", "spend", "revenue"},
		[][]interface{}{
			{"Facebook Ads", 10000, 90000},
			{"Google Ads", 30000, 90000},
			{"TikTok Ads", 40000, 20000},
			{"Email", 5000, 10000},
		})
}

func TestAnalyzeSumRanking(t *testing.T) {
	analyzer := NewAnalyzer()
	breakdown, err := analyzer.Analyze(channelDataset(t), "channel", "revenue", AggSum)
	require.NoError(t, err)

	require.Len(t, breakdown.Groups, 4)
	assert.Equal(t, "Facebook Ads", breakdown.Groups[0].Name)
	assert.Equal(t, "Email", breakdown.Worst)
	assert.InDelta(t, 90000.0, breakdown.Groups[0].Value, 1e-9)

	// 并列值按组名排序
	assert.Equal(t, "Facebook Ads", breakdown.Best)
	assert.Equal(t, "Google Ads", breakdown.Groups[1].Name)
}

func TestAnalyzeMeanAndCount(t *testing.T) {
	analyzer := NewAnalyzer()
	ds := mustDataset(t,
		[]string{"rep", "deal_value"},
		[][]interface{}{
			{"An", 100}, {"An", 300}, {"Binh", 150},
		})

	mean, err := analyzer.Analyze(ds, "rep", "deal_value", AggMean)
	require.NoError(t, err)
	assert.Equal(t, "An", mean.Best)
	assert.InDelta(t, 200.0, mean.Groups[0].Value, 1e-9)

	count, err := analyzer.Analyze(ds, "rep", "deal_value", AggCount)
	require.NoError(t, err)
	assert.Equal(t, "An", count.Best)
	assert.InDelta(t, 2.0, count.Groups[0].Value, 1e-9)
	assert.Equal(t, 2, count.Groups[0].Count)
}

func TestAnalyzeMissingColumn(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.Analyze(channelDataset(t), "region", "revenue", AggSum)
	assert.Error(t, err)
}

func TestAnalyzeROASInsights(t *testing.T) {
	analyzer := NewAnalyzer()
	breakdown, err := analyzer.AnalyzeROAS(channelDataset(t), "channel", "revenue", "spend")
	require.NoError(t, err)

	// 全集ROAS = 210000/85000
	assert.InDelta(t, 210000.0/85000.0, breakdown.AverageROAS, 1e-9)
	assert.Equal(t, "Facebook Ads", breakdown.Best)
	assert.Equal(t, "TikTok Ads", breakdown.Worst)

	byType := make(map[string][]Insight)
	for _, insight := range breakdown.Insights {
		byType[insight.Type] = append(byType[insight.Type], insight)
	}

	// Facebook ROAS 9 超过均值1.5倍
	require.Len(t, byType[InsightScaleWinner], 1)
	assert.Equal(t, "Facebook Ads", byType[InsightScaleWinner][0].Group)

	// TikTok ROAS 0.5且花费高于中位数
	require.Len(t, byType[InsightStopBleeding], 1)
	assert.Equal(t, "TikTok Ads", byType[InsightStopBleeding][0].Group)
	assert.NotEmpty(t, byType[InsightStopBleeding][0].Action)

	require.Len(t, byType[InsightBudgetReallocation], 1)
	assert.Equal(t, "TikTok Ads", byType[InsightBudgetReallocation][0].Group)
}

func TestStopBleedingRequiresBothConditions(t *testing.T) {
	analyzer := NewAnalyzer()
	// Email ROAS 0.8 但花费低于中位数,不触发stop_bleeding
	ds := mustDataset(t,
		[]string{"channel", "spend", "revenue"},
		[][]interface{}{
			{"Facebook Ads", 30000, 90000},
			{"Google Ads", 30000, 60000},
			{"TikTok Ads", 30000, 45000},
			{"Email", 1000, 800},
		})

	breakdown, err := analyzer.AnalyzeROAS(ds, "channel", "revenue", "spend")
	require.NoError(t, err)

	for _, insight := range breakdown.Insights {
		assert.NotEqual(t, InsightStopBleeding, insight.Type)
	}
}

func TestAnalyzeROASZeroSpendGroup(t *testing.T) {
	analyzer := NewAnalyzer()
	ds := mustDataset(t,
		[]string{"channel", "spend", "revenue"},
		[][]interface{}{
			{"Organic", 0, 50000},
			{"Paid", 10000, 30000},
		})

	breakdown, err := analyzer.AnalyzeROAS(ds, "channel", "revenue", "spend")
	require.NoError(t, err)

	// 零花费组ROAS记0,不产生除零
	for _, group := range breakdown.Groups {
		if group.Name == "Organic" {
			assert.Equal(t, 0.0, group.ROAS)
		}
	}
}

func TestAnalyzeMeanSkipsUnparseableCells(t *testing.T) {
	ds := mustDataset(t,
		[]string{"kenh", "doanh_thu"},
		[][]interface{}{
			{"Facebook", 100},
			{"Facebook", "n/a"},
			{"Google", 50},
		})

	breakdown, err := NewAnalyzer().Analyze(ds, "kenh", "doanh_thu", AggMean)
	require.NoError(t, err)

	// Facebook均值只除以可解析的1行,是100而不是50
	require.Len(t, breakdown.Groups, 2)
	assert.Equal(t, "Facebook", breakdown.Groups[0].Name)
	assert.InDelta(t, 100.0, breakdown.Groups[0].Value, 1e-9)
	assert.Equal(t, 2, breakdown.Groups[0].Count)
	assert.InDelta(t, 50.0, breakdown.Groups[1].Value, 1e-9)
}
