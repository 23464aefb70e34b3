package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insight-service/service/dataset"
	"insight-service/service/meta"
	"insight-service/service/resolver"
)

func newTestEngine() *Engine {
	return NewEngine(resolver.NewKeywordResolver())
}

func mustDataset(t *testing.T, columns []string, rows [][]interface{}) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns, rows)
	require.NoError(t, err)
	return ds
}

func manufacturingDataset(t *testing.T) *dataset.Dataset {
	return mustDataset(t,
		[]string{"units_produced", "good_units", "defective_units", "available_hours",
			"downtime_hours", "theoretical_max_output", "actual_run_hours", "production_cost"},
		[][]interface{}{
			{950, 920, 30, 8, 0.5, 1000, 7.5, 47500000},
		})
}

func TestManufacturingOEEDecomposition(t *testing.T) {
	engine := newTestEngine()
	results := engine.ComputeKPIs(manufacturingDataset(t), meta.DomainManufacturing)

	require.Contains(t, results, "First Pass Yield (%)")
	require.Contains(t, results, "Defect Rate (%)")
	require.Contains(t, results, "OEE - Overall Equipment Effectiveness (%)")

	assert.InDelta(t, 96.8421052632, results["First Pass Yield (%)"].Value, 1e-6)
	assert.InDelta(t, 3.1578947368, results["Defect Rate (%)"].Value, 1e-6)
	assert.InDelta(t, 93.75, results["OEE Availability (%)"].Value, 1e-6)
	assert.InDelta(t, 95.0, results["OEE Performance (%)"].Value, 1e-6)
	assert.InDelta(t, 96.8421052632, results["OEE Quality (%)"].Value, 1e-6)
	assert.InDelta(t, 85.98245614, results["OEE - Overall Equipment Effectiveness (%)"].Value, 1e-6)

	// OEE等于三因子乘积
	product := results["OEE Availability (%)"].Value / 100 *
		results["OEE Performance (%)"].Value / 100 *
		results["OEE Quality (%)"].Value / 100 * 100
	assert.InDelta(t, product, results["OEE - Overall Equipment Effectiveness (%)"].Value, 1e-9)
}

func TestManufacturingYieldDefectComplement(t *testing.T) {
	engine := newTestEngine()
	results := engine.ComputeKPIs(manufacturingDataset(t), meta.DomainManufacturing)

	sum := results["First Pass Yield (%)"].Value + results["Defect Rate (%)"].Value
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestManufacturingDefectInferredFromYield(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"units_produced", "good_units"},
		[][]interface{}{{100, 97}, {200, 190}})

	results := engine.ComputeKPIs(ds, meta.DomainManufacturing)
	require.Contains(t, results, "Defect Rate (%)")
	sum := results["First Pass Yield (%)"].Value + results["Defect Rate (%)"].Value
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.InDelta(t, 287.0/300.0*100, results["First Pass Yield (%)"].Value, 1e-9)
}

func TestManufacturingCostAndUtilization(t *testing.T) {
	engine := newTestEngine()
	results := engine.ComputeKPIs(manufacturingDataset(t), meta.DomainManufacturing)

	assert.InDelta(t, 50000.0, results["Cost per Unit (VND)"].Value, 1e-6)
	assert.InDelta(t, 93.75, results["Machine Utilization (%)"].Value, 1e-6)
	assert.InDelta(t, 0.5, results["Total Downtime (hours)"].Value, 1e-9)
	assert.InDelta(t, 8.0*60/950, results["Cycle Time (min/unit)"].Value, 1e-9)
}

func marketingDataset(t *testing.T) *dataset.Dataset {
	return mustDataset(t,
		[]string{"campaign", "channel", "spend", "revenue", "impressions", "clicks", "conversions"},
		[][]interface{}{
			{"Tet Sale", "Facebook Ads", 40000, 180000, 100000, 3200, 200},
			{"Brand Awareness", "Google Ads", 60000, 240000, 150000, 4800, 300},
		})
}

func TestMarketingCPAExact(t *testing.T) {
	engine := newTestEngine()
	results := engine.ComputeKPIs(marketingDataset(t), meta.DomainMarketing)

	require.Contains(t, results, "Cost Per Acquisition (CPA)")
	assert.Equal(t, 200.0, results["Cost Per Acquisition (CPA)"].Value)
	assert.Equal(t, StatusAbove, results["Cost Per Acquisition (CPA)"].Status)
}

func TestMarketingZeroConversionsSkipsCPA(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"spend", "revenue", "impressions", "clicks", "conversions"},
		[][]interface{}{{40000, 180000, 100000, 3200, 0}})

	attempts := engine.ComputeAttempts(ds, meta.DomainMarketing)
	var cpa *Attempt
	for i := range attempts {
		if attempts[i].Name == "Cost Per Acquisition (CPA)" {
			cpa = &attempts[i]
		}
	}
	require.NotNil(t, cpa)
	assert.Nil(t, cpa.Result)
	assert.Equal(t, SkipZeroDenominator, cpa.Skip)

	results := engine.ComputeKPIs(ds, meta.DomainMarketing)
	assert.NotContains(t, results, "Cost Per Acquisition (CPA)")
}

func TestMarketingSumBasedRatios(t *testing.T) {
	engine := newTestEngine()
	ds := marketingDataset(t)
	results := engine.ComputeKPIs(ds, meta.DomainMarketing)

	// 整列求和后相除,而非逐行比率的平均
	clicks, _ := ds.Numbers("clicks")
	impressions, _ := ds.Numbers("impressions")
	clickSum, _ := dataset.Sum(clicks)
	imprSum, _ := dataset.Sum(impressions)
	assert.InDelta(t, clickSum/imprSum*100, results["CTR (%)"].Value, 1e-9)

	assert.InDelta(t, 420000.0/100000.0, results["ROAS"].Value, 1e-9)
	assert.InDelta(t, 420000.0, results["Total Revenue"].Value, 1e-9)
	assert.InDelta(t, 100000.0, results["Total Spend"].Value, 1e-9)
}

func TestComputeIdempotent(t *testing.T) {
	engine := newTestEngine()
	ds := manufacturingDataset(t)

	first := engine.ComputeKPIs(ds, meta.DomainManufacturing)
	second := engine.ComputeKPIs(ds, meta.DomainManufacturing)
	assert.Equal(t, first, second)
}

func customerServiceDataset(t *testing.T) *dataset.Dataset {
	return mustDataset(t,
		[]string{"ticket_id", "first_response_time_mins", "resolution_time_hours",
			"satisfaction_score", "sla_met", "escalated", "reopened", "ticket_value"},
		[][]interface{}{
			{"T-001", 30, 4, 5, "Yes", "No", "No", 500000},
			{"T-002", 90, 12, 3, "No", "Yes", "Yes", 1200000},
			{"T-003", 45, 6, 4, "Yes", "No", "No", 800000},
			{"T-004", 15, 2, 5, "Yes", "No", "No", 300000},
		})
}

func TestCustomerServiceKPIs(t *testing.T) {
	engine := newTestEngine()
	results := engine.ComputeKPIs(customerServiceDataset(t), meta.DomainCustomerService)

	assert.InDelta(t, 45.0, results["Avg First Response Time (mins)"].Value, 1e-9)
	assert.InDelta(t, 6.0, results["Avg Resolution Time (hours)"].Value, 1e-9)
	assert.InDelta(t, 4.25, results["CSAT Score"].Value, 1e-9)
	assert.InDelta(t, 75.0, results["SLA Met (%)"].Value, 1e-9)
	assert.InDelta(t, 25.0, results["Escalation Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 25.0, results["Reopen Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 75.0, results["First Contact Resolution (%)"].Value, 1e-9)
	assert.InDelta(t, 2800000.0, results["Total Ticket Value (VND)"].Value, 1e-9)
}

func TestDroppingColumnOmitsOnlyDependentKPIs(t *testing.T) {
	engine := newTestEngine()
	full := customerServiceDataset(t)
	reduced, err := full.DropColumn("satisfaction_score")
	require.NoError(t, err)

	withCSAT := engine.ComputeKPIs(full, meta.DomainCustomerService)
	withoutCSAT := engine.ComputeKPIs(reduced, meta.DomainCustomerService)

	assert.Contains(t, withCSAT, "CSAT Score")
	assert.NotContains(t, withoutCSAT, "CSAT Score")

	for name, result := range withoutCSAT {
		assert.Equal(t, withCSAT[name].Value, result.Value, name)
	}
	assert.Len(t, withoutCSAT, len(withCSAT)-1)
}

func TestSalesKPIs(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"deal_id", "stage", "deal_value", "probability", "created_date", "close_date"},
		[][]interface{}{
			{"D-1", "Closed Won", 50000000, 100, "2024-01-01", "2024-01-31"},
			{"D-2", "Closed Won", 30000000, 100, "2024-02-01", "2024-03-02"},
			{"D-3", "Closed Lost", 20000000, 0, "2024-01-10", "2024-02-10"},
			{"D-4", "Negotiation", 40000000, 50, "2024-03-01", ""},
			{"D-5", "Proposal", 20000000, 25, "2024-03-05", ""},
		})

	results := engine.ComputeKPIs(ds, meta.DomainSales)

	assert.InDelta(t, 200.0/3.0, results["Win Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 60000000.0, results["Total Pipeline Value"].Value, 1e-9)
	assert.InDelta(t, 25000000.0, results["Weighted Pipeline"].Value, 1e-9)
	assert.InDelta(t, 40000000.0, results["Average Deal Size"].Value, 1e-9)
	assert.InDelta(t, 80000000.0, results["Closed Won Revenue"].Value, 1e-9)
	assert.InDelta(t, 30.0, results["Sales Cycle (days)"].Value, 1e-9)
}

func TestFinanceKPIs(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"month", "revenue", "gross_profit", "operating_income", "net_income",
			"operating_cash_flow", "free_cash_flow", "current_assets", "current_liabilities",
			"total_debt", "equity"},
		[][]interface{}{
			{"2024-01", 1000, 400, 200, 100, 150, 80, 300, 200, 400, 200},
			{"2024-02", 1200, 480, 240, 140, 170, 90, 300, 200, 400, 200},
		})

	results := engine.ComputeKPIs(ds, meta.DomainFinance)

	assert.InDelta(t, 40.0, results["Gross Margin (%)"].Value, 1e-9)
	assert.Equal(t, StatusAtTarget, results["Gross Margin (%)"].Status)
	assert.InDelta(t, 20.0, results["Operating Margin (%)"].Value, 1e-9)
	assert.InDelta(t, 240.0/2200.0*100, results["Net Profit Margin (%)"].Value, 1e-9)
	assert.InDelta(t, 20.0, results["Revenue Growth (%)"].Value, 1e-9)
	assert.InDelta(t, 320.0, results["Operating Cash Flow"].Value, 1e-9)
	assert.InDelta(t, 170.0, results["Free Cash Flow"].Value, 1e-9)
	assert.InDelta(t, 1.5, results["Current Ratio"].Value, 1e-9)
	assert.InDelta(t, 2.0, results["Debt-to-Equity Ratio"].Value, 1e-9)
	assert.Equal(t, StatusAtTarget, results["Debt-to-Equity Ratio"].Status)
	assert.NotContains(t, results, "Quick Ratio")
}

func TestEcommerceKPIs(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"date", "sessions", "transactions", "revenue", "add_to_carts",
			"checkouts", "bounce_rate", "mobile_traffic", "returning_rate"},
		[][]interface{}{
			{"2024-01-01", 1000, 25, 10000000, 200, 50, 45, 60, 28},
			{"2024-01-02", 1000, 35, 14000000, 200, 70, 55, 70, 32},
		})

	results := engine.ComputeKPIs(ds, meta.DomainEcommerce)

	assert.InDelta(t, 3.0, results["Conversion Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 400000.0, results["AOV (Average Order Value)"].Value, 1e-9)
	assert.InDelta(t, 70.0, results["Cart Abandonment Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 12000.0, results["Revenue per Session"].Value, 1e-9)
	assert.InDelta(t, 30.0, results["Returning Customer Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 50.0, results["Bounce Rate (%)"].Value, 1e-9)
	assert.InDelta(t, 65.0, results["Mobile Traffic (%)"].Value, 1e-9)
}

func TestHRKPIs(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"employee_id", "salary", "employment_status"},
		[][]interface{}{
			{"E-1", 10000000, "Active"},
			{"E-2", 20000000, "Active"},
			{"E-3", 30000000, "Left"},
			{"E-4", 40000000, "Active"},
		})

	results := engine.ComputeKPIs(ds, meta.DomainHR)

	assert.InDelta(t, 25000000.0, results["Average Salary"].Value, 1e-9)
	assert.InDelta(t, 25000000.0, results["Median Salary"].Value, 1e-9)
	assert.InDelta(t, 30000000.0, results["Salary Range"].Value, 1e-9)
	assert.InDelta(t, 4.0, results["Headcount"].Value, 1e-9)
	assert.InDelta(t, 25.0, results["Attrition Rate (%)"].Value, 1e-9)
}

func TestGeneralFallbackSummaries(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t,
		[]string{"label", "amount"},
		[][]interface{}{{"a", 10}, {"b", 30}})

	results := engine.ComputeKPIs(ds, "unknown_domain")

	require.Contains(t, results, "Total amount")
	assert.InDelta(t, 40.0, results["Total amount"].Value, 1e-9)
	assert.InDelta(t, 20.0, results["Average amount"].Value, 1e-9)
	assert.NotContains(t, results, "Total label")
}

func TestUnknownDomainNeverPanics(t *testing.T) {
	engine := newTestEngine()
	ds := mustDataset(t, []string{"x"}, nil)

	results := engine.ComputeKPIs(ds, "manufacturing")
	assert.Empty(t, results)
}
