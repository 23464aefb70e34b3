/*
 * @module service/meta/domains
 * @description 业务领域档案注册表，定义九大业务领域的关键词、核心KPI、基准说明和校验规则
 * @architecture 常量层 - 元数据定义
 * @documentReference ai_docs/domain_profiles.md
 * @stateFlow 进程启动时定义 -> 只读查询 -> 业务逻辑使用
 * @rules 注册表在进程生命周期内不可变，所有消费方通过构造函数注入而非直接引用全局变量
 * @dependencies 无外部依赖
 * @refs service/kpi, service/domaindetect
 */

package meta

import "strings"

// 领域键常量
const (
	DomainHR              = "hr"
	DomainMarketing       = "marketing"
	DomainEcommerce       = "e-commerce"
	DomainSales           = "sales"
	DomainFinance         = "finance"
	DomainManufacturing   = "manufacturing"
	DomainOperations      = "operations"
	DomainCustomerService = "customer_service"
	DomainGeneral         = "general"
)

// DomainProfile 单个业务领域的静态档案
// 关键词供领域识别使用,核心KPI清单决定KPI引擎尝试计算的指标集合
type DomainProfile struct {
	Key             string            `json:"key"`
	Name            string            `json:"name"`
	ExpertRole      string            `json:"expert_role"`
	Keywords        []string          `json:"keywords"`
	KeyKPIs         []string          `json:"key_kpis"`
	InsightsFocus   []string          `json:"insights_focus"`
	Benchmarks      map[string]string `json:"benchmarks"`
	ValidationRules map[string]string `json:"validation_rules,omitempty"`
	DataSources     string            `json:"data_sources,omitempty"`
}

var domainProfiles = map[string]*DomainProfile{
	DomainEcommerce: {
		Key:        DomainEcommerce,
		Name:       "E-commerce / Bán Hàng Trực Tuyến",
		ExpertRole: "E-commerce Growth Manager (10+ years experience, specialized in conversion optimization)",
		Keywords: []string{"order", "product", "customer", "cart", "checkout", "revenue",
			"quantity", "price", "sku", "inventory", "session", "don_hang", "gio_hang"},
		KeyKPIs: []string{"Conversion Rate (%)", "AOV (Average Order Value)", "Cart Abandonment Rate (%)",
			"Revenue per Session", "Returning Customer Rate (%)", "Bounce Rate (%)", "Mobile Traffic (%)"},
		InsightsFocus: []string{"Revenue optimization", "Product performance", "Customer behavior",
			"Checkout funnel", "Inventory management"},
		Benchmarks: map[string]string{
			"conversion_rate":  "2.5-3% (median), 5%+ (excellent)",
			"cart_abandonment": "76-79% (average), 23% (best-in-class)",
			"aov":              "350K-550K VND (Vietnam 2024 median)",
			"repeat_purchase":  "30%+ (healthy)",
		},
		ValidationRules: map[string]string{
			"conversion_rate":  "> 0, < 100",
			"cart_abandonment": "> 0, < 100",
			"aov":              "> 0",
			"revenue":          "= quantity * price",
		},
		DataSources: "iPrice Vietnam E-commerce Report 2024, Shopee Seller Statistics SEA",
	},
	DomainMarketing: {
		Key:        DomainMarketing,
		Name:       "Marketing / Quảng Cáo",
		ExpertRole: "Chief Marketing Officer (CMO) with 15+ years data-driven marketing experience",
		Keywords: []string{"campaign", "channel", "ad", "impression", "click", "ctr", "cpc",
			"roas", "spend", "conversion", "chien_dich", "quang_cao"},
		KeyKPIs: []string{"Total Revenue", "Total Spend", "ROAS", "Cost Per Acquisition (CPA)",
			"CTR (%)", "CPC", "Conversion Rate (%)"},
		InsightsFocus: []string{"Channel performance", "Budget allocation", "Campaign effectiveness",
			"Audience targeting", "ROI optimization"},
		Benchmarks: map[string]string{
			"roas":            "4:1 minimum (standard), 8:1 (excellent)",
			"ctr":             "3.17% (search average), 6.42% (top performers)",
			"cpa":             "100K-200K VND (Vietnam e-commerce median)",
			"conversion_rate": "2-3%",
		},
		ValidationRules: map[string]string{
			"roas":        ">= 4.0",
			"ctr":         "> 0",
			"spend":       "> 0",
			"impressions": "> clicks",
		},
		DataSources: "Wordstream Google Ads Benchmarks 2024 (adjusted), Cốc Cốc Digital Insights",
	},
	DomainSales: {
		Key:        DomainSales,
		Name:       "Sales / Kinh Doanh",
		ExpertRole: "VP of Sales (Strategic Sales Leadership)",
		Keywords: []string{"lead", "opportunity", "pipeline", "deal", "close", "quota", "rep",
			"territory", "forecast", "stage"},
		KeyKPIs: []string{"Win Rate (%)", "Total Pipeline Value", "Weighted Pipeline",
			"Average Deal Size", "Sales Cycle (days)", "Closed Won Revenue"},
		InsightsFocus: []string{"Pipeline health", "Sales productivity", "Win/loss analysis",
			"Territory performance"},
		Benchmarks: map[string]string{
			"win_rate":         "15-30%",
			"quota_attainment": "80%+",
			"sales_cycle":      "30-90 days (B2B SMB)",
		},
		DataSources: "Salesforce State of Sales (APAC), HubSpot Sales Benchmarks",
	},
	DomainFinance: {
		Key:        DomainFinance,
		Name:       "Finance / Tài Chính",
		ExpertRole: "Chief Financial Officer (CFO)",
		Keywords: []string{"revenue", "expense", "profit", "margin", "cost", "budget",
			"forecast", "cash", "invoice", "loi_nhuan", "chi_phi"},
		KeyKPIs: []string{"Net Profit Margin (%)", "Gross Margin (%)", "Operating Margin (%)",
			"Revenue Growth (%)", "Operating Cash Flow", "Free Cash Flow", "Current Ratio",
			"Quick Ratio", "Debt-to-Equity Ratio"},
		InsightsFocus: []string{"Profitability", "Cost control", "Cash management", "Financial health"},
		Benchmarks: map[string]string{
			"gross_margin":     "40%+ (SaaS)",
			"operating_margin": "20%+",
			"current_ratio":    "1.5-3.0 (healthy)",
		},
	},
	DomainManufacturing: {
		Key:        DomainManufacturing,
		Name:       "Manufacturing / Sản Xuất",
		ExpertRole: "Operations Manager (20+ years manufacturing experience, Six Sigma Black Belt)",
		Keywords: []string{"production", "machine", "units_produced", "good_units", "defective",
			"defect", "downtime", "oee", "yield", "shift", "production_line", "manufacturing",
			"theoretical_max", "actual_run", "available_hours", "scrap", "quality"},
		KeyKPIs: []string{"First Pass Yield (%)", "Defect Rate (%)", "Avg Production Output (units/shift)",
			"Cycle Time (min/unit)", "Machine Utilization (%)", "Total Downtime (hours)",
			"Avg Downtime (hours/shift)", "Cost per Unit (VND)", "OEE - Overall Equipment Effectiveness (%)"},
		InsightsFocus: []string{"OEE optimization", "Quality improvement", "Downtime reduction",
			"Defect root cause analysis", "Cost per unit reduction"},
		Benchmarks: map[string]string{
			"oee":                 "85% (world-class), 60% (average)",
			"first_pass_yield":    "95%+ (excellent)",
			"defect_rate":         "≤2% (world-class)",
			"machine_utilization": "90%+ (excellent)",
			"downtime":            "≤5% (target)",
		},
		ValidationRules: map[string]string{
			"oee":            "= availability × performance × quality",
			"units_produced": "= good_units + defective_units",
			"availability":   "= (available_hours - downtime_hours) / available_hours",
			"performance":    "= units_produced / theoretical_max_output",
			"quality":        "= good_units / units_produced",
		},
		DataSources: "Industry standard OEE calculations, Six Sigma methodology",
	},
	DomainOperations: {
		Key:        DomainOperations,
		Name:       "Operations / Vận Hành",
		ExpertRole: "Chief Operations Officer (COO)",
		Keywords: []string{"inventory", "stock", "fulfillment", "delivery", "warehouse",
			"logistics", "turnaround", "giao_hang", "ton_kho"},
		KeyKPIs: []string{"On-time Delivery (%)", "Order Accuracy (%)", "Avg Fulfillment Time",
			"Inventory Turnover"},
		InsightsFocus: []string{"Process efficiency", "Inventory optimization", "Delivery performance",
			"Cost reduction"},
		Benchmarks: map[string]string{
			"on_time_delivery": "95%+",
			"order_accuracy":   "99%+",
		},
	},
	DomainCustomerService: {
		Key:        DomainCustomerService,
		Name:       "Customer Service / Chăm Sóc Khách Hàng",
		ExpertRole: "Head of Customer Success",
		Keywords: []string{"ticket", "support", "response", "resolution", "satisfaction",
			"nps", "csat", "churn", "escalated", "sla"},
		KeyKPIs: []string{"Avg First Response Time (mins)", "Avg Resolution Time (hours)", "CSAT Score",
			"First Contact Resolution (%)", "SLA Met (%)", "Escalation Rate (%)", "Reopen Rate (%)",
			"Total Ticket Value (VND)"},
		InsightsFocus: []string{"Customer satisfaction", "Support efficiency", "Churn prevention",
			"Service quality"},
		Benchmarks: map[string]string{
			"csat":           "80%+ (4.0/5.0)",
			"first_response": "<60 mins",
			"sla_met":        "95%+",
		},
		DataSources: "Zendesk Customer Service Benchmark (APAC)",
	},
	DomainHR: {
		Key:        DomainHR,
		Name:       "HR / Nhân Sự",
		ExpertRole: "Chief Human Resources Officer (CHRO)",
		Keywords: []string{"employee", "hire", "attrition", "salary", "compensation", "payroll",
			"performance", "training", "recruitment", "job", "title", "position", "experience",
			"tenure", "age", "gender", "education", "department", "luong", "nhan_vien",
			"bang_luong", "phong_ban", "cham_cong"},
		KeyKPIs: []string{"Average Salary", "Median Salary", "Salary Range", "Headcount",
			"Attrition Rate (%)"},
		InsightsFocus: []string{"Talent retention", "Recruitment efficiency", "Employee engagement",
			"Compensation analysis"},
		Benchmarks: map[string]string{
			"attrition":    "<15% annually",
			"time_to_hire": "<30 days",
			"avg_salary":   "15-25M VND/month (Vietnam IT median)",
		},
		DataSources: "GSO Vietnam Wage Report 2024, VietnamWorks Employer Brand Research",
	},
	DomainGeneral: {
		Key:        DomainGeneral,
		Name:       "General Business Analytics",
		ExpertRole: "Senior Business Analyst",
		Keywords:   []string{},
		KeyKPIs:    []string{"Key Metrics (Auto-detected)", "Trends", "Comparisons", "Distributions"},
		InsightsFocus: []string{"Data patterns", "Trends", "Anomalies", "Relationships"},
		Benchmarks:    map[string]string{},
	},
}

// 领域键别名,兼容外部调用方的不同写法
var domainAliases = map[string]string{
	"ecommerce":        DomainEcommerce,
	"e-commerce":       DomainEcommerce,
	"customer service": DomainCustomerService,
	"customer_service": DomainCustomerService,
	"human resources":  DomainHR,
	"hr":               DomainHR,
}

// Profiles 获取全部领域档案注册表
// 返回的map为进程级只读数据,调用方不得修改
func Profiles() map[string]*DomainProfile {
	return domainProfiles
}

// GetProfile 获取指定领域的档案
func GetProfile(domain string) (*DomainProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(domain))
	if alias, exists := domainAliases[key]; exists {
		key = alias
	}
	profile, exists := domainProfiles[key]
	return profile, exists
}

// IsValidDomain 验证领域键是否有效
func IsValidDomain(domain string) bool {
	_, exists := GetProfile(domain)
	return exists
}

// AllDomainKeys 获取所有支持的领域键
func AllDomainKeys() []string {
	return []string{
		DomainHR,
		DomainMarketing,
		DomainEcommerce,
		DomainSales,
		DomainFinance,
		DomainManufacturing,
		DomainOperations,
		DomainCustomerService,
		DomainGeneral,
	}
}
