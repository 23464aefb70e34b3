/*
 * @module service/benchmark/sources
 * @description 基准数据来源注册表：越南市场各数据源的名称、链接与可信度分级
 * @architecture 常量层 - 元数据定义
 * @documentReference ai_docs/benchmark.md
 * @stateFlow 进程启动时定义 -> 只读查询
 * @rules 可信度1为官方统计,2为行业报告,3为厂商调研;引用文案优先取注册表内的标准名称
 * @dependencies 无
 * @refs service/benchmark/store, api/controllers
 */

package benchmark

import "strings"

// SourceInfo 单个基准数据来源的元信息
type SourceInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	NameVi      string `json:"name_vi"`
	URL         string `json:"url"`
	Credibility int    `json:"credibility"`
	Notes       string `json:"notes,omitempty"`
}

// 来源注册表,按可信度分层
var sourceRegistry = []SourceInfo{
	{
		Key:         "gso",
		Name:        "GSO Vietnam Wage Report 2024",
		NameVi:      "Tổng cục Thống kê Việt Nam",
		URL:         "https://www.gso.gov.vn",
		Credibility: 1,
		Notes:       "Official national statistics office",
	},
	{
		Key:         "vietnamworks",
		Name:        "VietnamWorks Salary Report 2024",
		NameVi:      "Báo cáo lương VietnamWorks",
		URL:         "https://www.vietnamworks.com",
		Credibility: 2,
	},
	{
		Key:         "iprice",
		Name:        "iPrice Vietnam E-commerce Report 2024",
		NameVi:      "Báo cáo TMĐT iPrice Việt Nam",
		URL:         "https://iprice.vn",
		Credibility: 2,
	},
	{
		Key:         "shopee",
		Name:        "Shopee Seller Statistics SEA 2024",
		NameVi:      "Thống kê người bán Shopee",
		URL:         "https://shopee.vn",
		Credibility: 3,
	},
	{
		Key:         "wordstream",
		Name:        "Wordstream Google Ads Benchmarks 2024",
		NameVi:      "Chuẩn quảng cáo Wordstream (điều chỉnh cho Việt Nam)",
		URL:         "https://www.wordstream.com",
		Credibility: 3,
		Notes:       "Adjusted for Vietnam market",
	},
	{
		Key:         "coccoc",
		Name:        "Cốc Cốc Digital Insights 2024",
		NameVi:      "Cốc Cốc Digital Insights",
		URL:         "https://coccoc.com",
		Credibility: 2,
	},
	{
		Key:         "salesforce",
		Name:        "Salesforce State of Sales (APAC)",
		NameVi:      "Salesforce State of Sales khu vực APAC",
		URL:         "https://www.salesforce.com",
		Credibility: 3,
	},
	{
		Key:         "zendesk",
		Name:        "Zendesk Customer Service Benchmark (APAC)",
		NameVi:      "Chuẩn CSKH Zendesk khu vực APAC",
		URL:         "https://www.zendesk.com",
		Credibility: 3,
	},
}

// Sources 获取全部来源注册表
func Sources() []SourceInfo {
	return sourceRegistry
}

// LookupSource 按名称模糊查找来源,供引用文案标准化
func LookupSource(name string) (*SourceInfo, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, false
	}
	for i := range sourceRegistry {
		s := &sourceRegistry[i]
		if s.Key == needle ||
			strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(needle, s.Key) {
			return s, true
		}
	}
	return nil, false
}
