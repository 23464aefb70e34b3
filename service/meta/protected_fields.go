/*
 * @module service/meta/protected_fields
 * @description 受保护字段清单（禁止填补），清洗阶段查询此清单以避免对敏感业务字段做统计填补
 * @architecture 常量层 - 元数据定义
 * @documentReference ai_docs/domain_profiles.md
 * @stateFlow 常量定义 -> 匹配函数 -> 清洗阶段使用
 * @rules 财务、PII、业务主键类字段缺失时保持缺失并提示用户，错误填补会导致错误决策与合规风险
 * @dependencies 无外部依赖
 * @refs service/dataset
 */

package meta

import "strings"

// 禁止填补字段关键词集合,采用大小写不敏感的包含匹配,覆盖英文与越南语命名
var neverImputeFields = []string{
	// 财务字段
	"revenue", "sales", "income", "cost", "expense", "profit", "margin",
	"price", "amount", "payment", "fee", "charge", "budget", "spending",
	"deal_value", "deal_amount", "contract_value", "invoice_amount",
	"doanh_thu", "doanh_so", "chi_phi", "loi_nhuan", "gia", "tien", "thanh_toan",
	"gia_tri_hop_dong", "gia_tri_deal",

	// 营销/销售指标
	"roas", "roi", "conversion_rate", "cpa", "cpc", "cpm", "ctr",
	"conversions", "leads", "clicks", "impressions", "reach",
	"ty_le_chuyen_doi", "chi_phi_don_hang", "luot_chuyen_doi",

	// 电商运营指标
	"discount", "rating", "review", "delivery_time", "delivery_days",
	"shipping_fee", "order_status", "return_rate",
	"giam_gia", "danh_gia", "thoi_gian_giao", "trang_thai_don_hang",

	// 客服指标
	"resolution_time", "response_time", "satisfaction_score", "csat",
	"nps", "issue_category", "priority", "sla_breach",
	"resolved_date", "resolution_date", "closed_date", "completion_date",
	"thoi_gian_xu_ly", "muc_do_hai_long", "loai_van_de", "ngay_giai_quyet",

	// 元数据字段
	"channel", "source", "medium", "campaign", "platform",
	"competitors", "competitor_name", "competitive_advantage",
	"kenh", "nguon", "doi_thu_canh_tranh",

	// HR字段
	"salary", "wage", "compensation", "bonus", "commission", "payroll",
	"employee_id", "staff_id", "position", "title", "role", "job_title",
	"ho_ten", "ten", "name", "full_name",
	"luong", "thu_nhap", "tien_luong", "chuc_vu", "vi_tri",

	// 客户PII
	"email", "phone", "address", "ssn", "passport", "id_number", "cccd", "cmnd",
	"credit_card", "bank_account", "tax_id", "so_dien_thoai", "dia_chi",

	// 业务主键
	"order_id", "transaction_id", "invoice_id", "customer_id", "user_id",
	"deal_id", "ticket_id", "campaign_id", "lead_id",
	"ma_don_hang", "ma_khach_hang", "ma_giao_dich", "ma_hoa_don",
	"ma_deal", "ma_ticket", "ma_campaign",
}

// IsProtectedField 判断列名是否命中禁止填补清单
// 使用大小写不敏感的部分匹配以覆盖命名变体,例如 Monthly_Salary 命中 salary
func IsProtectedField(columnName string) bool {
	colLower := strings.ToLower(columnName)
	for _, field := range neverImputeFields {
		if strings.Contains(colLower, field) {
			return true
		}
	}
	return false
}

// ProtectedFields 获取禁止填补字段关键词清单
func ProtectedFields() []string {
	fields := make([]string, len(neverImputeFields))
	copy(fields, neverImputeFields)
	return fields
}
