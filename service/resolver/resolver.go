/*
 * @module service/resolver/resolver
 * @description 列解析器，将抽象业务概念（如 revenue、salary）映射到数据集中最匹配的实际列名
 * @architecture 策略模式 - 接口抽象匹配策略
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow 概念归一化 -> 按原始列顺序遍历 -> 包含/同义词匹配 -> 首个命中即返回
 * @rules 多列命中时取原始列顺序中的第一个，保持确定性；零命中返回 ok=false 属正常结果而非错误
 * @dependencies golang.org/x/text
 * @refs service/kpi
 */

package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ColumnResolver 列解析策略接口
// 匹配策略可替换（子串匹配、同义词表、未来的打分匹配）而不影响KPI引擎
type ColumnResolver interface {
	Resolve(concept string, columns []string) (string, bool)
}

// KeywordResolver 基于子串与同义词表的默认解析器
// 同义词表覆盖英文同义词与越南语命名（含去声调形式）
type KeywordResolver struct {
	synonyms map[string][]string
}

// 默认同义词表,键为概念名,值为可替代的列名关键词
var defaultSynonyms = map[string][]string{
	"revenue":            {"sales", "doanh_thu", "doanh_so", "turnover"},
	"spend":              {"cost", "chi_phi", "ad_spend", "budget_used"},
	"salary":             {"luong", "wage", "compensation", "thu_nhap", "income"},
	"conversions":        {"luot_chuyen_doi", "purchases", "orders_completed"},
	"deal_value":         {"amount", "deal_amount", "contract_value", "gia_tri_deal"},
	"stage":              {"status", "giai_doan", "trang_thai"},
	"satisfaction_score": {"csat", "hai_long", "muc_do_hai_long"},
	"sessions":           {"visits", "luot_truy_cap"},
	"transactions":       {"orders", "don_hang", "purchases"},
	"channel":            {"kenh", "source", "medium"},
	"campaign":           {"chien_dich", "campaign_name"},
	"downtime_hours":     {"downtime", "thoi_gian_dung_may"},
	"employee":           {"nhan_vien", "staff"},
	"inventory":          {"stock", "ton_kho"},
	"probability":        {"prob", "close_probability", "xac_suat"},
	"created_date":       {"create_date", "open_date", "ngay_tao"},
	"close_date":         {"closed_date", "ngay_dong"},
	"clicks":             {"luot_click", "link_clicks"},
	"impressions":        {"luot_hien_thi"},
	"add_to_cart":        {"them_vao_gio", "cart_additions"},
	"checkout":           {"thanh_toan"},
	"returning":          {"repeat_customer", "khach_quay_lai"},
	"bounce":             {"ty_le_thoat"},
	"mobile":             {"di_dong"},
	"net_income":         {"net_profit", "loi_nhuan_rong"},
	"gross_profit":       {"loi_nhuan_gop"},
	"operating_income":   {"operating_profit", "ebit"},
	"operating_cash_flow": {"ocf"},
	"free_cash_flow":      {"fcf"},
	"total_debt":          {"tong_no"},
	"equity":              {"von_chu_so_huu", "shareholder"},
	"units_produced":      {"san_luong", "output_units"},
	"good_units":          {"san_pham_dat"},
	"defective_units":     {"defect_count", "defects", "san_pham_loi"},
	"available_hours":     {"gio_kha_dung"},
	"theoretical_max":     {"max_output", "cong_suat_toi_da"},
	"actual_run":          {"run_time", "gio_chay_may"},
	"production_cost":     {"total_cost", "chi_phi_san_xuat"},
	"first_response":      {"response_time", "thoi_gian_phan_hoi"},
	"resolution_time":     {"thoi_gian_xu_ly"},
	"reopened":            {"reopen", "mo_lai"},
	"escalated":           {"escalation", "chuyen_cap"},
	"ticket_value":        {"gia_tri_ticket"},
	"on_time":             {"delivered_on_time", "dung_hen"},
	"accurate":            {"accuracy"},
	"fulfillment_time":    {"thoi_gian_giao"},
	"cogs":                {"cost_of_goods", "gia_von"},
	"attrition":           {"left_company", "nghi_viec", "employment_status", "churned"},
}

// NewKeywordResolver 创建默认列解析器
func NewKeywordResolver() *KeywordResolver {
	return &KeywordResolver{synonyms: defaultSynonyms}
}

// NewKeywordResolverWithSynonyms 使用自定义同义词表创建解析器,供测试注入
func NewKeywordResolverWithSynonyms(synonyms map[string][]string) *KeywordResolver {
	return &KeywordResolver{synonyms: synonyms}
}

// Resolve 将概念解析为实际列名
// 匹配规则:概念子串出现在折叠后的列名中,或列名包含概念的任一同义词
// 多列命中时返回原始顺序中的第一个,这一平局规则是对外兼容契约的一部分
func (r *KeywordResolver) Resolve(concept string, columns []string) (string, bool) {
	conceptFold := Fold(concept)
	if conceptFold == "" {
		return "", false
	}

	keywords := []string{conceptFold}
	for _, syn := range r.synonyms[strings.ToLower(strings.TrimSpace(concept))] {
		keywords = append(keywords, Fold(syn))
	}

	for _, col := range columns {
		colFold := Fold(col)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(colFold, kw) {
				return col, true
			}
		}
	}
	return "", false
}

// ResolveAll 批量解析概念,未命中的概念不出现在结果中
func (r *KeywordResolver) ResolveAll(concepts []string, columns []string) map[string]string {
	result := make(map[string]string, len(concepts))
	for _, concept := range concepts {
		if col, ok := r.Resolve(concept, columns); ok {
			result[concept] = col
		}
	}
	return result
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold 归一化列名:小写、去越南语声调、空格转下划线
// 越南语đ/Đ不属于组合声调字符,需要单独替换
func Fold(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.ReplaceAll(stripped, "đ", "d")
	stripped = strings.ReplaceAll(stripped, "Đ", "D")
	stripped = strings.ToLower(strings.TrimSpace(stripped))
	stripped = strings.ReplaceAll(stripped, " ", "_")
	return stripped
}
