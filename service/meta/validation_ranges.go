/*
 * @module service/meta/validation_ranges
 * @description 越南市场数值合理范围表，为关键业务字段提供越南本地化的离群值提示
 * @architecture 常量层 - 元数据定义
 * @documentReference ai_docs/domain_profiles.md
 * @stateFlow 常量定义 -> 范围校验 -> 提示信息返回
 * @rules 范围校验只产生提示，不修改数据；引擎本身信任调用方传入的已清洗数据
 * @dependencies 无外部依赖
 * @refs api/controllers/meta_controller
 */

package meta

import (
	"fmt"
	"strings"
)

// ValueRange 单个字段的合理取值范围
type ValueRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Unit    string  `json:"unit"`
	Warning string  `json:"warning"`
}

// RangeCheck 范围校验结果
type RangeCheck struct {
	Valid           bool        `json:"valid"`
	Message         string      `json:"message"`
	SuggestedAction string      `json:"suggested_action,omitempty"`
	RangeInfo       *ValueRange `json:"range_info,omitempty"`
	Severity        string      `json:"severity"`
}

// 越南市场合理范围,按字段关键词索引,包含英文与越南语命名
var vietnamValidationRanges = map[string]ValueRange{
	// HR
	"salary": {Min: 5_000_000, Max: 200_000_000, Unit: "VND/month",
		Warning: "Salary outside typical Vietnam range (5M-200M VND/month)"},
	"luong": {Min: 5_000_000, Max: 200_000_000, Unit: "VND/month",
		Warning: "Lương nằm ngoài khoảng phổ biến (5-200 triệu VND/tháng)"},
	"age": {Min: 18, Max: 65, Unit: "years",
		Warning: "Age outside working population range (18-65 years)"},
	"tuoi": {Min: 18, Max: 65, Unit: "năm",
		Warning: "Tuổi nằm ngoài độ tuổi lao động (18-65 tuổi)"},
	"experience": {Min: 0, Max: 40, Unit: "years",
		Warning: "Experience years unrealistic (0-40 years expected)"},

	// E-commerce
	"order_value": {Min: 10_000, Max: 100_000_000, Unit: "VND",
		Warning: "Order value outside typical range (10K-100M VND)"},
	"gia_tri_don_hang": {Min: 10_000, Max: 100_000_000, Unit: "VND",
		Warning: "Giá trị đơn hàng nằm ngoài khoảng thông thường (10K-100M VND)"},
	"shipping_fee": {Min: 0, Max: 500_000, Unit: "VND",
		Warning: "Shipping fee unusually high (>500K VND)"},
	"phi_ship": {Min: 0, Max: 500_000, Unit: "VND",
		Warning: "Phí ship cao bất thường (>500K VND)"},
	"discount_percent": {Min: 0, Max: 100, Unit: "%",
		Warning: "Discount percentage invalid (must be 0-100%)"},
	"giam_gia": {Min: 0, Max: 100, Unit: "%",
		Warning: "Phần trăm giảm giá không hợp lệ (phải 0-100%)"},

	// Marketing
	"ctr": {Min: 0, Max: 100, Unit: "%",
		Warning: "CTR percentage invalid (must be 0-100%)"},
	"cpc": {Min: 1_000, Max: 100_000, Unit: "VND",
		Warning: "CPC outside Vietnam typical range (1K-100K VND)"},
	"conversion_rate": {Min: 0, Max: 100, Unit: "%",
		Warning: "Conversion rate invalid (must be 0-100%)"},
	"ty_le_chuyen_doi": {Min: 0, Max: 100, Unit: "%",
		Warning: "Tỷ lệ chuyển đổi không hợp lệ (phải 0-100%)"},

	// Finance
	"profit_margin": {Min: -100, Max: 100, Unit: "%",
		Warning: "Profit margin outside feasible range (-100% to 100%)"},
	"bien_loi_nhuan": {Min: -100, Max: 100, Unit: "%",
		Warning: "Biên lợi nhuận nằm ngoài khoảng khả thi (-100% đến 100%)"},
	"revenue_growth": {Min: -100, Max: 500, Unit: "%",
		Warning: "Revenue growth rate extreme (check for data entry error)"},
	"tang_truong_doanh_thu": {Min: -100, Max: 500, Unit: "%",
		Warning: "Tốc độ tăng trưởng doanh thu cực đoan (kiểm tra lỗi nhập liệu)"},
}

// ValidateVietnamRange 校验数值是否处于越南市场合理范围
// 未定义范围的字段一律视为有效
func ValidateVietnamRange(columnName string, value float64) *RangeCheck {
	colLower := strings.ToLower(columnName)

	for field, rangeDef := range vietnamValidationRanges {
		if !strings.Contains(colLower, field) {
			continue
		}
		r := rangeDef
		if value < r.Min {
			return &RangeCheck{
				Valid:           false,
				Message:         fmt.Sprintf("Value %.0f < minimum %.0f %s", value, r.Min, r.Unit),
				SuggestedAction: fmt.Sprintf("Remove row or verify data entry (minimum: %.0f)", r.Min),
				RangeInfo:       &r,
				Severity:        "high",
			}
		}
		if value > r.Max {
			return &RangeCheck{
				Valid:           false,
				Message:         fmt.Sprintf("Value %.0f > maximum %.0f %s", value, r.Max, r.Unit),
				SuggestedAction: fmt.Sprintf("Cap at %.0f or verify data entry", r.Max),
				RangeInfo:       &r,
				Severity:        "high",
			}
		}
		return &RangeCheck{
			Valid:     true,
			Message:   fmt.Sprintf("Within Vietnam realistic range (%.0f-%.0f %s)", r.Min, r.Max, r.Unit),
			RangeInfo: &r,
			Severity:  "none",
		}
	}

	return &RangeCheck{
		Valid:    true,
		Message:  "No Vietnam-specific validation range defined",
		Severity: "none",
	}
}
