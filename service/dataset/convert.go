/*
 * @module service/dataset/convert
 * @description 单元格类型转换，负责将异构单元格安全转换为数值、文本和日期
 * @architecture 工具函数模式 - 无状态转换
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow 无状态转换：输入 -> 转换逻辑 -> 输出
 * @rules 转换失败返回 ok=false 而非默认值；欧式小数逗号（"5,43"）需要归一化后再解析
 * @dependencies github.com/spf13/cast
 * @refs service/dataset/dataset.go
 */

package dataset

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// 日期解析候选格式,按出现频率排序
var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"Jan 2, 2006",
}

// ToFloat 将单元格转换为 float64
// 支持欧式小数逗号格式（"5,43" -> 5.43）,空值与不可解析值返回 ok=false
func ToFloat(value interface{}) (float64, bool) {
	if value == nil {
		return 0, false
	}

	if s, isString := value.(string); isString {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		// 欧式小数逗号:仅在出现单个逗号且无小数点时归一化
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// 千分位逗号直接剔除
			s = strings.ReplaceAll(s, ",", "")
		}
		value = s
	}

	v, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToString 将单元格转换为字符串
func ToString(value interface{}) string {
	if value == nil {
		return ""
	}
	return cast.ToString(value)
}

// ToTime 将单元格转换为日期
func ToTime(value interface{}) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}

	if t, isTime := value.(time.Time); isTime {
		return t, true
	}

	s := strings.TrimSpace(cast.ToString(value))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if t, err := cast.ToTimeE(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
