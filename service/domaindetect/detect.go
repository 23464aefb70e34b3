/*
 * @module service/domaindetect/detect
 * @description 业务域自动检测，根据数据集列名与用户描述的关键词匹配度选出最可能的业务域
 * @architecture 单层服务 - 关键词打分
 * @documentReference ai_docs/domain_profiles.md
 * @stateFlow 构建文本语料(列名+描述) -> 按域统计关键词命中率 -> 取最高分 -> 低于阈值回退general
 * @rules 最高分低于0.15时回退到general域,置信度固定0.5;并列最高分按域键字典序取第一个
 * @dependencies 无
 * @refs service/meta, service/kpi
 */

package domaindetect

import (
	"sort"
	"strings"

	"insight-service/service/dataset"
	"insight-service/service/meta"
	"insight-service/service/resolver"
)

// 低于此阈值的最高分视为无法判定业务域
const confidenceThreshold = 0.15

// general回退的固定置信度
const fallbackConfidence = 0.5

// Detection 域检测结果
type Detection struct {
	Domain     string             `json:"domain"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	Matched    []string           `json:"matched_keywords"`
}

// Detect 检测数据集所属业务域
// 语料由折叠后的列名与描述文本拼接而成,每个域的得分为命中关键词数占该域关键词总数的比例
func Detect(ds *dataset.Dataset, description string) *Detection {
	var parts []string
	if ds != nil {
		for _, col := range ds.Columns() {
			parts = append(parts, resolver.Fold(col))
		}
	}
	if description != "" {
		parts = append(parts, resolver.Fold(description))
	}
	corpus := " " + strings.Join(parts, " ") + " "

	scores := make(map[string]float64)
	matchedByDomain := make(map[string][]string)

	for _, profile := range meta.Profiles() {
		if profile.Key == meta.DomainGeneral || len(profile.Keywords) == 0 {
			continue
		}
		var hits []string
		for _, kw := range profile.Keywords {
			if strings.Contains(corpus, resolver.Fold(kw)) {
				hits = append(hits, kw)
			}
		}
		scores[profile.Key] = float64(len(hits)) / float64(len(profile.Keywords))
		matchedByDomain[profile.Key] = hits
	}

	best := meta.DomainGeneral
	bestScore := 0.0
	for _, key := range sortedKeys(scores) {
		if scores[key] > bestScore {
			best = key
			bestScore = scores[key]
		}
	}

	if bestScore < confidenceThreshold {
		return &Detection{
			Domain:     meta.DomainGeneral,
			Confidence: fallbackConfidence,
			Scores:     scores,
		}
	}

	confidence := bestScore
	if confidence > 1.0 {
		confidence = 1.0
	}
	return &Detection{
		Domain:     best,
		Confidence: confidence,
		Scores:     scores,
		Matched:    matchedByDomain[best],
	}
}

// 遍历map打分时固定顺序,保证并列时结果确定
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
