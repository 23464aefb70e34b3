/*
 * @module service/dataset/csv
 * @description CSV解码，将上传的CSV内容解析为内存数据集
 * @architecture 数据接入层 - 格式解析
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow CSV读取 -> 表头解析 -> 行数据填充 -> 数据集构造
 * @rules 首行为表头；行内字段数不足时视为格式错误直接返回
 * @dependencies encoding/csv
 * @refs api/controllers/analysis_controller
 */

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// FromCSV 从CSV内容构造数据集,首行作为表头
func FromCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头失败: %w", err)
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	var rows [][]interface{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取CSV数据行失败: %w", err)
		}
		row := make([]interface{}, len(record))
		for i, field := range record {
			row[i] = field
		}
		rows = append(rows, row)
	}

	return New(header, rows)
}
