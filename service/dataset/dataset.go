/*
 * @module service/dataset/dataset
 * @description 内存数据集模型，提供按列名的有序索引、数值/文本/日期列提取和聚合辅助函数
 * @architecture 数据模型层 - 只读表格结构
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow 构造 -> 只读访问 -> 随请求结束丢弃
 * @rules 数据集构造后不可变，KPI计算只读消费；聚合一律跳过无法解析的单元格而非填零
 * @dependencies github.com/spf13/cast
 * @refs service/kpi, service/dimension
 */

package dataset

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Dataset 行列结构的内存数据集
// 列保持调用方给定的原始顺序与原始大小写,这是列解析稳定平局规则的前提
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]interface{}
}

// New 创建数据集
// 所有行的列数必须与表头一致
func New(columns []string, rows [][]interface{}) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("数据集表头为空")
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, exists := index[col]; exists {
			return nil, fmt.Errorf("数据集存在重复列名: %s", col)
		}
		index[col] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("第 %d 行列数 %d 与表头列数 %d 不一致", i, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Dataset{columns: cols, index: index, rows: rows}, nil
}

// Columns 获取原始顺序的列名
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// RowCount 获取行数
func (d *Dataset) RowCount() int {
	return len(d.rows)
}

// HasColumn 判断列是否存在（精确匹配原始列名）
func (d *Dataset) HasColumn(name string) bool {
	_, exists := d.index[name]
	return exists
}

// Values 获取原始单元格序列
func (d *Dataset) Values(name string) ([]interface{}, bool) {
	idx, exists := d.index[name]
	if !exists {
		return nil, false
	}
	values := make([]interface{}, len(d.rows))
	for i, row := range d.rows {
		values[i] = row[idx]
	}
	return values, true
}

// Numbers 获取数值列,无法解析的单元格以 NaN 占位
func (d *Dataset) Numbers(name string) ([]float64, bool) {
	idx, exists := d.index[name]
	if !exists {
		return nil, false
	}
	values := make([]float64, len(d.rows))
	for i, row := range d.rows {
		if v, ok := ToFloat(row[idx]); ok {
			values[i] = v
		} else {
			values[i] = math.NaN()
		}
	}
	return values, true
}

// Strings 获取文本列
func (d *Dataset) Strings(name string) ([]string, bool) {
	idx, exists := d.index[name]
	if !exists {
		return nil, false
	}
	values := make([]string, len(d.rows))
	for i, row := range d.rows {
		values[i] = ToString(row[idx])
	}
	return values, true
}

// Times 获取日期列,第二个返回值标记每行是否解析成功
func (d *Dataset) Times(name string) ([]time.Time, []bool, bool) {
	idx, exists := d.index[name]
	if !exists {
		return nil, nil, false
	}
	values := make([]time.Time, len(d.rows))
	parsed := make([]bool, len(d.rows))
	for i, row := range d.rows {
		if t, ok := ToTime(row[idx]); ok {
			values[i] = t
			parsed[i] = true
		}
	}
	return values, parsed, true
}

// DropColumn 返回移除指定列后的新数据集,原数据集保持不变
func (d *Dataset) DropColumn(name string) (*Dataset, error) {
	idx, exists := d.index[name]
	if !exists {
		return nil, fmt.Errorf("数据集不存在列: %s", name)
	}

	columns := make([]string, 0, len(d.columns)-1)
	columns = append(columns, d.columns[:idx]...)
	columns = append(columns, d.columns[idx+1:]...)

	rows := make([][]interface{}, len(d.rows))
	for i, row := range d.rows {
		newRow := make([]interface{}, 0, len(row)-1)
		newRow = append(newRow, row[:idx]...)
		newRow = append(newRow, row[idx+1:]...)
		rows[i] = newRow
	}

	return New(columns, rows)
}

// Sum 聚合辅助函数,跳过 NaN,返回有效值之和与有效值个数
func Sum(values []float64) (float64, int) {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	return sum, n
}

// Mean 聚合辅助函数,跳过 NaN,无有效值时第二个返回值为 0
func Mean(values []float64) (float64, int) {
	sum, n := Sum(values)
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// Median 聚合辅助函数,跳过 NaN,偶数个取中间两数均值
func Median(values []float64) (float64, int) {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		return 0, 0
	}
	sort.Float64s(valid)
	mid := len(valid) / 2
	if len(valid)%2 == 0 {
		return (valid[mid-1] + valid[mid]) / 2, len(valid)
	}
	return valid[mid], len(valid)
}
