/*
 * @module service/dataset/dataset_test
 * @description 数据集模型与单元格转换的单元测试
 * @architecture 测试层
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow 构造数据集 -> 访问/聚合 -> 断言
 * @rules 覆盖欧式小数逗号、NaN跳过聚合与列删除的不可变性
 * @dependencies github.com/stretchr/testify
 * @refs service/dataset
 */

package dataset

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadShapes(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	_, err = New([]string{"a", "a"}, nil)
	assert.Error(t, err)

	_, err = New([]string{"a", "b"}, [][]interface{}{{1}})
	assert.Error(t, err)
}

func TestColumnsPreserveOrderAndCase(t *testing.T) {
	ds, err := New([]string{"Doanh Thu", "chi_phi", "Kênh"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Doanh Thu", "chi_phi", "Kênh"}, ds.Columns())
	assert.True(t, ds.HasColumn("Doanh Thu"))
	assert.False(t, ds.HasColumn("doanh thu"))
}

func TestNumbersMarksUnparseableAsNaN(t *testing.T) {
	ds, err := New([]string{"v"}, [][]interface{}{
		{"100"}, {"abc"}, {nil}, {"5,43"}, {42},
	})
	require.NoError(t, err)

	nums, ok := ds.Numbers("v")
	require.True(t, ok)
	require.Len(t, nums, 5)
	assert.Equal(t, 100.0, nums[0])
	assert.True(t, math.IsNaN(nums[1]))
	assert.True(t, math.IsNaN(nums[2]))
	assert.InDelta(t, 5.43, nums[3], 1e-9)
	assert.Equal(t, 42.0, nums[4])
}

func TestToFloatCommaHandling(t *testing.T) {
	// 欧式小数逗号
	v, ok := ToFloat("5,43")
	require.True(t, ok)
	assert.InDelta(t, 5.43, v, 1e-9)

	// 千分位逗号
	v, ok = ToFloat("1,234,567.89")
	require.True(t, ok)
	assert.InDelta(t, 1234567.89, v, 1e-6)

	_, ok = ToFloat("   ")
	assert.False(t, ok)

	_, ok = ToFloat("n/a")
	assert.False(t, ok)
}

func TestToTimeLayouts(t *testing.T) {
	for _, s := range []string{"2024-03-15", "2024/03/15", "15/03/2024", "2024-03-15 10:30:00"} {
		tm, ok := ToTime(s)
		require.True(t, ok, s)
		assert.Equal(t, 2024, tm.Year(), s)
		assert.Equal(t, time.March, tm.Month(), s)
	}

	_, ok := ToTime("không rõ")
	assert.False(t, ok)
	_, ok = ToTime(nil)
	assert.False(t, ok)
}

func TestAggregatesSkipNaN(t *testing.T) {
	values := []float64{10, math.NaN(), 30, math.Inf(1), 20}

	sum, n := Sum(values)
	assert.Equal(t, 60.0, sum)
	assert.Equal(t, 3, n)

	mean, n := Mean(values)
	assert.Equal(t, 20.0, mean)
	assert.Equal(t, 3, n)

	median, n := Median(values)
	assert.Equal(t, 20.0, median)
	assert.Equal(t, 3, n)
}

func TestMedianEvenCount(t *testing.T) {
	median, n := Median([]float64{40, 10, 30, 20})
	assert.Equal(t, 25.0, median)
	assert.Equal(t, 4, n)

	_, n = Median([]float64{math.NaN()})
	assert.Equal(t, 0, n)
}

func TestDropColumnImmutable(t *testing.T) {
	ds, err := New([]string{"a", "b", "c"}, [][]interface{}{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	dropped, err := ds.DropColumn("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, dropped.Columns())
	assert.Equal(t, []string{"a", "b", "c"}, ds.Columns())

	vals, ok := dropped.Values("c")
	require.True(t, ok)
	assert.Equal(t, []interface{}{3, 6}, vals)

	_, err = ds.DropColumn("missing")
	assert.Error(t, err)
}

func TestFromCSV(t *testing.T) {
	csvData := "ten, doanh_thu ,chi_phi\nFacebook,10000,5000\nGoogle,20000,8000\n"
	ds, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, []string{"ten", "doanh_thu", "chi_phi"}, ds.Columns())
	assert.Equal(t, 2, ds.RowCount())

	nums, ok := ds.Numbers("doanh_thu")
	require.True(t, ok)
	assert.Equal(t, []float64{10000, 20000}, nums)
}

func TestFromCSVRejectsRaggedRows(t *testing.T) {
	_, err := FromCSV(strings.NewReader("a,b\n1\n"))
	assert.Error(t, err)
}
