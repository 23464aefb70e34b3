package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "luong_thang", Fold("Lương Tháng"))
	assert.Equal(t, "doanh_thu", Fold("Doanh Thu"))
	assert.Equal(t, "don_hang", Fold("Đơn Hàng"))
	assert.Equal(t, "revenue", Fold("  Revenue "))
}

func TestResolveDirectSubstring(t *testing.T) {
	r := NewKeywordResolver()
	columns := []string{"order_id", "total_revenue_vnd", "customer_name"}

	col, ok := r.Resolve("revenue", columns)
	assert.True(t, ok)
	assert.Equal(t, "total_revenue_vnd", col)
}

func TestResolveSynonym(t *testing.T) {
	r := NewKeywordResolver()

	col, ok := r.Resolve("revenue", []string{"id", "monthly_sales", "region"})
	assert.True(t, ok)
	assert.Equal(t, "monthly_sales", col)

	col, ok = r.Resolve("salary", []string{"ma_nv", "luong_thang"})
	assert.True(t, ok)
	assert.Equal(t, "luong_thang", col)
}

func TestResolveVietnameseDiacritics(t *testing.T) {
	r := NewKeywordResolver()

	col, ok := r.Resolve("revenue", []string{"Ngày", "Doanh Thu", "Khu Vực"})
	assert.True(t, ok)
	assert.Equal(t, "Doanh Thu", col)

	col, ok = r.Resolve("spend", []string{"Chiến Dịch", "Chi Phí Quảng Cáo"})
	assert.True(t, ok)
	assert.Equal(t, "Chi Phí Quảng Cáo", col)
}

func TestResolveFirstMatchWins(t *testing.T) {
	r := NewKeywordResolver()
	columns := []string{"revenue_q1", "revenue_q2", "total_revenue"}

	col, ok := r.Resolve("revenue", columns)
	assert.True(t, ok)
	assert.Equal(t, "revenue_q1", col)
}

func TestResolveNoMatch(t *testing.T) {
	r := NewKeywordResolver()

	col, ok := r.Resolve("revenue", []string{"id", "name", "address"})
	assert.False(t, ok)
	assert.Empty(t, col)

	_, ok = r.Resolve("", []string{"revenue"})
	assert.False(t, ok)
}

func TestResolveAll(t *testing.T) {
	r := NewKeywordResolver()
	columns := []string{"doanh_thu", "chi_phi", "nhan_vien"}

	result := r.ResolveAll([]string{"revenue", "spend", "inventory"}, columns)
	assert.Equal(t, "doanh_thu", result["revenue"])
	assert.Equal(t, "chi_phi", result["spend"])
	_, present := result["inventory"]
	assert.False(t, present)
}
