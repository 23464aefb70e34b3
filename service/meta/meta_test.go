/*
 * @module service/meta/meta_test
 * @description 领域档案、受保护字段与越南范围校验的单元测试
 * @architecture 测试层
 * @documentReference ai_docs/domain_profiles.md
 * @stateFlow 查询元数据 -> 断言
 * @rules 覆盖领域别名解析、双语字段匹配与范围边界
 * @dependencies github.com/stretchr/testify
 * @refs service/meta
 */

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileAliases(t *testing.T) {
	cases := map[string]string{
		"e-commerce":       DomainEcommerce,
		"ecommerce":        DomainEcommerce,
		"E-Commerce":       DomainEcommerce,
		"customer service": DomainCustomerService,
		"customer_service": DomainCustomerService,
		"  HR  ":           DomainHR,
		"human resources":  DomainHR,
		"marketing":        DomainMarketing,
	}
	for input, want := range cases {
		profile, ok := GetProfile(input)
		require.True(t, ok, input)
		assert.Equal(t, want, profile.Key, input)
	}

	_, ok := GetProfile("astrology")
	assert.False(t, ok)
}

func TestAllDomainKeysHaveProfiles(t *testing.T) {
	keys := AllDomainKeys()
	assert.Len(t, keys, 9)
	for _, key := range keys {
		profile, ok := GetProfile(key)
		require.True(t, ok, key)
		assert.Equal(t, key, profile.Key)
		assert.NotEmpty(t, profile.Name, key)
		assert.NotEmpty(t, profile.ExpertRole, key)
	}
}

func TestNonGeneralProfilesCarryKeywords(t *testing.T) {
	for key, profile := range Profiles() {
		if key == DomainGeneral {
			continue
		}
		assert.NotEmpty(t, profile.Keywords, key)
		assert.NotEmpty(t, profile.KeyKPIs, key)
	}
}

func TestIsProtectedField(t *testing.T) {
	protected := []string{
		"Monthly_Salary",
		"doanh_thu_thang",
		"Customer_Email",
		"order_id",
		"tien_luong",
		"DEAL_VALUE",
		"so_dien_thoai",
	}
	for _, col := range protected {
		assert.True(t, IsProtectedField(col), col)
	}

	notProtected := []string{"region", "thang", "units_produced", "shift"}
	for _, col := range notProtected {
		assert.False(t, IsProtectedField(col), col)
	}
}

func TestValidateVietnamRange(t *testing.T) {
	// 范围内
	check := ValidateVietnamRange("monthly_salary", 28_000_000)
	assert.True(t, check.Valid)
	require.NotNil(t, check.RangeInfo)
	assert.Equal(t, "VND/month", check.RangeInfo.Unit)
	assert.Equal(t, "none", check.Severity)

	// 低于下限
	check = ValidateVietnamRange("monthly_salary", 1_000_000)
	assert.False(t, check.Valid)
	assert.Equal(t, "high", check.Severity)
	assert.NotEmpty(t, check.SuggestedAction)

	// 高于上限
	check = ValidateVietnamRange("discount_percent", 150)
	assert.False(t, check.Valid)

	// 未定义范围的字段视为有效
	check = ValidateVietnamRange("units_produced", 123456)
	assert.True(t, check.Valid)
	assert.Nil(t, check.RangeInfo)
}
