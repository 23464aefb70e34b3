/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies gorm, sqlite, testify
 * @refs service/benchmark
 */

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建内存sqlite测试数据库,表结构由调用方迁移
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}
	return &TestDB{DB: db}
}

// CleanDB 清空基准表数据
func (tdb *TestDB) CleanDB() {
	tdb.DB.Exec("DELETE FROM benchmark_records")
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// BenchmarkCSVFixture 单个领域基准CSV夹具
type BenchmarkCSVFixture struct {
	FileName string
	Content  string
}

// WriteBenchmarkFixtures 将基准CSV夹具写入临时目录,返回目录路径
func WriteBenchmarkFixtures(t *testing.T, fixtures []BenchmarkCSVFixture) string {
	t.Helper()
	dir := t.TempDir()
	for _, fixture := range fixtures {
		path := filepath.Join(dir, fixture.FileName)
		require.NoError(t, os.WriteFile(path, []byte(fixture.Content), 0o644))
	}
	return dir
}

// DefaultHRBenchmarkCSV HR领域基准夹具,薪资单位VND/月
func DefaultHRBenchmarkCSV() BenchmarkCSVFixture {
	return BenchmarkCSVFixture{
		FileName: "hr_benchmarks.csv",
		Content: `role,city,experience_level,median_salary_vnd_monthly,percentile_25,percentile_75,source,source_url,notes
Software Engineer,Ho Chi Minh,Mid,28000000,20000000,38000000,VietnamWorks Salary Report 2024,https://www.vietnamworks.com,IT sector
Software Engineer,Ha Noi,Mid,26000000,19000000,35000000,VietnamWorks Salary Report 2024,https://www.vietnamworks.com,IT sector
Accountant,Ho Chi Minh,Mid,15000000,11000000,20000000,GSO Vietnam Wage Report 2024,https://www.gso.gov.vn,
Marketing Executive,Ho Chi Minh,Junior,12000000,9000000,16000000,VietnamWorks Salary Report 2024,https://www.vietnamworks.com,
`,
	}
}

// DefaultMarketingBenchmarkCSV Marketing领域基准夹具
func DefaultMarketingBenchmarkCSV() BenchmarkCSVFixture {
	return BenchmarkCSVFixture{
		FileName: "marketing_benchmarks.csv",
		Content: `metric_name,channel,industry,median_value,percentile_25,percentile_75,unit,source,source_url,notes
ROAS,Facebook Ads,E-commerce,4.0,2.5,6.5,ratio,Wordstream Google Ads Benchmarks 2024,https://www.wordstream.com,Adjusted for Vietnam
CTR,Google Ads,E-commerce,3.17,1.5,6.42,%,Wordstream Google Ads Benchmarks 2024,https://www.wordstream.com,Search average
CPA,Facebook Ads,E-commerce,150000,100000,200000,VND,Cốc Cốc Digital Insights 2024,https://coccoc.com,
`,
	}
}

// HTTPTestHelper HTTP测试辅助工具
type HTTPTestHelper struct{}

// NewHTTPTestHelper 创建HTTP测试辅助工具
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateJSONRequest 创建JSON请求
func (h *HTTPTestHelper) CreateJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var reqBody io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// AssertJSONResponse 断言JSON响应
func (h *HTTPTestHelper) AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedBody interface{}) {
	assert.Equal(t, expectedStatus, w.Code)

	if expectedBody != nil {
		var actualBody interface{}
		err := json.Unmarshal(w.Body.Bytes(), &actualBody)
		assert.NoError(t, err)

		expectedJSON, _ := json.Marshal(expectedBody)
		actualJSON, _ := json.Marshal(actualBody)

		assert.JSONEq(t, string(expectedJSON), string(actualJSON))
	}
}
