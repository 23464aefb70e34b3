/*
 * @module service/benchmark/store
 * @description 基准数据仓库：将各领域CSV参考表装载进benchmark_records表,提供过滤查询与比较
 * @architecture 存储层 - gorm持久化,列名嗅探式CSV装载
 * @documentReference ai_docs/benchmark.md
 * @stateFlow 按域装载(幂等,成功后缓存) -> 过滤查询 -> 记录级比较;定时任务触发整表重载
 * @rules 单个域装载失败不影响其他域;文本过滤用LIKE子串匹配,sales_type与experience_level精确匹配;未知过滤键静默忽略
 * @dependencies gorm.io/gorm
 * @refs service/init.go, api/controllers
 */

package benchmark

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gorm.io/gorm"

	"insight-service/service/dataset"
	"insight-service/service/meta"
	"insight-service/service/metrics"
)

// Record 一条基准参考记录,装载后只读,仅整表重载时变更
type Record struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	Domain          string  `gorm:"size:32;index:idx_benchmark_domain" json:"domain"`
	MetricName      string  `gorm:"size:128;index:idx_benchmark_metric" json:"metric_name,omitempty"`
	Role            string  `gorm:"size:128" json:"role,omitempty"`
	City            string  `gorm:"size:64" json:"city,omitempty"`
	ExperienceLevel string  `gorm:"size:64" json:"experience_level,omitempty"`
	Channel         string  `gorm:"size:64" json:"channel,omitempty"`
	Industry        string  `gorm:"size:64" json:"industry,omitempty"`
	Category        string  `gorm:"size:64" json:"category,omitempty"`
	Platform        string  `gorm:"size:64" json:"platform,omitempty"`
	SalesType       string  `gorm:"size:64" json:"sales_type,omitempty"`
	Median          float64 `json:"median"`
	Percentile25    float64 `json:"percentile_25,omitempty"`
	Percentile75    float64 `json:"percentile_75,omitempty"`
	Unit            string  `gorm:"size:32" json:"unit,omitempty"`
	SourceName      string  `gorm:"size:128" json:"source_name,omitempty"`
	SourceURL       string  `gorm:"size:256" json:"source_url,omitempty"`
	Notes           string  `gorm:"size:512" json:"notes,omitempty"`
}

// TableName 指定表名
func (Record) TableName() string {
	return "benchmark_records"
}

// Store 基准数据仓库
type Store struct {
	db      *gorm.DB
	dataDir string

	mu      sync.Mutex
	loaded  map[string]bool
	loadErr map[string]error
}

// NewStore 创建基准仓库并迁移表结构
func NewStore(db *gorm.DB, dataDir string) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("迁移benchmark_records表失败: %w", err)
	}
	return &Store{
		db:      db,
		dataDir: dataDir,
		loaded:  make(map[string]bool),
		loadErr: make(map[string]error),
	}, nil
}

// Load 装载单个域的基准CSV,成功后缓存,重复调用幂等
// 失败只记录在该域的状态里,不影响其他域
func (s *Store) Load(domain string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(domain)
}

func (s *Store) loadLocked(domain string) error {
	if s.loaded[domain] {
		return nil
	}

	records, err := s.parseFile(domain)
	if err != nil {
		s.loadErr[domain] = err
		slog.Warn("基准数据装载失败", "domain", domain, "error", err)
		return err
	}

	// 删旧插新放在同一事务里,并发查询不会看到半替换的域
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("domain = ?", domain).Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			return tx.Create(&records).Error
		}
		return nil
	}); err != nil {
		s.loadErr[domain] = err
		return fmt.Errorf("写入基准记录失败: %w", err)
	}

	s.loaded[domain] = true
	s.loadErr[domain] = nil
	slog.Info("基准数据装载完成", "domain", domain, "records", len(records))
	return nil
}

// LoadAll 装载全部领域,返回每个域的装载结果
func (s *Store) LoadAll() map[string]error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := make(map[string]error)
	for _, domain := range meta.AllDomainKeys() {
		if domain == meta.DomainGeneral {
			continue
		}
		status[domain] = s.loadLocked(domain)
	}
	return status
}

// Reload 整表重载:重置装载状态后逐域删旧插新,全程持锁
// 重载期间的Query在Load上排队,不会看到已装载域的空表
// 单个域失败不影响其他域,整体记为部分成功
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = make(map[string]bool)
	s.loadErr = make(map[string]error)

	result := "success"
	for _, domain := range meta.AllDomainKeys() {
		if domain == meta.DomainGeneral {
			continue
		}
		if err := s.loadLocked(domain); err != nil {
			result = "partial"
		}
	}
	metrics.BenchmarkReloadTotal.WithLabelValues(result).Inc()
	return nil
}

// Status 每个域的装载状态描述
func (s *Store) Status() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := make(map[string]string)
	for _, domain := range meta.AllDomainKeys() {
		if domain == meta.DomainGeneral {
			continue
		}
		switch {
		case s.loaded[domain]:
			status[domain] = "loaded"
		case s.loadErr[domain] != nil:
			status[domain] = s.loadErr[domain].Error()
		default:
			status[domain] = "not_loaded"
		}
	}
	return status
}

// Query 按域与可选过滤条件查询基准记录
// role/city/channel等文本键做不区分大小写的子串匹配,sales_type与experience_level精确匹配
// 空结果是正常结果,未知过滤键静默忽略
func (s *Store) Query(domain string, filters map[string]string) ([]Record, error) {
	if err := s.Load(domain); err != nil {
		metrics.BenchmarkQueryTotal.WithLabelValues(domain, "load_error").Inc()
		return nil, err
	}

	tx := s.db.Where("domain = ?", domain)
	for key, value := range filters {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "sales_type":
			tx = tx.Where("LOWER(sales_type) = ?", value)
		case "experience_level", "experience":
			tx = tx.Where("LOWER(experience_level) = ?", value)
		case "metric", "metric_name", "kpi":
			tx = tx.Where("LOWER(metric_name) LIKE ?", "%"+value+"%")
		case "role", "position":
			tx = tx.Where("LOWER(role) LIKE ?", "%"+value+"%")
		case "city", "location":
			tx = tx.Where("LOWER(city) LIKE ?", "%"+value+"%")
		case "channel":
			tx = tx.Where("LOWER(channel) LIKE ?", "%"+value+"%")
		case "industry":
			tx = tx.Where("LOWER(industry) LIKE ?", "%"+value+"%")
		case "category":
			tx = tx.Where("LOWER(category) LIKE ?", "%"+value+"%")
		case "platform":
			tx = tx.Where("LOWER(platform) LIKE ?", "%"+value+"%")
		}
	}

	var records []Record
	if err := tx.Order("id").Find(&records).Error; err != nil {
		metrics.BenchmarkQueryTotal.WithLabelValues(domain, "error").Inc()
		return nil, fmt.Errorf("查询基准记录失败: %w", err)
	}

	outcome := "hit"
	if len(records) == 0 {
		outcome = "miss"
	}
	metrics.BenchmarkQueryTotal.WithLabelValues(domain, outcome).Inc()
	return records, nil
}

// Compare 查询匹配的基准记录并与用户值比较
// 无匹配记录时返回(nil, nil):基准缺席是正常的部分结果而非错误
func (s *Store) Compare(domain, metric string, value float64, filters map[string]string) (*ComparisonResult, error) {
	merged := make(map[string]string, len(filters)+1)
	for k, v := range filters {
		merged[k] = v
	}
	if metric != "" {
		merged["metric_name"] = metric
	}

	records, err := s.Query(domain, merged)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return CompareRecord(value, &records[0]), nil
}

// parseFile 解析单个域的基准CSV,按列名嗅探映射到Record字段
func (s *Store) parseFile(domain string) ([]Record, error) {
	path := filepath.Join(s.dataDir, benchmarkFileName(domain))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开基准文件失败: %w", err)
	}
	defer f.Close()

	ds, err := dataset.FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("解析基准文件失败: %w", err)
	}

	records := make([]Record, ds.RowCount())
	for i := range records {
		records[i].Domain = domain
	}

	for _, col := range ds.Columns() {
		assign := fieldAssigner(col)
		if assign == nil {
			continue
		}
		cells, _ := ds.Values(col)
		for i, cell := range cells {
			assign(&records[i], cell)
		}
	}
	return records, nil
}

// benchmarkFileName 域键折叠分隔符后拼文件名
// e-commerce与customer_service分别对应ecommerce/customerservice前缀
func benchmarkFileName(domain string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(domain) + "_benchmarks.csv"
}

// fieldAssigner 按折叠后的列名选择Record字段的写入器,无法识别的列忽略
func fieldAssigner(column string) func(*Record, interface{}) {
	name := strings.ToLower(strings.TrimSpace(column))
	asFloat := func(set func(*Record, float64)) func(*Record, interface{}) {
		return func(r *Record, cell interface{}) {
			if v, ok := dataset.ToFloat(cell); ok {
				set(r, v)
			}
		}
	}
	asString := func(set func(*Record, string)) func(*Record, interface{}) {
		return func(r *Record, cell interface{}) {
			set(r, strings.TrimSpace(dataset.ToString(cell)))
		}
	}

	switch {
	case strings.Contains(name, "percentile_25"), strings.Contains(name, "p25"), strings.HasSuffix(name, "_25"):
		return asFloat(func(r *Record, v float64) { r.Percentile25 = v })
	case strings.Contains(name, "percentile_75"), strings.Contains(name, "p75"), strings.HasSuffix(name, "_75"):
		return asFloat(func(r *Record, v float64) { r.Percentile75 = v })
	case strings.Contains(name, "median"):
		return asFloat(func(r *Record, v float64) { r.Median = v })
	case strings.Contains(name, "url"):
		return asString(func(r *Record, v string) { r.SourceURL = v })
	case strings.Contains(name, "source"):
		return asString(func(r *Record, v string) { r.SourceName = v })
	case strings.Contains(name, "note"):
		return asString(func(r *Record, v string) { r.Notes = v })
	case strings.Contains(name, "metric"), strings.Contains(name, "kpi"):
		return asString(func(r *Record, v string) { r.MetricName = v })
	case strings.Contains(name, "role"), strings.Contains(name, "position"), strings.Contains(name, "job"):
		return asString(func(r *Record, v string) { r.Role = v })
	case strings.Contains(name, "city"), strings.Contains(name, "location"):
		return asString(func(r *Record, v string) { r.City = v })
	case strings.Contains(name, "experience"), strings.Contains(name, "level"):
		return asString(func(r *Record, v string) { r.ExperienceLevel = v })
	case strings.Contains(name, "channel"):
		return asString(func(r *Record, v string) { r.Channel = v })
	case strings.Contains(name, "industry"):
		return asString(func(r *Record, v string) { r.Industry = v })
	case strings.Contains(name, "category"):
		return asString(func(r *Record, v string) { r.Category = v })
	case strings.Contains(name, "platform"):
		return asString(func(r *Record, v string) { r.Platform = v })
	case strings.Contains(name, "sales_type"), name == "type":
		return asString(func(r *Record, v string) { r.SalesType = v })
	case strings.Contains(name, "unit"):
		return asString(func(r *Record, v string) { r.Unit = v })
	}
	return nil
}
