/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、基准数据装载与定时重载等初始化工作
 * @architecture 分层架构 - 服务层
 * @documentReference ai_docs/backend_requirements.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 确保所有依赖服务正常启动后才提供API服务;单个域的基准装载失败不阻断启动
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres, gorm.io/driver/sqlite, github.com/robfig/cron/v3
 * @refs service/benchmark, service/kpi
 */

package service

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"insight-service/service/benchmark"
	"insight-service/service/dimension"
	"insight-service/service/kpi"
	"insight-service/service/resolver"
)

var (
	DB                    *gorm.DB
	GlobalResolver        *resolver.KeywordResolver
	GlobalKPIEngine       *kpi.Engine
	GlobalBenchmarkStore  *benchmark.Store
	GlobalDimensionEngine *dimension.Analyzer

	reloadCron *cron.Cron
)

func init() {
	initDatabase()
	initServices()
	startReloadSchedule()
}

// initDatabase 初始化数据库连接
// 设置DATABASE_URL时走postgres,否则使用sqlite(默认内存库,适合开发与测试)
func initDatabase() {
	var err error
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		path := getEnvWithDefault("BENCHMARK_DB_PATH", ":memory:")
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	log.Println("数据库连接成功")
}

// initServices 初始化服务
func initServices() {
	GlobalResolver = resolver.NewKeywordResolver()
	GlobalKPIEngine = kpi.NewEngine(GlobalResolver)
	GlobalDimensionEngine = dimension.NewAnalyzer()

	dataDir := getEnvWithDefault("BENCHMARK_DATA_DIR", "benchmark_data")
	var err error
	GlobalBenchmarkStore, err = benchmark.NewStore(DB, dataDir)
	if err != nil {
		log.Fatalf("基准仓库初始化失败: %v", err)
	}

	// 启动时预热装载,单个域失败不阻断
	for domain, loadErr := range GlobalBenchmarkStore.LoadAll() {
		if loadErr != nil {
			log.Printf("基准数据装载失败 domain=%s: %v", domain, loadErr)
		}
	}
	log.Println("服务初始化完成")
}

// startReloadSchedule 启动基准数据定时整表重载
func startReloadSchedule() {
	spec := getEnvWithDefault("BENCHMARK_RELOAD_CRON", "0 3 * * *")
	reloadCron = cron.New()
	if _, err := reloadCron.AddFunc(spec, func() {
		if err := GlobalBenchmarkStore.Reload(); err != nil {
			log.Printf("基准数据定时重载失败: %v", err)
		}
	}); err != nil {
		log.Printf("注册基准重载任务失败 spec=%s: %v", spec, err)
		return
	}
	reloadCron.Start()
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
