/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference ai_docs/backend_requirements.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers
 */

package api

import (
	"insight-service/api/controllers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查
	healthController := controllers.NewHealthController()
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 元数据
	r.Route("/meta", func(r chi.Router) {
		metaController := controllers.NewMetaController()
		r.Get("/domains", metaController.GetDomains)
		r.Get("/domains/{domain}", metaController.GetDomain)
		r.Get("/protected-fields", metaController.GetProtectedFields)
		r.Get("/protected-fields/check", metaController.CheckProtectedField)
		r.Post("/validate-range", metaController.ValidateRange)
	})

	// 分析
	r.Route("/analysis", func(r chi.Router) {
		analysisController := controllers.NewAnalysisController()
		r.Post("/kpis", analysisController.ComputeKPIs)
		r.Post("/upload", analysisController.UploadCSV)
		r.Post("/detect-domain", analysisController.DetectDomain)
		r.Post("/dimensions", analysisController.AnalyzeDimension)
		r.Post("/roas", analysisController.AnalyzeROAS)
	})

	// 基准数据
	r.Route("/benchmarks", func(r chi.Router) {
		benchmarkController := controllers.NewBenchmarkController()
		r.Get("/status", benchmarkController.GetStatus)
		r.Get("/sources", benchmarkController.GetSources)
		r.Post("/reload", benchmarkController.Reload)
		r.Get("/{domain}", benchmarkController.QueryRecords)
		r.Post("/{domain}/compare", benchmarkController.Compare)
	})
}
