/*
 * @module api/controllers/benchmark_controller
 * @description 基准控制器：装载状态查询、记录查询、值比较与整表重载
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/benchmark.md
 * @stateFlow HTTP请求处理流程
 * @rules 无匹配基准是正常部分结果,返回空data而非错误;装载失败只影响所查询的域
 * @dependencies net/http
 * @refs service/benchmark
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"insight-service/service"
	"insight-service/service/benchmark"
	"insight-service/service/meta"
)

type BenchmarkController struct {
}

func NewBenchmarkController() *BenchmarkController {
	return &BenchmarkController{}
}

// @Summary 查询各领域基准数据装载状态
// @Tags 基准
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]string}
// @Router /benchmarks/status [get]
func (c *BenchmarkController) GetStatus(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取装载状态成功", service.GlobalBenchmarkStore.Status()))
}

// @Summary 获取基准数据来源注册表
// @Tags 基准
// @Produce json
// @Success 200 {object} APIResponse{data=[]benchmark.SourceInfo}
// @Router /benchmarks/sources [get]
func (c *BenchmarkController) GetSources(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取来源注册表成功", benchmark.Sources()))
}

// @Summary 查询指定领域的基准记录
// @Description query参数作为过滤条件:role/city/channel等子串匹配,sales_type/experience_level精确匹配,未知键忽略
// @Tags 基准
// @Produce json
// @Param domain path string true "领域键"
// @Success 200 {object} APIResponse{data=[]benchmark.Record}
// @Failure 404 {object} APIResponse
// @Router /benchmarks/{domain} [get]
func (c *BenchmarkController) QueryRecords(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	profile, ok := meta.GetProfile(domain)
	if !ok {
		render.JSON(w, r, NotFoundResponse("未知业务领域: "+domain))
		return
	}

	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	records, err := service.GlobalBenchmarkStore.Query(profile.Key, filters)
	if err != nil {
		render.JSON(w, r, InternalErrorResponse("基准查询失败", err))
		return
	}
	render.JSON(w, r, SuccessResponse("基准查询完成", records))
}

// CompareRequest 基准比较请求
type CompareRequest struct {
	Metric  string            `json:"metric,omitempty"`
	Value   float64           `json:"value"`
	Filters map[string]string `json:"filters,omitempty"`
}

// @Summary 将用户值与指定领域的基准分布比较
// @Description 按过滤条件取第一条匹配记录做分段百分位插值,无匹配时data为空
// @Tags 基准
// @Accept json
// @Produce json
// @Param domain path string true "领域键"
// @Param request body CompareRequest true "比较请求"
// @Success 200 {object} APIResponse{data=benchmark.ComparisonResult}
// @Failure 404 {object} APIResponse
// @Router /benchmarks/{domain}/compare [post]
func (c *BenchmarkController) Compare(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	profile, ok := meta.GetProfile(domain)
	if !ok {
		render.JSON(w, r, NotFoundResponse("未知业务领域: "+domain))
		return
	}

	var req CompareRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求体解析失败: "+err.Error()))
		return
	}

	result, err := service.GlobalBenchmarkStore.Compare(profile.Key, req.Metric, req.Value, req.Filters)
	if err != nil {
		render.JSON(w, r, InternalErrorResponse("基准比较失败", err))
		return
	}
	if result == nil {
		render.JSON(w, r, SuccessResponse("无匹配基准记录", nil))
		return
	}
	render.JSON(w, r, SuccessResponse("基准比较完成", result))
}

// @Summary 整表重载基准数据
// @Tags 基准
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]string}
// @Router /benchmarks/reload [post]
func (c *BenchmarkController) Reload(w http.ResponseWriter, r *http.Request) {
	if err := service.GlobalBenchmarkStore.Reload(); err != nil {
		render.JSON(w, r, InternalErrorResponse("基准重载失败", err))
		return
	}
	render.JSON(w, r, SuccessResponse("基准重载完成", service.GlobalBenchmarkStore.Status()))
}
