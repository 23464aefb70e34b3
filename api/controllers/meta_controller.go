/*
 * @module api/controllers/meta_controller
 * @description 元数据控制器：领域档案、受保护字段与越南市场取值区间校验
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/domain_profiles.md
 * @stateFlow HTTP请求处理流程
 * @rules 元数据为进程级只读注册表,接口仅做查询与校验,不产生副作用
 * @dependencies net/http
 * @refs service/meta
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"insight-service/service/meta"
)

type MetaController struct {
}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// @Summary 获取所有业务领域档案
// @Description 获取全部九个业务领域的档案,包括关键词、核心KPI与基准说明
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]meta.DomainProfile}
// @Router /meta/domains [get]
func (c *MetaController) GetDomains(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取领域档案成功", meta.Profiles()))
}

// @Summary 获取单个业务领域档案
// @Description 按领域键获取档案,支持别名(ecommerce、human resources等)
// @Tags 元数据
// @Produce json
// @Param domain path string true "领域键"
// @Success 200 {object} APIResponse{data=meta.DomainProfile}
// @Failure 404 {object} APIResponse
// @Router /meta/domains/{domain} [get]
func (c *MetaController) GetDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	profile, ok := meta.GetProfile(domain)
	if !ok {
		render.JSON(w, r, NotFoundResponse("未知业务领域: "+domain))
		return
	}
	render.JSON(w, r, SuccessResponse("获取领域档案成功", profile))
}

// @Summary 获取不可填补字段清单
// @Description 获取清洗阶段禁止统计填补的敏感字段关键词(双语)
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]string}
// @Router /meta/protected-fields [get]
func (c *MetaController) GetProtectedFields(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("获取保护字段清单成功", meta.ProtectedFields()))
}

// ValidateRangeRequest 取值区间校验请求
type ValidateRangeRequest struct {
	Column string  `json:"column"`
	Value  float64 `json:"value"`
}

// @Summary 校验数值是否落在越南市场合理区间
// @Description 按列名匹配越南市场校验区间并检查取值,未匹配到区间时返回valid=true
// @Tags 元数据
// @Accept json
// @Produce json
// @Param request body ValidateRangeRequest true "校验请求"
// @Success 200 {object} APIResponse{data=meta.RangeCheck}
// @Failure 400 {object} APIResponse
// @Router /meta/validate-range [post]
func (c *MetaController) ValidateRange(w http.ResponseWriter, r *http.Request) {
	var req ValidateRangeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求体解析失败: "+err.Error()))
		return
	}
	if req.Column == "" {
		render.JSON(w, r, BadRequestResponse("column不能为空"))
		return
	}
	render.JSON(w, r, SuccessResponse("校验完成", meta.ValidateVietnamRange(req.Column, req.Value)))
}

// @Summary 判断单个列是否为保护字段
// @Tags 元数据
// @Produce json
// @Param column query string true "列名"
// @Success 200 {object} APIResponse{data=bool}
// @Router /meta/protected-fields/check [get]
func (c *MetaController) CheckProtectedField(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("column")
	if column == "" {
		render.JSON(w, r, BadRequestResponse("column不能为空"))
		return
	}
	render.JSON(w, r, SuccessResponse("判断完成", meta.IsProtectedField(column)))
}
