/*
 * @module api/controllers/analysis_controller
 * @description 分析控制器：数据集KPI计算、领域检测、维度分解与CSV上传分析
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/kpi_engine.md
 * @stateFlow 请求解码 -> 数据集构建 -> 领域确定(显式或自动检测) -> 引擎计算 -> 响应组装
 * @rules 控制器只做薄胶水,全部计算语义在service层;单个KPI失败不影响响应整体
 * @dependencies github.com/google/uuid
 * @refs service/kpi, service/domaindetect, service/dimension
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"insight-service/service"
	"insight-service/service/dataset"
	"insight-service/service/domaindetect"
	"insight-service/service/dimension"
	"insight-service/service/kpi"
	"insight-service/service/meta"
)

type AnalysisController struct {
}

func NewAnalysisController() *AnalysisController {
	return &AnalysisController{}
}

// DatasetRequest 内嵌数据集的请求体
type DatasetRequest struct {
	Columns     []string        `json:"columns"`
	Rows        [][]interface{} `json:"rows"`
	Domain      string          `json:"domain,omitempty"`
	Description string          `json:"description,omitempty"`
}

// AnalysisResponse KPI分析响应
type AnalysisResponse struct {
	AnalysisID string                    `json:"analysis_id"`
	Domain     string                    `json:"domain"`
	Detection  *domaindetect.Detection   `json:"detection,omitempty"`
	KPIs       map[string]*kpi.KPIResult `json:"kpis"`
	Skipped    []kpi.Attempt             `json:"skipped,omitempty"`
}

func (c *AnalysisController) buildDataset(req *DatasetRequest) (*dataset.Dataset, *APIResponse) {
	if len(req.Columns) == 0 {
		return nil, BadRequestResponse("columns不能为空")
	}
	ds, err := dataset.New(req.Columns, req.Rows)
	if err != nil {
		return nil, BadRequestResponse("数据集构建失败: " + err.Error())
	}
	return ds, nil
}

// analyze 确定领域并跑KPI引擎,领域缺省时走自动检测
func (c *AnalysisController) analyze(ds *dataset.Dataset, domain, description string) *AnalysisResponse {
	response := &AnalysisResponse{AnalysisID: uuid.NewString()}

	if domain == "" {
		response.Detection = domaindetect.Detect(ds, description)
		domain = response.Detection.Domain
	}
	if profile, ok := meta.GetProfile(domain); ok {
		domain = profile.Key
	} else {
		domain = meta.DomainGeneral
	}
	response.Domain = domain

	attempts := service.GlobalKPIEngine.ComputeAttempts(ds, domain)
	response.KPIs = make(map[string]*kpi.KPIResult, len(attempts))
	for _, attempt := range attempts {
		if attempt.Result != nil {
			response.KPIs[attempt.Name] = attempt.Result
		} else {
			response.Skipped = append(response.Skipped, attempt)
		}
	}
	return response
}

// @Summary 计算数据集的领域KPI
// @Description 对内嵌数据集按指定或自动检测的领域计算KPI,单个KPI失败只记录跳过原因
// @Tags 分析
// @Accept json
// @Produce json
// @Param request body DatasetRequest true "数据集"
// @Success 200 {object} APIResponse{data=AnalysisResponse}
// @Failure 400 {object} APIResponse
// @Router /analysis/kpis [post]
func (c *AnalysisController) ComputeKPIs(w http.ResponseWriter, r *http.Request) {
	var req DatasetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求体解析失败: "+err.Error()))
		return
	}
	ds, errResp := c.buildDataset(&req)
	if errResp != nil {
		render.JSON(w, r, errResp)
		return
	}
	render.JSON(w, r, SuccessResponse("KPI计算完成", c.analyze(ds, req.Domain, req.Description)))
}

// @Summary 上传CSV并计算KPI
// @Description multipart上传CSV文件(字段file),可附带domain与description表单字段
// @Tags 分析
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV文件"
// @Param domain formData string false "领域键"
// @Param description formData string false "数据描述"
// @Success 200 {object} APIResponse{data=AnalysisResponse}
// @Failure 400 {object} APIResponse
// @Router /analysis/upload [post]
func (c *AnalysisController) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		render.JSON(w, r, BadRequestResponse("读取上传文件失败: "+err.Error()))
		return
	}
	defer file.Close()

	ds, err := dataset.FromCSV(file)
	if err != nil {
		render.JSON(w, r, BadRequestResponse("CSV解析失败: "+err.Error()))
		return
	}
	render.JSON(w, r, SuccessResponse("KPI计算完成",
		c.analyze(ds, r.FormValue("domain"), r.FormValue("description"))))
}

// @Summary 检测数据集所属业务领域
// @Tags 分析
// @Accept json
// @Produce json
// @Param request body DatasetRequest true "数据集(rows可省略)"
// @Success 200 {object} APIResponse{data=domaindetect.Detection}
// @Failure 400 {object} APIResponse
// @Router /analysis/detect-domain [post]
func (c *AnalysisController) DetectDomain(w http.ResponseWriter, r *http.Request) {
	var req DatasetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求体解析失败: "+err.Error()))
		return
	}
	var ds *dataset.Dataset
	if len(req.Columns) > 0 {
		var errResp *APIResponse
		if ds, errResp = c.buildDataset(&req); errResp != nil {
			render.JSON(w, r, errResp)
			return
		}
	}
	render.JSON(w, r, SuccessResponse("领域检测完成", domaindetect.Detect(ds, req.Description)))
}

// DimensionRequest 维度分解请求
type DimensionRequest struct {
	DatasetRequest
	Dimension   string `json:"dimension"`
	Metric      string `json:"metric"`
	Aggregation string `json:"aggregation,omitempty"`
}

// @Summary 按维度分组聚合指标并输出榜单
// @Tags 分析
// @Accept json
// @Produce json
// @Param request body DimensionRequest true "维度分解请求"
// @Success 200 {object} APIResponse{data=dimension.Breakdown}
// @Failure 400 {object} APIResponse
// @Router /analysis/dimensions [post]
func (c *AnalysisController) AnalyzeDimension(w http.ResponseWriter, r *http.Request) {
	var req DimensionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求体解析失败: "+err.Error()))
		return
	}
	ds, errResp := c.buildDataset(&req.DatasetRequest)
	if errResp != nil {
		render.JSON(w, r, errResp)
		return
	}

	agg := dimension.Aggregation(req.Aggregation)
	switch agg {
	case "":
		agg = dimension.AggSum
	case dimension.AggSum, dimension.AggMean, dimension.AggCount:
	default:
		render.JSON(w, r, BadRequestResponse("不支持的聚合方式: "+req.Aggregation))
		return
	}

	breakdown, err := service.GlobalDimensionEngine.Analyze(ds, req.Dimension, req.Metric, agg)
	if err != nil {
		render.JSON(w, r, BadRequestResponse("维度分解失败: "+err.Error()))
		return
	}
	render.JSON(w, r, SuccessResponse("维度分解完成", breakdown))
}

// ROASRequest ROAS维度分解请求,revenue/spend列缺省时按概念自动解析
type ROASRequest struct {
	DatasetRequest
	Dimension  string `json:"dimension"`
	RevenueCol string `json:"revenue_column,omitempty"`
	SpendCol   string `json:"spend_column,omitempty"`
}

// @Summary 按维度分组计算ROAS并合成行动洞察
// @Description 输出各组收入/花费/ROAS榜单与scale_winner、stop_bleeding、budget_reallocation洞察
// @Tags 分析
// @Accept json
// @Produce json
// @Param request body ROASRequest true "ROAS分解请求"
// @Success 200 {object} APIResponse{data=dimension.ROASBreakdown}
// @Failure 400 {object} APIResponse
// @Router /analysis/roas [post]
func (c *AnalysisController) AnalyzeROAS(w http.ResponseWriter, r *http.Request) {
	var req ROASRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("请求体解析失败: "+err.Error()))
		return
	}
	ds, errResp := c.buildDataset(&req.DatasetRequest)
	if errResp != nil {
		render.JSON(w, r, errResp)
		return
	}

	revenueCol := req.RevenueCol
	if revenueCol == "" {
		var ok bool
		if revenueCol, ok = service.GlobalResolver.Resolve("revenue", ds.Columns()); !ok {
			render.JSON(w, r, BadRequestResponse("无法定位收入列,请显式指定revenue_column"))
			return
		}
	}
	spendCol := req.SpendCol
	if spendCol == "" {
		var ok bool
		if spendCol, ok = service.GlobalResolver.Resolve("spend", ds.Columns()); !ok {
			render.JSON(w, r, BadRequestResponse("无法定位花费列,请显式指定spend_column"))
			return
		}
	}

	breakdown, err := service.GlobalDimensionEngine.AnalyzeROAS(ds, req.Dimension, revenueCol, spendCol)
	if err != nil {
		render.JSON(w, r, BadRequestResponse("ROAS分解失败: "+err.Error()))
		return
	}
	render.JSON(w, r, SuccessResponse("ROAS分解完成", breakdown))
}
