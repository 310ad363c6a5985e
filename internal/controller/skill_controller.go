package controller

import (
	"net/http"
	"skillstack_backend/internal/service"
	"skillstack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillService     *service.SkillService
	StatsService     *service.StatsService
	RecomputeService *service.RecomputeService
}

func NewSkillController(skillService *service.SkillService, statsService *service.StatsService, recomputeService *service.RecomputeService) *SkillController {
	return &SkillController{
		SkillService:     skillService,
		StatsService:     statsService,
		RecomputeService: recomputeService,
	}
}

// @Summary 技能列表
// @Description 按状态、平台、资源类型筛选，search 对名称、描述、标签做不区分大小写的模糊匹配，按创建时间倒序
// @Tags 技能
// @Produce json
// @Param status query string false "状态" Enums(not_started, in_progress, completed, paused)
// @Param platform query string false "平台"
// @Param resource_type query string false "资源类型"
// @Param search query string false "关键字"
// @Success 200 {object} util.Response{data=[]model.SkillListItem}
// @Failure 400 {object} util.Response{data=util.ValidationErrorData}
// @Router /skills [get]
func (c *SkillController) ListSkills(ctx *gin.Context) {
	var q service.SkillQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	items, err := c.SkillService.List(ctx.Request.Context(), q)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary 创建技能
// @Description 新技能的 hours_spent 为 0、status 为 not_started
// @Tags 技能
// @Accept json
// @Produce json
// @Param skill body service.SkillRequest true "技能信息"
// @Success 201 {object} util.Response{data=model.SkillDetail}
// @Failure 400 {object} util.Response{data=util.ValidationErrorData}
// @Router /skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	var req service.SkillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	skill, err := c.SkillService.Create(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, skill)
}

// @Summary 技能详情
// @Description 包含进度与全部学习记录
// @Tags 技能
// @Produce json
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response{data=model.SkillDetail}
// @Failure 404 {object} util.Response
// @Router /skills/{id} [get]
func (c *SkillController) GetSkill(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	skill, err := c.SkillService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// @Summary 更新技能
// @Description PUT 需要提供 name、resource_type、platform；PATCH 为部分更新。保存后重算学习时长与状态
// @Tags 技能
// @Accept json
// @Produce json
// @Param id path int true "技能ID"
// @Param skill body service.SkillRequest true "技能信息"
// @Success 200 {object} util.Response{data=model.SkillDetail}
// @Failure 400 {object} util.Response{data=util.ValidationErrorData}
// @Failure 404 {object} util.Response
// @Router /skills/{id} [put]
// @Router /skills/{id} [patch]
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req service.SkillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	partial := ctx.Request.Method == http.MethodPatch
	skill, err := c.SkillService.Update(ctx.Request.Context(), id, req, partial)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// @Summary 删除技能
// @Description 同时删除该技能的全部学习记录
// @Tags 技能
// @Param id path int true "技能ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /skills/{id} [delete]
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.SkillService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 技能统计
// @Tags 技能
// @Produce json
// @Success 200 {object} util.Response{data=model.SkillStats}
// @Router /skills/stats [get]
func (c *SkillController) GetStats(ctx *gin.Context) {
	stats, err := c.StatsService.GetStats(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary 重算技能
// @Description 根据学习记录重新计算 hours_spent 与 status
// @Tags 维护
// @Produce json
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response{data=model.SkillDetail}
// @Failure 404 {object} util.Response
// @Router /skills/{id}/recompute [post]
func (c *SkillController) RecomputeSkill(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if _, err := c.RecomputeService.Recompute(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	skill, err := c.SkillService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// @Summary 一致性检查
// @Description 对比 hours_spent 与学习记录合计，不一致时返回 409
// @Tags 维护
// @Produce json
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response{data=service.ConsistencyReport}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /skills/{id}/consistency [get]
func (c *SkillController) CheckConsistency(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	report, err := c.RecomputeService.CheckConsistency(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
