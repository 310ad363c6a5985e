package controller

import (
	"net/http"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/service"
	"skillstack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// @Summary 学习记录列表
// @Description 按日期倒序，可按技能筛选
// @Tags 学习记录
// @Produce json
// @Param skill query int false "技能ID"
// @Success 200 {object} util.Response{data=[]model.ActivityView}
// @Failure 400 {object} util.Response{data=util.ValidationErrorData}
// @Router /activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	var q service.ActivityQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activities, err := c.ActivityService.List(ctx.Request.Context(), q)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	views := make([]model.ActivityView, 0, len(activities))
	for i := range activities {
		views = append(views, model.NewActivityView(&activities[i]))
	}
	util.Success(ctx, views)
}

// @Summary 记录学习
// @Description hours_spent 需大于 0.1 且最多两位小数，保存后重算所属技能
// @Tags 学习记录
// @Accept json
// @Produce json
// @Param activity body service.ActivityRequest true "学习记录"
// @Success 201 {object} util.Response{data=model.ActivityView}
// @Failure 400 {object} util.Response{data=util.ValidationErrorData}
// @Router /activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	var req service.ActivityRequest
	if !bindJSON(ctx, &req) {
		return
	}

	activity, err := c.ActivityService.Create(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, model.NewActivityView(activity))
}

// @Summary 学习记录详情
// @Tags 学习记录
// @Produce json
// @Param id path int true "学习记录ID"
// @Success 200 {object} util.Response{data=model.ActivityView}
// @Failure 404 {object} util.Response
// @Router /activities/{id} [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	activity, err := c.ActivityService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, model.NewActivityView(activity))
}

// @Summary 更新学习记录
// @Description 不允许修改所属技能
// @Tags 学习记录
// @Accept json
// @Produce json
// @Param id path int true "学习记录ID"
// @Param activity body service.ActivityRequest true "学习记录"
// @Success 200 {object} util.Response{data=model.ActivityView}
// @Failure 400 {object} util.Response{data=util.ValidationErrorData}
// @Failure 404 {object} util.Response
// @Router /activities/{id} [put]
// @Router /activities/{id} [patch]
func (c *ActivityController) UpdateActivity(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req service.ActivityRequest
	if !bindJSON(ctx, &req) {
		return
	}

	partial := ctx.Request.Method == http.MethodPatch
	activity, err := c.ActivityService.Update(ctx.Request.Context(), id, req, partial)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, model.NewActivityView(activity))
}

// @Summary 删除学习记录
// @Tags 学习记录
// @Param id path int true "学习记录ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /activities/{id} [delete]
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.ActivityService.Delete(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
