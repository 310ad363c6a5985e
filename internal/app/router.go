package app

import (
	"skillstack_backend/docs"
	"skillstack_backend/internal/config"
	"skillstack_backend/internal/middleware"
	"skillstack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 业务路由（开启 auth 时需要令牌）
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerSkillRoutes(api, c)
		a.registerActivityRoutes(api, c)
	}
}

func (a *App) registerSkillRoutes(rg *gin.RouterGroup, c *controllers) {
	skills := rg.Group("/skills")
	{
		skills.GET("", c.skill.ListSkills)
		skills.POST("", c.skill.CreateSkill)
		skills.GET("/stats", c.skill.GetStats)
		skills.GET("/:id", c.skill.GetSkill)
		skills.PUT("/:id", c.skill.UpdateSkill)
		skills.PATCH("/:id", c.skill.UpdateSkill)
		skills.DELETE("/:id", c.skill.DeleteSkill)

		// 维护接口
		skills.POST("/:id/recompute", c.skill.RecomputeSkill)
		skills.GET("/:id/consistency", c.skill.CheckConsistency)
	}
}

func (a *App) registerActivityRoutes(rg *gin.RouterGroup, c *controllers) {
	activities := rg.Group("/activities")
	{
		activities.GET("", c.activity.ListActivities)
		activities.POST("", c.activity.CreateActivity)
		activities.GET("/:id", c.activity.GetActivity)
		activities.PUT("/:id", c.activity.UpdateActivity)
		activities.PATCH("/:id", c.activity.UpdateActivity)
		activities.DELETE("/:id", c.activity.DeleteActivity)
	}
}
