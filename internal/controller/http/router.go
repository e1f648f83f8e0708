// Package http exposes the scheduling facade as the admin-facing REST API.
// The candidate booking page reaches the same facade through its own
// token-gated frontend; both end up on these routes.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

// NewRouter wires the API routes over the facade.
func NewRouter(facade *service.Facade, env string, logger *zap.Logger) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	h := &Handler{facade: facade, logger: logger}

	api := router.Group("/api")
	{
		slots := api.Group("/slots")
		{
			slots.POST("", h.CreateSlot)
			slots.GET("", h.ListSlots)
			slots.GET("/grid", h.FindSlot)
			slots.GET("/day", h.DayGrid)
			slots.DELETE("/:id", h.DeleteSlot)
			slots.POST("/:id/book", h.BookSlot)
		}

		interviews := api.Group("/interviews")
		{
			interviews.POST("", h.ScheduleInterview)
			interviews.GET("/upcoming", h.ListUpcoming)
			interviews.GET("/completed", h.ListCompleted)
			interviews.POST("/:id/start", h.StartSession)
			interviews.POST("/:id/complete", h.CompleteInterview)
			interviews.POST("/:id/no-show", h.MarkNoShow)
			interviews.POST("/:id/cancel", h.CancelInterview)
		}

		api.POST("/invites", h.IssueInvite)
		api.GET("/stats", h.Stats)
	}

	return router
}
