package http

import (
	"github.com/labstack/echo/v4"
	"github.com/promoforge/adgen-backend/internal/videojobs"
)

func MapJobRoutes(jobGroup *echo.Group, h videojobs.Handler) {
	jobGroup.POST("", h.CreateJob())
	jobGroup.GET("/:job_id", h.GetJob())
	jobGroup.POST("/:job_id/inputs", h.SubmitInputs())
	jobGroup.POST("/:job_id/render", h.TriggerRender())
	jobGroup.GET("/:job_id/result", h.GetResult())
}
