package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/promoforge/adgen-backend/internal/middleware"
	jobHttp "github.com/promoforge/adgen-backend/internal/videojobs/delivery/http"
	jobRepository "github.com/promoforge/adgen-backend/internal/videojobs/repository"
	jobUsecase "github.com/promoforge/adgen-backend/internal/videojobs/usecase"
	"github.com/promoforge/adgen-backend/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	jRepo := jobRepository.NewJobRepo(s.db)
	jQueueRepo := jobRepository.NewJobQueueRepo(s.redisClient)

	jobUC := jobUsecase.NewJobUseCase(s.cfg, jRepo, jQueueRepo, s.logger)
	jobHandlers := jobHttp.NewJobHandler(jobUC)

	mw := middleware.NewMiddlewareManager(s.cfg, s.logger)
	e.Use(mw.RequestLoggerMiddleware)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	jobGroup := v1.Group("/jobs")

	jobHttp.MapJobRoutes(jobGroup, jobHandlers)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
