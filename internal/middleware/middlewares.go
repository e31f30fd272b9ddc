package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/pkg/logger"
)

type MiddlewareManager struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewMiddlewareManager(cfg *config.Config, logger logger.Logger) *MiddlewareManager {
	return &MiddlewareManager{
		cfg:    cfg,
		logger: logger,
	}
}

func (mw *MiddlewareManager) RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		res := c.Response()
		mw.logger.Infof("Method: %s, URI: %s, Status: %d, Time: %s",
			req.Method,
			req.RequestURI,
			res.Status,
			time.Since(start),
		)
		return err
	}
}
