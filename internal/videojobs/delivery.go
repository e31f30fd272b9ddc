package videojobs

import "github.com/labstack/echo/v4"

type Handler interface {
	CreateJob() echo.HandlerFunc
	GetJob() echo.HandlerFunc
	SubmitInputs() echo.HandlerFunc
	TriggerRender() echo.HandlerFunc
	GetResult() echo.HandlerFunc
}
