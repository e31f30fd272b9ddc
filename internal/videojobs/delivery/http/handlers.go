package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/videojobs"
	"github.com/promoforge/adgen-backend/pkg/apperrors"
)

type jobHandler struct {
	jobUC videojobs.UseCase
}

func NewJobHandler(jobUC videojobs.UseCase) videojobs.Handler {
	return &jobHandler{
		jobUC: jobUC,
	}
}

func (h *jobHandler) CreateJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.CreateJobInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		job, err := h.jobUC.CreateJob(c.Request().Context(), input)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"job_id": job.JobID,
			"status": job.Status,
		})
	}
}

func (h *jobHandler) GetJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		detail, err := h.jobUC.GetJob(c.Request().Context(), jobID)
		if err != nil {
			return respondError(c, err)
		}
		resp := map[string]interface{}{
			"job_id": detail.Job.JobID,
			"status": detail.Job.Status,
		}
		if detail.Template != nil {
			resp["template"] = map[string]interface{}{
				"id":    detail.Template.TemplateID,
				"slots": detail.Template.Slots,
			}
		}
		if detail.Inputs != nil {
			resp["inputs"] = map[string]interface{}{
				"texts":  detail.Inputs.Texts,
				"colors": detail.Inputs.Colors,
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func (h *jobHandler) SubmitInputs() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		input := &models.SubmitInputsInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		job, err := h.jobUC.SubmitInputs(c.Request().Context(), jobID, input)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"job_id": job.JobID,
			"status": job.Status,
		})
	}
}

func (h *jobHandler) TriggerRender() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		job, err := h.jobUC.TriggerRender(c.Request().Context(), jobID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"job_id": job.JobID,
			"status": job.Status,
		})
	}
}

func (h *jobHandler) GetResult() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		job, err := h.jobUC.GetResult(c.Request().Context(), jobID)
		if err != nil {
			return respondError(c, err)
		}
		outputs := job.OutputURLs
		if outputs == nil {
			outputs = models.OutputURLs{}
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"job_id":  job.JobID,
			"status":  job.Status,
			"outputs": outputs,
		})
	}
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPreconditionFailed):
		return c.JSON(http.StatusPreconditionFailed, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
