package videojobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/models"
)

type UseCase interface {
	CreateJob(ctx context.Context, input *models.CreateJobInput) (*models.VideoJob, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.JobDetail, error)
	SubmitInputs(ctx context.Context, jobID uuid.UUID, input *models.SubmitInputsInput) (*models.VideoJob, error)
	TriggerRender(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error)
	GetResult(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error)
}
