package videojobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/models"
)

type Repository interface {
	CreateJob(ctx context.Context, job *models.VideoJob) (*models.VideoJob, error)
	GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error)
	GetJobDetail(ctx context.Context, jobID uuid.UUID) (*models.JobDetail, error)
	UpdateStatus(ctx context.Context, jobID uuid.UUID, status models.JobStatus) error
	UpdateSourceVideoURI(ctx context.Context, jobID uuid.UUID, sourceVideoURI string) error
	AttachTemplate(ctx context.Context, jobID uuid.UUID, templateID uuid.UUID, analysis *models.AnalysisResult) error
	MarkReady(ctx context.Context, jobID uuid.UUID, outputs models.OutputURLs) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) error

	CreateTemplate(ctx context.Context, template *models.Template) (*models.Template, error)
	UpsertInputs(ctx context.Context, inputs *models.ClientInputs) error
}
