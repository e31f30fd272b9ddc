package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/videojobs"
	"github.com/promoforge/adgen-backend/pkg/apperrors"
	"github.com/promoforge/adgen-backend/pkg/logger"
	"github.com/promoforge/adgen-backend/pkg/utils"
)

type jobUC struct {
	cfg       *config.Config
	jobRepo   videojobs.Repository
	queueRepo videojobs.QueueRepository
	logger    logger.Logger
}

func NewJobUseCase(
	cfg *config.Config,
	jobRepo videojobs.Repository,
	queueRepo videojobs.QueueRepository,
	log logger.Logger,
) videojobs.UseCase {
	return &jobUC{
		cfg:       cfg,
		jobRepo:   jobRepo,
		queueRepo: queueRepo,
		logger:    log,
	}
}

// CreateJob registers a new source video submission and kicks off the
// ingest stage. The job starts in PENDING_ANALYSIS.
func (u *jobUC) CreateJob(ctx context.Context, input *models.CreateJobInput) (*models.VideoJob, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("CreateJob - ValidateStruct error: %v", err)
		return nil, apperrors.InvalidInputf("%v", err)
	}

	job := &models.VideoJob{
		JobID:     uuid.New(),
		UserID:    input.UserID,
		SourceURL: input.SourceURL,
		Status:    models.JobStatusPendingAnalysis,
	}
	job, err := u.jobRepo.CreateJob(ctx, job)
	if err != nil {
		u.logger.Errorf("CreateJob - CreateJob error: %v", err)
		return nil, err
	}

	if err = u.queueRepo.EnqueueJob(ctx, videojobs.IngestQueueKey, &models.QueueMessage{JobID: job.JobID}); err != nil {
		u.logger.Errorf("CreateJob - EnqueueJob error: %v", err)
		return nil, fmt.Errorf("failed to queue the job: %v", err)
	}

	u.logger.Infof("Created job %s for source %s", job.JobID, job.SourceURL)
	return job, nil
}

func (u *jobUC) GetJob(ctx context.Context, jobID uuid.UUID) (*models.JobDetail, error) {
	detail, err := u.jobRepo.GetJobDetail(ctx, jobID)
	if err != nil {
		u.logger.Errorf("GetJob - GetJobDetail error: %v", err)
		return nil, err
	}
	return detail, nil
}

// SubmitInputs upserts the client's creative assets and moves the job to
// READY_TO_RENDER. The job must already own a template, which is exactly
// the STRUCTURE_BUILT entry condition. Inputs may be revised any number
// of times until rendering starts; a re-submission in READY_TO_RENDER
// replaces the stored inputs and keeps the status.
func (u *jobUC) SubmitInputs(ctx context.Context, jobID uuid.UUID, input *models.SubmitInputsInput) (*models.VideoJob, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("SubmitInputs - ValidateStruct error: %v", err)
		return nil, apperrors.InvalidInputf("%v", err)
	}

	job, err := u.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.TemplateID == nil {
		return nil, apperrors.PreconditionFailedf("job %s has no template yet", jobID)
	}
	if job.Status != models.JobStatusReadyToRender && !job.Status.CanTransitionTo(models.JobStatusReadyToRender) {
		return nil, apperrors.PreconditionFailedf("job %s is in status %s", jobID, job.Status)
	}

	inputs := &models.ClientInputs{
		VideoJobID: jobID,
		LogoURI:    input.LogoURI,
		Texts:      input.Texts,
		Colors:     input.Colors,
		Options:    input.Options,
	}
	if err = u.jobRepo.UpsertInputs(ctx, inputs); err != nil {
		u.logger.Errorf("SubmitInputs - UpsertInputs error: %v", err)
		return nil, err
	}
	if err = u.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusReadyToRender); err != nil {
		u.logger.Errorf("SubmitInputs - UpdateStatus error: %v", err)
		return nil, err
	}

	job.Status = models.JobStatusReadyToRender
	return job, nil
}

// TriggerRender validates that both template and inputs exist, moves the
// job to RENDERING and enqueues the render stage. Missing collaborators
// reject the request with no state change.
func (u *jobUC) TriggerRender(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error) {
	detail, err := u.jobRepo.GetJobDetail(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if detail.Template == nil || detail.Inputs == nil {
		return nil, apperrors.PreconditionFailedf("job %s is missing template or inputs", jobID)
	}
	if !detail.Job.Status.CanTransitionTo(models.JobStatusRendering) {
		return nil, apperrors.PreconditionFailedf("job %s is in status %s", jobID, detail.Job.Status)
	}

	if err = u.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusRendering); err != nil {
		u.logger.Errorf("TriggerRender - UpdateStatus error: %v", err)
		return nil, err
	}
	if err = u.queueRepo.EnqueueJob(ctx, videojobs.RenderQueueKey, &models.QueueMessage{JobID: jobID}); err != nil {
		u.logger.Errorf("TriggerRender - EnqueueJob error: %v", err)
		return nil, fmt.Errorf("failed to queue the render: %v", err)
	}

	u.logger.Infof("Render triggered for job %s", jobID)
	detail.Job.Status = models.JobStatusRendering
	return detail.Job, nil
}

func (u *jobUC) GetResult(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error) {
	job, err := u.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		u.logger.Errorf("GetResult - GetJobByID error: %v", err)
		return nil, err
	}
	return job, nil
}
