package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/videojobs"
	"github.com/promoforge/adgen-backend/pkg/apperrors"
)

type jobRepo struct {
	db *sqlx.DB
}

func NewJobRepo(db *sqlx.DB) videojobs.Repository {
	return &jobRepo{
		db: db,
	}
}

func (r *jobRepo) CreateJob(ctx context.Context, job *models.VideoJob) (*models.VideoJob, error) {
	created := &models.VideoJob{}
	if err := r.db.QueryRowxContext(
		ctx,
		createJobQuery,
		job.JobID,
		job.UserID,
		job.SourceURL,
		job.Status,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (r *jobRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error) {
	job := &models.VideoJob{}
	if err := r.db.QueryRowxContext(
		ctx,
		getJobByIDQuery,
		jobID,
	).StructScan(job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("job %s", jobID)
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}
	return job, nil
}

func (r *jobRepo) GetJobDetail(ctx context.Context, jobID uuid.UUID) (*models.JobDetail, error) {
	job, err := r.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	detail := &models.JobDetail{Job: job}

	template := &models.Template{}
	if err := r.db.QueryRowxContext(ctx, getTemplateByJobIDQuery, jobID).StructScan(template); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get template for job: %w", err)
		}
	} else {
		detail.Template = template
	}

	inputs := &models.ClientInputs{}
	if err := r.db.QueryRowxContext(ctx, getInputsByJobIDQuery, jobID).StructScan(inputs); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get inputs for job: %w", err)
		}
	} else {
		detail.Inputs = inputs
	}

	return detail, nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, jobID uuid.UUID, status models.JobStatus) error {
	return r.execOnJob(ctx, updateStatusQuery, jobID, status)
}

func (r *jobRepo) UpdateSourceVideoURI(ctx context.Context, jobID uuid.UUID, sourceVideoURI string) error {
	return r.execOnJob(ctx, updateSourceURIQuery, jobID, sourceVideoURI)
}

func (r *jobRepo) AttachTemplate(ctx context.Context, jobID uuid.UUID, templateID uuid.UUID, analysis *models.AnalysisResult) error {
	return r.execOnJob(ctx, attachTemplateQuery, jobID, templateID, analysis, models.JobStatusStructureBuilt)
}

func (r *jobRepo) MarkReady(ctx context.Context, jobID uuid.UUID, outputs models.OutputURLs) error {
	return r.execOnJob(ctx, markReadyQuery, jobID, outputs, models.JobStatusReady)
}

func (r *jobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) error {
	return r.execOnJob(ctx, markFailedQuery, jobID, errorMessage, models.JobStatusFailed)
}

func (r *jobRepo) execOnJob(ctx context.Context, query string, jobID uuid.UUID, args ...interface{}) error {
	params := append([]interface{}{jobID}, args...)
	res, err := r.db.ExecContext(ctx, query, params...)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return apperrors.NotFoundf("job %s", jobID)
	}
	return nil
}

func (r *jobRepo) CreateTemplate(ctx context.Context, template *models.Template) (*models.Template, error) {
	created := &models.Template{}
	if err := r.db.QueryRowxContext(
		ctx,
		createTemplateQuery,
		template.TemplateID,
		template.VideoJobID,
		template.Name,
		template.Engine,
		template.RenderScript,
		template.Slots,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return created, nil
}

func (r *jobRepo) UpsertInputs(ctx context.Context, inputs *models.ClientInputs) error {
	if _, err := r.db.ExecContext(
		ctx,
		upsertInputsQuery,
		inputs.VideoJobID,
		inputs.LogoURI,
		inputs.Texts,
		inputs.Colors,
		inputs.Options,
	); err != nil {
		return fmt.Errorf("failed to upsert inputs: %w", err)
	}
	return nil
}
