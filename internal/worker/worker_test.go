package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/pkg/apperrors"
)

type nopLogger struct{}

func (nopLogger) InitLogger()                          {}
func (nopLogger) Debug(args ...interface{})            {}
func (nopLogger) Debugf(t string, args ...interface{}) {}
func (nopLogger) Info(args ...interface{})             {}
func (nopLogger) Infof(t string, args ...interface{})  {}
func (nopLogger) Warn(args ...interface{})             {}
func (nopLogger) Warnf(t string, args ...interface{})  {}
func (nopLogger) Error(args ...interface{})            {}
func (nopLogger) Errorf(t string, args ...interface{}) {}
func (nopLogger) Fatal(args ...interface{})            {}
func (nopLogger) Fatalf(t string, args ...interface{}) {}

type fakeJobRepo struct {
	jobs      map[uuid.UUID]*models.VideoJob
	templates map[uuid.UUID]*models.Template
	inputs    map[uuid.UUID]*models.ClientInputs

	createTemplateErr error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:      map[uuid.UUID]*models.VideoJob{},
		templates: map[uuid.UUID]*models.Template{},
		inputs:    map[uuid.UUID]*models.ClientInputs{},
	}
}

func (r *fakeJobRepo) CreateJob(ctx context.Context, job *models.VideoJob) (*models.VideoJob, error) {
	r.jobs[job.JobID] = job
	return job, nil
}

func (r *fakeJobRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.VideoJob, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, apperrors.NotFoundf("job %s not found", jobID)
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetJobDetail(ctx context.Context, jobID uuid.UUID) (*models.JobDetail, error) {
	job, err := r.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &models.JobDetail{
		Job:      job,
		Template: r.templates[jobID],
		Inputs:   r.inputs[jobID],
	}, nil
}

func (r *fakeJobRepo) UpdateStatus(ctx context.Context, jobID uuid.UUID, status models.JobStatus) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return apperrors.NotFoundf("job %s not found", jobID)
	}
	job.Status = status
	return nil
}

func (r *fakeJobRepo) UpdateSourceVideoURI(ctx context.Context, jobID uuid.UUID, uri string) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return apperrors.NotFoundf("job %s not found", jobID)
	}
	job.SourceVideoURI = &uri
	return nil
}

func (r *fakeJobRepo) AttachTemplate(ctx context.Context, jobID uuid.UUID, templateID uuid.UUID, analysis *models.AnalysisResult) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return apperrors.NotFoundf("job %s not found", jobID)
	}
	job.TemplateID = &templateID
	job.AnalysisMetadata = analysis
	job.Status = models.JobStatusStructureBuilt
	return nil
}

func (r *fakeJobRepo) MarkReady(ctx context.Context, jobID uuid.UUID, outputs models.OutputURLs) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return apperrors.NotFoundf("job %s not found", jobID)
	}
	job.OutputURLs = outputs
	job.Status = models.JobStatusReady
	return nil
}

func (r *fakeJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return apperrors.NotFoundf("job %s not found", jobID)
	}
	job.ErrorMessage = &errorMessage
	job.Status = models.JobStatusFailed
	return nil
}

func (r *fakeJobRepo) CreateTemplate(ctx context.Context, template *models.Template) (*models.Template, error) {
	if r.createTemplateErr != nil {
		return nil, r.createTemplateErr
	}
	r.templates[template.VideoJobID] = template
	return template, nil
}

func (r *fakeJobRepo) UpsertInputs(ctx context.Context, inputs *models.ClientInputs) error {
	r.inputs[inputs.VideoJobID] = inputs
	return nil
}

type fakeQueueRepo struct{}

func (fakeQueueRepo) EnqueueJob(ctx context.Context, key string, msg *models.QueueMessage) error {
	return nil
}

func (fakeQueueRepo) DequeueJob(ctx context.Context, key string) (*models.QueueMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeStorage struct {
	storedURI string
	err       error
	calls     int
}

func (s *fakeStorage) StoreFromURL(ctx context.Context, sourceURL string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.storedURI, nil
}

type fakeAnalyzer struct {
	result *models.AnalysisResult
	err    error
	calls  int
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, videoURI string) (*models.AnalysisResult, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.result, nil
}

// fakeRenderer returns one queued result per call, in order.
type fakeRenderer struct {
	urls  []string
	errAt int
	calls []models.RenderDocument
}

func (r *fakeRenderer) Render(ctx context.Context, doc models.RenderDocument) (string, error) {
	idx := len(r.calls)
	r.calls = append(r.calls, doc)
	if r.errAt > 0 && idx == r.errAt-1 {
		return "", fmt.Errorf("provider rejected the render")
	}
	if idx < len(r.urls) {
		return r.urls[idx], nil
	}
	return "", fmt.Errorf("unexpected render call %d", idx)
}

func newTestWorker(jobRepo *fakeJobRepo, store *fakeStorage, analyzer *fakeAnalyzer, renderer *fakeRenderer) *Worker {
	cfg := &config.Config{}
	cfg.Worker.WorkerCount = 1
	return NewWorker(cfg, nopLogger{}, jobRepo, fakeQueueRepo{}, store, analyzer, renderer)
}
