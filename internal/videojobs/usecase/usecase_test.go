package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/pkg/apperrors"
	"github.com/stretchr/testify/require"
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
	r.templates[template.VideoJobID] = template
	return template, nil
}

func (r *fakeJobRepo) UpsertInputs(ctx context.Context, inputs *models.ClientInputs) error {
	r.inputs[inputs.VideoJobID] = inputs
	return nil
}

type fakeQueueRepo struct {
	enqueued map[string][]*models.QueueMessage
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{enqueued: map[string][]*models.QueueMessage{}}
}

func (q *fakeQueueRepo) EnqueueJob(ctx context.Context, key string, msg *models.QueueMessage) error {
	q.enqueued[key] = append(q.enqueued[key], msg)
	return nil
}

func (q *fakeQueueRepo) DequeueJob(ctx context.Context, key string) (*models.QueueMessage, error) {
	msgs := q.enqueued[key]
	if len(msgs) == 0 {
		return nil, context.Canceled
	}
	msg := msgs[0]
	q.enqueued[key] = msgs[1:]
	return msg, nil
}

func newTestUseCase() (*fakeJobRepo, *fakeQueueRepo, *jobUC) {
	jobRepo := newFakeJobRepo()
	queueRepo := newFakeQueueRepo()
	uc := NewJobUseCase(&config.Config{}, jobRepo, queueRepo, nopLogger{}).(*jobUC)
	return jobRepo, queueRepo, uc
}

func seedJob(repo *fakeJobRepo, status models.JobStatus) *models.VideoJob {
	job := &models.VideoJob{
		JobID:     uuid.New(),
		UserID:    "user-1",
		SourceURL: "https://example.com/product",
		Status:    status,
	}
	repo.jobs[job.JobID] = job
	return job
}

func TestCreateJobEnqueuesIngest(t *testing.T) {
	t.Parallel()

	jobRepo, queueRepo, uc := newTestUseCase()

	job, err := uc.CreateJob(context.Background(), &models.CreateJobInput{
		UserID:    "user-1",
		SourceURL: "https://example.com/product",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, job.JobID)
	require.Equal(t, models.JobStatusPendingAnalysis, job.Status)

	require.Contains(t, jobRepo.jobs, job.JobID)
	require.Len(t, queueRepo.enqueued["ingest-and-analyze"], 1)
	require.Equal(t, job.JobID, queueRepo.enqueued["ingest-and-analyze"][0].JobID)
}

func TestCreateJobRejectsInvalidURL(t *testing.T) {
	t.Parallel()

	_, queueRepo, uc := newTestUseCase()

	_, err := uc.CreateJob(context.Background(), &models.CreateJobInput{
		UserID:    "user-1",
		SourceURL: "not a url",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	require.Empty(t, queueRepo.enqueued)
}

func TestSubmitInputsRequiresTemplate(t *testing.T) {
	t.Parallel()

	jobRepo, _, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusPendingAnalysis)

	_, err := uc.SubmitInputs(context.Background(), job.JobID, &models.SubmitInputsInput{
		Texts: models.StringMap{"hook": "Hi"},
	})
	require.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	require.Equal(t, models.JobStatusPendingAnalysis, jobRepo.jobs[job.JobID].Status)
}

func TestSubmitInputsMovesJobToReadyToRender(t *testing.T) {
	t.Parallel()

	jobRepo, _, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusStructureBuilt)
	templateID := uuid.New()
	jobRepo.jobs[job.JobID].TemplateID = &templateID

	updated, err := uc.SubmitInputs(context.Background(), job.JobID, &models.SubmitInputsInput{
		Texts:  models.StringMap{"hook": "Hi"},
		Colors: models.StringMap{"primary": "#FF006E"},
	})
	require.NoError(t, err)
	require.Equal(t, models.JobStatusReadyToRender, updated.Status)
	require.Equal(t, models.JobStatusReadyToRender, jobRepo.jobs[job.JobID].Status)

	stored := jobRepo.inputs[job.JobID]
	require.NotNil(t, stored)
	require.Equal(t, "Hi", stored.Texts["hook"])
}

func TestSubmitInputsResubmissionUpdatesInputs(t *testing.T) {
	t.Parallel()

	jobRepo, _, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusStructureBuilt)
	templateID := uuid.New()
	jobRepo.jobs[job.JobID].TemplateID = &templateID

	_, err := uc.SubmitInputs(context.Background(), job.JobID, &models.SubmitInputsInput{
		Texts: models.StringMap{"hook": "First"},
	})
	require.NoError(t, err)
	require.Equal(t, "First", jobRepo.inputs[job.JobID].Texts["hook"])

	// A job waiting in READY_TO_RENDER accepts revised inputs; the upsert
	// replaces the stored row and the status stays put.
	updated, err := uc.SubmitInputs(context.Background(), job.JobID, &models.SubmitInputsInput{
		Texts: models.StringMap{"hook": "Second"},
	})
	require.NoError(t, err)
	require.Equal(t, models.JobStatusReadyToRender, updated.Status)
	require.Equal(t, "Second", jobRepo.inputs[job.JobID].Texts["hook"])
}

func TestSubmitInputsRejectedOnceRendering(t *testing.T) {
	t.Parallel()

	jobRepo, _, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusRendering)
	templateID := uuid.New()
	jobRepo.jobs[job.JobID].TemplateID = &templateID

	_, err := uc.SubmitInputs(context.Background(), job.JobID, &models.SubmitInputsInput{
		Texts: models.StringMap{"hook": "Too late"},
	})
	require.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	require.Equal(t, models.JobStatusRendering, jobRepo.jobs[job.JobID].Status)
}

func TestSubmitInputsUnknownJob(t *testing.T) {
	t.Parallel()

	_, _, uc := newTestUseCase()

	_, err := uc.SubmitInputs(context.Background(), uuid.New(), &models.SubmitInputsInput{})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTriggerRenderEnqueuesRenderStage(t *testing.T) {
	t.Parallel()

	jobRepo, queueRepo, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusReadyToRender)
	jobRepo.templates[job.JobID] = &models.Template{VideoJobID: job.JobID}
	jobRepo.inputs[job.JobID] = &models.ClientInputs{VideoJobID: job.JobID}

	updated, err := uc.TriggerRender(context.Background(), job.JobID)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusRendering, updated.Status)
	require.Equal(t, models.JobStatusRendering, jobRepo.jobs[job.JobID].Status)

	require.Len(t, queueRepo.enqueued["render-video"], 1)
	require.Equal(t, job.JobID, queueRepo.enqueued["render-video"][0].JobID)
}

func TestTriggerRenderRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	jobRepo, queueRepo, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusReadyToRender)
	jobRepo.templates[job.JobID] = &models.Template{VideoJobID: job.JobID}

	_, err := uc.TriggerRender(context.Background(), job.JobID)
	require.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	require.Equal(t, models.JobStatusReadyToRender, jobRepo.jobs[job.JobID].Status)
	require.Empty(t, queueRepo.enqueued)
}

func TestTriggerRenderRejectsWrongStatus(t *testing.T) {
	t.Parallel()

	jobRepo, queueRepo, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusRendering)
	jobRepo.templates[job.JobID] = &models.Template{VideoJobID: job.JobID}
	jobRepo.inputs[job.JobID] = &models.ClientInputs{VideoJobID: job.JobID}

	_, err := uc.TriggerRender(context.Background(), job.JobID)
	require.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	require.Empty(t, queueRepo.enqueued)
}

func TestGetResultReturnsOutputs(t *testing.T) {
	t.Parallel()

	jobRepo, _, uc := newTestUseCase()
	job := seedJob(jobRepo, models.JobStatusReady)
	jobRepo.jobs[job.JobID].OutputURLs = models.OutputURLs{"9:16": "https://cdn.example.com/out.mp4"}

	got, err := uc.GetResult(context.Background(), job.JobID)
	require.NoError(t, err)
	require.Equal(t, models.JobStatusReady, got.Status)
	require.Equal(t, "https://cdn.example.com/out.mp4", got.OutputURLs["9:16"])
}
