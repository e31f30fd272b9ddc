package worker

import (
	"context"
	"sync"
	"time"

	"github.com/promoforge/adgen-backend/internal/analysis"
	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/render"
	"github.com/promoforge/adgen-backend/internal/storage"
	"github.com/promoforge/adgen-backend/internal/videojobs"
	"github.com/promoforge/adgen-backend/pkg/logger"
	"github.com/promoforge/adgen-backend/pkg/utils"
)

const cpuBackoff = 10 * time.Second

type stageHandler func(ctx context.Context, msg *models.QueueMessage) error

// Worker runs the two pipeline stages as independent consumer pools on
// their own queue channels. All collaborators are constructor-injected so
// tests can substitute fakes.
type Worker struct {
	cfg       *config.Config
	logger    logger.Logger
	jobRepo   videojobs.Repository
	queueRepo videojobs.QueueRepository
	storage   storage.Storage
	analyzer  analysis.Provider
	renderer  render.Provider
	wg        sync.WaitGroup
}

func NewWorker(
	cfg *config.Config,
	log logger.Logger,
	jobRepo videojobs.Repository,
	queueRepo videojobs.QueueRepository,
	store storage.Storage,
	analyzer analysis.Provider,
	renderer render.Provider,
) *Worker {
	return &Worker{
		cfg:       cfg,
		logger:    log,
		jobRepo:   jobRepo,
		queueRepo: queueRepo,
		storage:   store,
		analyzer:  analyzer,
		renderer:  renderer,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.logger.Infof("Starting worker pools, %d consumers per channel", w.cfg.Worker.WorkerCount)
	for i := 0; i < w.cfg.Worker.WorkerCount; i++ {
		w.wg.Add(2)
		go w.consume(ctx, videojobs.IngestQueueKey, w.processIngest)
		go w.consume(ctx, videojobs.RenderQueueKey, w.processRender)
	}
}

func (w *Worker) Wait() {
	w.wg.Wait()
}

// consume pulls messages one at a time and runs the stage handler to
// completion before taking the next. Handler errors are already recorded
// on the job; they are logged here and the consumer keeps going.
func (w *Worker) consume(ctx context.Context, channel string, handler stageHandler) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if canAccept, usage := utils.CheckCPUUsage(w.cfg.Worker.MaxCPUUsage); !canAccept {
			w.logger.Infof("CPU usage is high on %s consumer: %f", channel, usage)
			select {
			case <-ctx.Done():
				return
			case <-time.After(cpuBackoff):
			}
			continue
		}

		msg, err := w.queueRepo.DequeueJob(ctx, channel)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Errorf("error dequeuing from %s: %v", channel, err)
			continue
		}

		if err := handler(ctx, msg); err != nil {
			w.logger.Errorf("job %s failed on %s: %v", msg.JobID, channel, err)
		}
	}
}

// failJob records the stage error on the job unless it already reached a
// terminal state. Partial progress from the failed stage is never
// persisted by the callers.
func (w *Worker) failJob(ctx context.Context, job *models.VideoJob, stageErr error) {
	if job.Status.IsTerminal() {
		return
	}
	if err := w.jobRepo.MarkFailed(ctx, job.JobID, stageErr.Error()); err != nil {
		w.logger.Errorf("failed to mark job %s failed: %v", job.JobID, err)
	}
}
