package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/template"
)

// processIngest runs pipeline stage 1: download the source video into
// object storage, analyze it and synthesize the creative template.
// PENDING_ANALYSIS -> STRUCTURE_BUILT, or FAILED with the stage error.
func (w *Worker) processIngest(ctx context.Context, msg *models.QueueMessage) error {
	w.logger.Infof("Starting ingest for job %s", msg.JobID)

	job, err := w.jobRepo.GetJobByID(ctx, msg.JobID)
	if err != nil {
		return err
	}

	// Delivery is at-least-once: a redelivered message must not build a
	// second template, so anything past the entry state is skipped.
	if job.Status != models.JobStatusPendingAnalysis {
		w.logger.Warnf("Skipping ingest for job %s in status %s", job.JobID, job.Status)
		return nil
	}

	sourceVideoURI, err := w.storage.StoreFromURL(ctx, job.SourceURL)
	if err != nil {
		err = fmt.Errorf("failed to store source video: %v", err)
		w.failJob(ctx, job, err)
		return err
	}
	if err = w.jobRepo.UpdateSourceVideoURI(ctx, job.JobID, sourceVideoURI); err != nil {
		w.failJob(ctx, job, err)
		return err
	}

	w.logger.Infof("Analyzing video %s for job %s", sourceVideoURI, job.JobID)
	analysisResult, err := w.analyzer.Analyze(ctx, sourceVideoURI)
	if err != nil {
		err = fmt.Errorf("video analysis failed: %v", err)
		w.failJob(ctx, job, err)
		return err
	}

	doc, slots := template.BuildFromAnalysis(analysisResult, job.SourceURL)
	tmpl := &models.Template{
		TemplateID:   uuid.New(),
		VideoJobID:   job.JobID,
		Name:         template.TemplateName(job.SourceURL),
		Engine:       "creatomate",
		RenderScript: doc,
		Slots:        slots,
	}
	tmpl, err = w.jobRepo.CreateTemplate(ctx, tmpl)
	if err != nil {
		w.failJob(ctx, job, err)
		return err
	}

	if err = w.jobRepo.AttachTemplate(ctx, job.JobID, tmpl.TemplateID, analysisResult); err != nil {
		w.failJob(ctx, job, err)
		return err
	}

	w.logger.Infof("Ingest completed for job %s, template %s", job.JobID, tmpl.TemplateID)
	return nil
}
