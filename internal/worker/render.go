package worker

import (
	"context"
	"fmt"

	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/template"
)

var defaultFormats = []string{"9:16"}

// processRender runs pipeline stage 2: map the client inputs onto the
// template and render one output per requested format, strictly in list
// order. All-or-nothing: the first failed format discards every URL
// collected so far and fails the job.
func (w *Worker) processRender(ctx context.Context, msg *models.QueueMessage) error {
	w.logger.Infof("Starting render for job %s", msg.JobID)

	detail, err := w.jobRepo.GetJobDetail(ctx, msg.JobID)
	if err != nil {
		return err
	}
	job := detail.Job

	if detail.Template == nil || detail.Inputs == nil {
		err = fmt.Errorf("job %s missing template or inputs", job.JobID)
		w.failJob(ctx, job, err)
		return err
	}

	// Entry-state guard: a redelivered message must not trigger a second
	// round of renders once the job left RENDERING.
	if job.Status != models.JobStatusRendering {
		w.logger.Warnf("Skipping render for job %s in status %s", job.JobID, job.Status)
		return nil
	}

	mods := template.BuildModifications(
		detail.Template.Slots,
		detail.Inputs.Texts,
		detail.Inputs.LogoURI,
		detail.Inputs.Colors,
	)
	w.logger.Infof("Built %d modifications for job %s", len(mods), job.JobID)

	formats := detail.Inputs.Options.Formats
	if len(formats) == 0 {
		formats = defaultFormats
	}

	outputs := models.OutputURLs{}
	for _, format := range formats {
		w.logger.Infof("Rendering format %s for job %s", format, job.JobID)
		doc := template.ApplyModifications(detail.Template.RenderScript, mods, format)
		outputURL, err := w.renderer.Render(ctx, doc)
		if err != nil {
			err = fmt.Errorf("render failed for format %s: %v", format, err)
			w.failJob(ctx, job, err)
			return err
		}
		outputs[format] = outputURL
	}

	if err = w.jobRepo.MarkReady(ctx, job.JobID, outputs); err != nil {
		w.failJob(ctx, job, err)
		return err
	}

	w.logger.Infof("Render completed for job %s with %d outputs", job.JobID, len(outputs))
	return nil
}
