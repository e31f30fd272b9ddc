package repository

const (
	createJobQuery = `INSERT INTO video_jobs (job_id, user_id, source_url, status)
					VALUES ($1, $2, $3, $4) RETURNING *`
	getJobByIDQuery = `SELECT job_id, user_id, source_url, source_video_uri, status, template_id, analysis_metadata,
					output_urls, error_message, created_at, updated_at FROM video_jobs WHERE job_id = $1`
	updateStatusQuery = `UPDATE video_jobs SET status = $2, updated_at = now() WHERE job_id = $1`
	updateSourceURIQuery = `UPDATE video_jobs SET source_video_uri = $2, updated_at = now() WHERE job_id = $1`
	attachTemplateQuery = `UPDATE video_jobs SET template_id = $2, analysis_metadata = $3, status = $4, updated_at = now()
					WHERE job_id = $1`
	markReadyQuery = `UPDATE video_jobs SET output_urls = $2, status = $3, updated_at = now() WHERE job_id = $1`
	markFailedQuery = `UPDATE video_jobs SET error_message = $2, status = $3, updated_at = now() WHERE job_id = $1`

	createTemplateQuery = `INSERT INTO templates (template_id, video_job_id, name, engine, render_script, slots)
					VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`
	getTemplateByJobIDQuery = `SELECT template_id, video_job_id, name, engine, render_script, slots, created_at
					FROM templates WHERE video_job_id = $1`

	upsertInputsQuery = `INSERT INTO client_inputs (video_job_id, logo_uri, texts, colors, options)
					VALUES ($1, $2, $3, $4, $5)
					ON CONFLICT (video_job_id) DO UPDATE
					SET logo_uri = EXCLUDED.logo_uri,
					    texts = EXCLUDED.texts,
					    colors = EXCLUDED.colors,
					    options = EXCLUDED.options,
					    updated_at = now()`
	getInputsByJobIDQuery = `SELECT video_job_id, logo_uri, texts, colors, options, updated_at
					FROM client_inputs WHERE video_job_id = $1`
)
