package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPendingAnalysis JobStatus = "PENDING_ANALYSIS"
	JobStatusStructureBuilt  JobStatus = "STRUCTURE_BUILT"
	JobStatusReadyToRender   JobStatus = "READY_TO_RENDER"
	JobStatusRendering       JobStatus = "RENDERING"
	JobStatusReady           JobStatus = "READY"
	JobStatusFailed          JobStatus = "FAILED"
)

// jobTransitions is the authoritative transition table. FAILED is reachable
// from every non-terminal state; READY and FAILED have no outgoing edges.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPendingAnalysis: {JobStatusStructureBuilt, JobStatusFailed},
	JobStatusStructureBuilt:  {JobStatusReadyToRender, JobStatusFailed},
	JobStatusReadyToRender:   {JobStatusRendering, JobStatusFailed},
	JobStatusRendering:       {JobStatusReady, JobStatusFailed},
	JobStatusReady:           {},
	JobStatusFailed:          {},
}

func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s JobStatus) IsTerminal() bool {
	return len(jobTransitions[s]) == 0
}

type OutputURLs map[string]string

func (o OutputURLs) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

func (o *OutputURLs) Scan(src interface{}) error {
	if src == nil {
		*o = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for output urls", src)
	}
	return json.Unmarshal(data, o)
}

type VideoJob struct {
	JobID            uuid.UUID       `json:"job_id" db:"job_id" validate:"omitempty"`
	UserID           string          `json:"user_id" db:"user_id" validate:"required,lte=255"`
	SourceURL        string          `json:"source_url" db:"source_url" validate:"required,url"`
	SourceVideoURI   *string         `json:"source_video_uri" db:"source_video_uri" validate:"omitempty"`
	Status           JobStatus       `json:"status" db:"status" validate:"omitempty"`
	TemplateID       *uuid.UUID      `json:"template_id" db:"template_id" validate:"omitempty"`
	AnalysisMetadata *AnalysisResult `json:"analysis_metadata" db:"analysis_metadata" validate:"omitempty"`
	OutputURLs       OutputURLs      `json:"output_urls" db:"output_urls" validate:"omitempty"`
	ErrorMessage     *string         `json:"error_message" db:"error_message" validate:"omitempty"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type CreateJobInput struct {
	UserID    string `json:"user_id" validate:"omitempty,lte=255"`
	SourceURL string `json:"source_url" validate:"required,url"`
}

// QueueMessage is the payload carried on both pipeline channels.
type QueueMessage struct {
	JobID uuid.UUID `json:"job_id"`
}
