package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(StringMap{})
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for string map", src)
	}
	return json.Unmarshal(data, m)
}

// RenderOptions carries the free-form render settings supplied by the
// client, most importantly the requested output formats.
type RenderOptions struct {
	Formats []string `json:"formats,omitempty"`
}

func (o RenderOptions) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *RenderOptions) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for render options", src)
	}
	return json.Unmarshal(data, o)
}

// ClientInputs holds the creative assets for one job. Upsert semantics:
// at most one row per job.
type ClientInputs struct {
	VideoJobID uuid.UUID     `json:"video_job_id" db:"video_job_id" validate:"required"`
	LogoURI    *string       `json:"logo_uri" db:"logo_uri" validate:"omitempty"`
	Texts      StringMap     `json:"texts" db:"texts" validate:"omitempty"`
	Colors     StringMap     `json:"colors" db:"colors" validate:"omitempty"`
	Options    RenderOptions `json:"options" db:"options" validate:"omitempty"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type SubmitInputsInput struct {
	LogoURI *string       `json:"logo_uri" validate:"omitempty,uri"`
	Texts   StringMap     `json:"texts" validate:"omitempty"`
	Colors  StringMap     `json:"colors" validate:"omitempty"`
	Options RenderOptions `json:"options" validate:"omitempty"`
}

// JobDetail is the joined read view returned by the fetch-job operation.
// Template and Inputs are nil until the corresponding stage produced them.
type JobDetail struct {
	Job      *VideoJob     `json:"job"`
	Template *Template     `json:"template,omitempty"`
	Inputs   *ClientInputs `json:"inputs,omitempty"`
}
