package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ElementType string

const (
	ElementTypeVideo ElementType = "video"
	ElementTypeImage ElementType = "image"
	ElementTypeText  ElementType = "text"
)

type ElementStyle struct {
	FontSize   int    `json:"font_size,omitempty"`
	Fill       string `json:"fill,omitempty"`
	Align      string `json:"align,omitempty"`
	FontWeight string `json:"font_weight,omitempty"`
}

type RenderElement struct {
	Type     ElementType   `json:"type"`
	Name     string        `json:"name"`
	Src      string        `json:"src,omitempty"`
	Text     string        `json:"text,omitempty"`
	Start    float64       `json:"start"`
	Duration float64       `json:"duration"`
	Position string        `json:"position,omitempty"`
	Width    int           `json:"width,omitempty"`
	Height   int           `json:"height,omitempty"`
	Style    *ElementStyle `json:"style,omitempty"`
}

// RenderDocument is the parametrized script sent to the render engine.
// Stored documents are reference data; use Clone before mutating.
type RenderDocument struct {
	ID       string          `json:"id"`
	Format   string          `json:"format"`
	Duration float64         `json:"duration"`
	Elements []RenderElement `json:"elements"`
}

func (d RenderDocument) Clone() RenderDocument {
	out := d
	out.Elements = make([]RenderElement, len(d.Elements))
	for i, el := range d.Elements {
		copied := el
		if el.Style != nil {
			style := *el.Style
			copied.Style = &style
		}
		out.Elements[i] = copied
	}
	return out
}

func (d RenderDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *RenderDocument) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for render document", src)
	}
	return json.Unmarshal(data, d)
}

type TextSlot struct {
	Key         string `json:"key"`
	SceneIndex  int    `json:"scene_index"`
	Description string `json:"description"`
	DefaultText string `json:"default_text"`
	MaxLength   int    `json:"max_length"`
}

type LogoSlot struct {
	Key         string `json:"key"`
	SceneIndex  int    `json:"scene_index"`
	Description string `json:"description"`
}

type MediaSlot struct {
	Key         string `json:"key"`
	SceneIndex  int    `json:"scene_index"`
	Description string `json:"description"`
}

// SlotManifest lists the user-fillable placeholders of a template. Every
// slot key matches exactly one element name in the render document.
type SlotManifest struct {
	TextSlots  []TextSlot  `json:"text_slots"`
	LogoSlots  []LogoSlot  `json:"logo_slots"`
	MediaSlots []MediaSlot `json:"media_slots"`
}

func (s SlotManifest) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SlotManifest) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for slot manifest", src)
	}
	return json.Unmarshal(data, s)
}

type Template struct {
	TemplateID   uuid.UUID      `json:"template_id" db:"template_id" validate:"omitempty"`
	VideoJobID   uuid.UUID      `json:"video_job_id" db:"video_job_id" validate:"required"`
	Name         string         `json:"name" db:"name" validate:"required,lte=512"`
	Engine       string         `json:"engine" db:"engine" validate:"required,lte=50"`
	RenderScript RenderDocument `json:"render_script" db:"render_script" validate:"required"`
	Slots        SlotManifest   `json:"slots" db:"slots" validate:"required"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at" validate:"omitempty"`
}
