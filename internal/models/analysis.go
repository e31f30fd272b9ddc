package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Scene struct {
	StartTime float64  `json:"start_time"`
	EndTime   float64  `json:"end_time"`
	Labels    []string `json:"labels"`
}

type TextAnnotation struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// AnalysisResult is the parsed output of the video-intelligence provider.
// Duration may be zero when the provider detected no scenes; template
// synthesis applies its own fallback.
type AnalysisResult struct {
	Duration        float64          `json:"duration"`
	Scenes          []Scene          `json:"scenes"`
	TextAnnotations []TextAnnotation `json:"text_annotations"`
	Labels          []string         `json:"labels"`
}

func (a AnalysisResult) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnalysisResult) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for analysis result", src)
	}
	return json.Unmarshal(data, a)
}
