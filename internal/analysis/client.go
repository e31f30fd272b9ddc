package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/models"
)

var annotationFeatures = []string{
	"SHOT_CHANGE_DETECTION",
	"TEXT_DETECTION",
	"LABEL_DETECTION",
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(cfg *config.Config) Provider {
	timeout := time.Duration(cfg.Analysis.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Minute
	}
	return &httpClient{
		baseURL: cfg.Analysis.Endpoint,
		client:  &http.Client{Timeout: timeout},
	}
}

type annotateRequest struct {
	InputURI string   `json:"input_uri"`
	Features []string `json:"features"`
}

type timeOffset struct {
	Seconds int64 `json:"seconds"`
	Nanos   int64 `json:"nanos"`
}

func (t timeOffset) seconds() float64 {
	return float64(t.Seconds) + float64(t.Nanos)/1e9
}

type shotAnnotation struct {
	StartTimeOffset timeOffset `json:"start_time_offset"`
	EndTimeOffset   timeOffset `json:"end_time_offset"`
}

type textSegment struct {
	Segment struct {
		StartTimeOffset timeOffset `json:"start_time_offset"`
		EndTimeOffset   timeOffset `json:"end_time_offset"`
	} `json:"segment"`
}

type textAnnotation struct {
	Text     string        `json:"text"`
	Segments []textSegment `json:"segments"`
}

type labelAnnotation struct {
	Entity struct {
		Description string `json:"description"`
	} `json:"entity"`
}

type annotationResult struct {
	ShotAnnotations         []shotAnnotation  `json:"shot_annotations"`
	TextAnnotations         []textAnnotation  `json:"text_annotations"`
	SegmentLabelAnnotations []labelAnnotation `json:"segment_label_annotations"`
}

type annotateResponse struct {
	AnnotationResults []annotationResult `json:"annotation_results"`
}

func (c *httpClient) Analyze(ctx context.Context, videoURI string) (*models.AnalysisResult, error) {
	body, err := json.Marshal(annotateRequest{
		InputURI: videoURI,
		Features: annotationFeatures,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal annotate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/videos:annotate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build annotate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, fmt.Errorf("analysis provider returned http %d: %s", res.StatusCode, msg)
	}

	var resp annotateResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	return parseAnnotations(&resp), nil
}

// parseAnnotations flattens the provider's annotation results. The total
// duration is the end of the last detected shot; zero when no shots were
// found (template synthesis applies its own fallback).
func parseAnnotations(resp *annotateResponse) *models.AnalysisResult {
	result := &models.AnalysisResult{
		Scenes:          []models.Scene{},
		TextAnnotations: []models.TextAnnotation{},
		Labels:          []string{},
	}
	if len(resp.AnnotationResults) == 0 {
		return result
	}
	annotations := resp.AnnotationResults[0]

	for _, shot := range annotations.ShotAnnotations {
		result.Scenes = append(result.Scenes, models.Scene{
			StartTime: shot.StartTimeOffset.seconds(),
			EndTime:   shot.EndTimeOffset.seconds(),
			Labels:    []string{},
		})
	}

	for _, annotation := range annotations.TextAnnotations {
		for _, segment := range annotation.Segments {
			result.TextAnnotations = append(result.TextAnnotations, models.TextAnnotation{
				Text:      annotation.Text,
				StartTime: segment.Segment.StartTimeOffset.seconds(),
				EndTime:   segment.Segment.EndTimeOffset.seconds(),
			})
		}
	}

	for _, label := range annotations.SegmentLabelAnnotations {
		if label.Entity.Description != "" {
			result.Labels = append(result.Labels, label.Entity.Description)
		}
	}

	if len(result.Scenes) > 0 {
		result.Duration = result.Scenes[len(result.Scenes)-1].EndTime
	}
	return result
}
