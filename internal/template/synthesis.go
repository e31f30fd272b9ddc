package template

import (
	"fmt"

	"github.com/promoforge/adgen-backend/internal/models"
)

const (
	fallbackDuration = 10.0

	defaultBackgroundSrc = "https://cdn.promoforge.io/default-bg.mp4"
	placeholderLogoSrc   = "https://cdn.promoforge.io/placeholder-logo.png"

	hookDefaultText    = "Default hook text"
	benefitDefaultText = "Default benefit text"
	ctaDefaultText     = "Default CTA"

	hookMaxLength    = 80
	benefitMaxLength = 120
	ctaMaxLength     = 50
)

// BuildFromAnalysis converts a raw analysis result into a three-beat
// parametrized render document plus the slot manifest describing its
// fillable elements. Deterministic: the output depends only on the
// analysis duration and the source URL used for naming.
//
// The text beats partition [0, D): hook [0, 0.3D), benefit [0.3D, 0.7D),
// cta [0.7D, D).
func BuildFromAnalysis(analysis *models.AnalysisResult, sourceURL string) (models.RenderDocument, models.SlotManifest) {
	totalDuration := fallbackDuration
	if analysis != nil && analysis.Duration > 0 {
		totalDuration = analysis.Duration
	}

	doc := models.RenderDocument{
		ID:       "template-auto",
		Format:   "9:16",
		Duration: totalDuration,
		Elements: []models.RenderElement{
			{
				Type:     models.ElementTypeVideo,
				Name:     "background",
				Src:      defaultBackgroundSrc,
				Start:    0,
				Duration: totalDuration,
			},
			{
				Type:     models.ElementTypeImage,
				Name:     "main_logo",
				Src:      placeholderLogoSrc,
				Position: "top-right",
				Start:    0,
				Duration: totalDuration,
				Width:    80,
				Height:   80,
			},
			{
				Type:     models.ElementTypeText,
				Name:     "hook",
				Text:     hookDefaultText,
				Start:    0,
				Duration: totalDuration * 0.3,
				Style: &models.ElementStyle{
					FontSize:   64,
					Fill:       "#ffffff",
					Align:      "center",
					FontWeight: "bold",
				},
			},
			{
				Type:     models.ElementTypeText,
				Name:     "benefit",
				Text:     benefitDefaultText,
				Start:    totalDuration * 0.3,
				Duration: totalDuration * 0.4,
				Style: &models.ElementStyle{
					FontSize: 52,
					Fill:     "#ffffff",
					Align:    "center",
				},
			},
			{
				Type:     models.ElementTypeText,
				Name:     "cta",
				Text:     ctaDefaultText,
				Start:    totalDuration * 0.7,
				Duration: totalDuration * 0.3,
				Style: &models.ElementStyle{
					FontSize:   56,
					Fill:       "#FF006E",
					Align:      "center",
					FontWeight: "bold",
				},
			},
		},
	}

	slots := models.SlotManifest{
		TextSlots: []models.TextSlot{
			{
				Key:         "hook",
				SceneIndex:  0,
				Description: "Main hook (opening line)",
				DefaultText: hookDefaultText,
				MaxLength:   hookMaxLength,
			},
			{
				Key:         "benefit",
				SceneIndex:  1,
				Description: "Key benefit (value proposition)",
				DefaultText: benefitDefaultText,
				MaxLength:   benefitMaxLength,
			},
			{
				Key:         "cta",
				SceneIndex:  2,
				Description: "Call to action",
				DefaultText: ctaDefaultText,
				MaxLength:   ctaMaxLength,
			},
		},
		LogoSlots: []models.LogoSlot{
			{
				Key:         "main_logo",
				SceneIndex:  0,
				Description: "Primary brand logo",
			},
		},
		MediaSlots: []models.MediaSlot{},
	}

	return doc, slots
}

func TemplateName(sourceURL string) string {
	return fmt.Sprintf("Auto Template - %s", sourceURL)
}
