package template

import (
	"github.com/promoforge/adgen-backend/internal/models"
)

const (
	textProperty = ".text"
	srcProperty  = ".src"

	primaryColorRole = "primary"
	// ctaFillField is a fixed special case: the primary brand color always
	// lands on the cta element's fill, independent of the slot manifest.
	ctaFillField = "cta.style.fill"
)

// Modifications is a flat set of field overrides keyed
// "<elementName>.<property>", applied to a render document before dispatch.
type Modifications map[string]string

// BuildModifications maps client inputs onto the slot manifest. A slot with
// no corresponding input produces no entry, leaving the template default in
// place. Every logo slot receives the same logo reference.
func BuildModifications(slots models.SlotManifest, texts map[string]string, logoURI *string, colors map[string]string) Modifications {
	mods := Modifications{}

	for _, slot := range slots.TextSlots {
		if text, ok := texts[slot.Key]; ok && text != "" {
			mods[slot.Key+textProperty] = text
		}
	}

	if logoURI != nil && *logoURI != "" {
		for _, slot := range slots.LogoSlots {
			mods[slot.Key+srcProperty] = *logoURI
		}
	}

	if primary, ok := colors[primaryColorRole]; ok && primary != "" {
		mods[ctaFillField] = primary
	}

	return mods
}

// ApplyModifications merges the overrides onto a deep copy of the document
// and stamps the requested output format. The input document is never
// mutated; stored templates are reference data.
func ApplyModifications(doc models.RenderDocument, mods Modifications, format string) models.RenderDocument {
	out := doc.Clone()
	out.Format = format

	for i := range out.Elements {
		el := &out.Elements[i]
		if text, ok := mods[el.Name+textProperty]; ok {
			el.Text = text
		}
		if src, ok := mods[el.Name+srcProperty]; ok {
			el.Src = src
		}
		if fill, ok := mods[el.Name+".style.fill"]; ok && el.Style != nil {
			el.Style.Fill = fill
		}
	}

	return out
}

// ElementNames returns the names of all document elements, used to sanity
// check that slot keys resolve to real elements.
func ElementNames(doc models.RenderDocument) []string {
	names := make([]string, 0, len(doc.Elements))
	for _, el := range doc.Elements {
		names = append(names, el.Name)
	}
	return names
}
