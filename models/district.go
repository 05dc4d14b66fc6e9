package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// District mirrors the district collection owned by the external
// data-ingestion pipeline. This service only reads it.
type District struct {
	ID         string `gorm:"primaryKey" json:"id"` // slug, e.g. "uttar-pradesh-lucknow"
	Name       string `gorm:"index;not null" json:"name"`
	State      string `gorm:"index;not null" json:"state"`
	Population int64  `gorm:"not null;default:0" json:"population"`

	// Environmental indicators are optional — ingestion does not yet carry
	// live feeds for every district.
	AvgAQI            *float64 `json:"avgAQI,omitempty"`
	SoilQuality       *float64 `json:"soilQuality,omitempty"` // 0-100
	DisasterFrequency *int     `json:"disasterFrequency,omitempty"`

	ForestCoverKm2 float64 `gorm:"default:0" json:"forestCoverKm2"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Defaults for districts without recent environmental data.
const (
	DefaultAQI         = 100.0 // moderate
	DefaultSoilQuality = 65.0  // fair
	DefaultDisasters   = 2.0   // low-moderate
)

// DistrictIndicators is a district's environmental profile after defaulting.
type DistrictIndicators struct {
	AQI               float64
	SoilQuality       float64
	DisasterFrequency float64
}

// NormalizeDistrict applies the defaulting rules for missing indicators in one
// place, so fallbacks are not scattered through the aggregation code.
func NormalizeDistrict(d *District) DistrictIndicators {
	ind := DistrictIndicators{
		AQI:               DefaultAQI,
		SoilQuality:       DefaultSoilQuality,
		DisasterFrequency: DefaultDisasters,
	}
	if d.AvgAQI != nil && *d.AvgAQI > 0 {
		ind.AQI = *d.AvgAQI
	}
	if d.SoilQuality != nil && *d.SoilQuality > 0 {
		ind.SoilQuality = *d.SoilQuality
	}
	if d.DisasterFrequency != nil && *d.DisasterFrequency >= 0 {
		ind.DisasterFrequency = float64(*d.DisasterFrequency)
	}
	return ind
}

var titleCaser = cases.Title(language.English)

// Connectives stay lowercase mid-name: "Jammu and Kashmir", not
// "Jammu And Kashmir".
var lowercaseParticles = map[string]bool{
	"and": true,
	"of":  true,
}

// DisplayName normalizes raw ingested names ("lucknow", "LUCKNOW",
// "jammu-and-kashmir") for presentation.
func DisplayName(raw string) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "-", " "))
	if raw == "" {
		return raw
	}
	words := strings.Fields(strings.ToLower(raw))
	for i, w := range words {
		if i > 0 && lowercaseParticles[w] {
			continue
		}
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}
