package services

import "math"

// Oxygen model constants, shared with the ingestion pipeline that precomputes
// per-contribution lifetime O2.
const (
	HumanO2LitersPerDay = 550.0
	DaysPerYear         = 365.0
	LitersToKgO2        = 1.429 / 1000
	TreeO2KgPerYear     = 110.0
	TreeLifespanYears   = 50.0
)

// AQIPenaltyFactor inflates oxygen demand as air quality degrades. Boundary
// values belong to the lower (better) bucket.
func AQIPenaltyFactor(aqi float64) float64 {
	switch {
	case aqi <= 50:
		return 1.0
	case aqi <= 100:
		return 1.05
	case aqi <= 150:
		return 1.15
	case aqi <= 200:
		return 1.30
	case aqi <= 300:
		return 1.50
	default:
		return 1.75
	}
}

// SoilDegradationFactor inflates demand as soil quality drops: poor soil
// stresses the local ecosystem, modeled as increased effective demand.
func SoilDegradationFactor(soilQuality float64) float64 {
	switch {
	case soilQuality >= 80:
		return 1.0
	case soilQuality >= 60:
		return 1.1
	case soilQuality >= 40:
		return 1.3
	default:
		return 1.6
	}
}

// DisasterLossFactor inflates demand with local disaster frequency.
func DisasterLossFactor(disasterFreq float64) float64 {
	switch {
	case disasterFreq <= 0:
		return 1.0
	case disasterFreq <= 2:
		return 1.05
	case disasterFreq <= 5:
		return 1.15
	case disasterFreq <= 10:
		return 1.30
	default:
		return 1.5
	}
}

// SoilTreeAdjustment scales tree O2 output linearly with soil quality, never
// below 70% of nominal.
func SoilTreeAdjustment(soilQuality float64) float64 {
	return math.Max(0.7, soilQuality/100)
}

// O2DemandKgPerYear estimates the annual oxygen mass a population consumes,
// inflated by local environmental stress.
func O2DemandKgPerYear(population int64, aqi, soilQuality, disasterFreq float64) float64 {
	if population <= 0 {
		return 0
	}
	base := float64(population) * HumanO2LitersPerDay * DaysPerYear * LitersToKgO2
	return base * AQIPenaltyFactor(aqi) * SoilDegradationFactor(soilQuality) * DisasterLossFactor(disasterFreq)
}

// O2SupplyKgPerYear estimates the annual oxygen mass produced by a tree
// population on soil of the given quality.
func O2SupplyKgPerYear(treeCount int64, soilQuality float64) float64 {
	if treeCount <= 0 {
		return 0
	}
	return float64(treeCount) * TreeO2KgPerYear * SoilTreeAdjustment(soilQuality)
}

// FallbackLifespanO2 is the per-contribution lifetime O2 estimate used when
// the submission flow did not precompute one.
func FallbackLifespanO2(quantity int) float64 {
	return float64(quantity) * TreeO2KgPerYear * TreeLifespanYears
}
