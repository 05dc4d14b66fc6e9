package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDistrictDefaults(t *testing.T) {
	ind := NormalizeDistrict(&District{ID: "up-lucknow", Name: "Lucknow", State: "Uttar Pradesh"})

	assert.Equal(t, DefaultAQI, ind.AQI)
	assert.Equal(t, DefaultSoilQuality, ind.SoilQuality)
	assert.Equal(t, DefaultDisasters, ind.DisasterFrequency)
}

func TestNormalizeDistrictProvidedValues(t *testing.T) {
	aqi := 180.0
	soil := 55.0
	disasters := 0

	ind := NormalizeDistrict(&District{
		AvgAQI:            &aqi,
		SoilQuality:       &soil,
		DisasterFrequency: &disasters,
	})

	assert.Equal(t, 180.0, ind.AQI)
	assert.Equal(t, 55.0, ind.SoilQuality)
	// Zero disasters is real data, not a missing value.
	assert.Equal(t, 0.0, ind.DisasterFrequency)
}

func TestNormalizeDistrictRejectsNonPositive(t *testing.T) {
	aqi := 0.0
	soil := -1.0

	ind := NormalizeDistrict(&District{AvgAQI: &aqi, SoilQuality: &soil})

	assert.Equal(t, DefaultAQI, ind.AQI)
	assert.Equal(t, DefaultSoilQuality, ind.SoilQuality)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Uttar Pradesh", DisplayName("uttar-pradesh"))
	assert.Equal(t, "Lucknow", DisplayName("LUCKNOW"))
	assert.Equal(t, "Tamil Nadu", DisplayName("  tamil nadu "))
	assert.Equal(t, "", DisplayName(""))
}

func TestDisplayNameKeepsConnectivesLowercase(t *testing.T) {
	// A canonical multi-word name must round-trip unchanged.
	assert.Equal(t, "Jammu and Kashmir", DisplayName("Jammu and Kashmir"))
	assert.Equal(t, "Jammu and Kashmir", DisplayName("jammu-and-kashmir"))
	assert.Equal(t, "Jammu and Kashmir", DisplayName("JAMMU AND KASHMIR"))
	assert.Equal(t, "Dadra and Nagar Haveli and Daman and Diu",
		DisplayName("dadra-and-nagar-haveli-and-daman-and-diu"))

	// Only whole connective words stay lowercase.
	assert.Equal(t, "Andhra Pradesh", DisplayName("andhra pradesh"))
	assert.Equal(t, "Andaman and Nicobar Islands", DisplayName("andaman and nicobar islands"))
}
