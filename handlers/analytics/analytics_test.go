package analytics

import (
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildVisitSeriesEmpty(t *testing.T) {
	assert.Empty(t, buildVisitSeries(nil))
}

func TestBuildVisitSeriesZeroFillsGaps(t *testing.T) {
	visits := []models.VisitLog{
		{Date: "2025-06-01", IsAdmin: true},
		{Date: "2025-06-01", IsAdmin: false},
		{Date: "2025-06-01", IsAdmin: false},
		{Date: "2025-06-04", IsAdmin: false},
	}

	series := buildVisitSeries(visits)

	assert.Equal(t, []VisitPoint{
		{Date: "2025-06-01", AdminVisits: 1, UserVisits: 2},
		{Date: "2025-06-02"},
		{Date: "2025-06-03"},
		{Date: "2025-06-04", UserVisits: 1},
	}, series)
}

func TestBuildVisitSeriesSkipsMalformedDates(t *testing.T) {
	visits := []models.VisitLog{
		{Date: "not-a-date"},
		{Date: "2025-06-02", IsAdmin: true},
	}

	series := buildVisitSeries(visits)

	assert.Equal(t, []VisitPoint{{Date: "2025-06-02", AdminVisits: 1}}, series)
}

func TestBuildVisitSeriesAllMalformed(t *testing.T) {
	assert.Empty(t, buildVisitSeries([]models.VisitLog{{Date: "garbage"}}))
}
