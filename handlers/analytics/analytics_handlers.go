package analytics

import (
	"net/http"
	"time"

	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages and limits
const (
	ErrFetchAttemptsFailed = "Could not load login attempts"
	ErrFetchVisitsFailed   = "Could not load visit logs"

	LoginAttemptsLimit = 50
)

// VisitPoint is one day of the visit timeline, split by admin flag
type VisitPoint struct {
	Date        string `json:"date"`
	AdminVisits int    `json:"admin_visits"`
	UserVisits  int    `json:"user_visits"`
}

// GetLoginAttempts lists the most recent login attempt rows
// @Summary List login attempts
// @Description Get the most recent login attempts, newest first
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.LoginAttempt
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/login-attempts [get]
// @Security Bearer
func GetLoginAttempts(c *gin.Context) {
	var attempts []models.LoginAttempt
	err := database.DB.Order("timestamp DESC").Limit(LoginAttemptsLimit).Find(&attempts).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchAttemptsFailed)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetVisits returns the per-day visit timeline
// @Summary Visit timeline
// @Description Get daily admin and user visit counts over the full recorded date range; days without visits are zero-filled
// @Tags Analytics
// @Produce json
// @Success 200 {array} VisitPoint
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/visits [get]
// @Security Bearer
func GetVisits(c *gin.Context) {
	var visits []models.VisitLog
	if err := database.DB.Order("date").Find(&visits).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchVisitsFailed)
		return
	}
	c.JSON(http.StatusOK, buildVisitSeries(visits))
}

// buildVisitSeries aggregates visit rows into a contiguous daily series from
// the earliest to the latest recorded day, filling gaps with zero counts
func buildVisitSeries(visits []models.VisitLog) []VisitPoint {
	if len(visits) == 0 {
		return []VisitPoint{}
	}

	admins := make(map[string]int)
	users := make(map[string]int)
	var minDay, maxDay string

	for _, visit := range visits {
		if _, err := time.Parse(time.DateOnly, visit.Date); err != nil {
			continue
		}
		if minDay == "" || visit.Date < minDay {
			minDay = visit.Date
		}
		if visit.Date > maxDay {
			maxDay = visit.Date
		}
		if visit.IsAdmin {
			admins[visit.Date]++
		} else {
			users[visit.Date]++
		}
	}
	if minDay == "" {
		return []VisitPoint{}
	}

	start, _ := time.Parse(time.DateOnly, minDay)
	end, _ := time.Parse(time.DateOnly, maxDay)

	var series []VisitPoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		series = append(series, VisitPoint{
			Date:        key,
			AdminVisits: admins[key],
			UserVisits:  users[key],
		})
	}
	return series
}
