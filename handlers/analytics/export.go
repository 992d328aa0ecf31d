package analytics

import (
	"fmt"
	"net/http"
	"time"

	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const ErrExportFailed = "Failed to export analytics"

// ExportAnalytics streams an XLSX workbook with the login attempt log and the
// visit timeline
// @Summary Export analytics
// @Description Download login attempts and visit counts as an XLSX workbook
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/export [get]
// @Security Bearer
func ExportAnalytics(c *gin.Context) {
	var attempts []models.LoginAttempt
	if err := database.DB.Order("timestamp DESC").Find(&attempts).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
	var visits []models.VisitLog
	if err := database.DB.Order("date").Find(&visits).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			log.Warnf("failed to close workbook: %v", err)
		}
	}()

	if err := writeAttemptsSheet(file, attempts); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
	if err := writeVisitsSheet(file, visits); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}

	filename := fmt.Sprintf("gamebase-analytics-%s.xlsx", time.Now().UTC().Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		log.Warnf("failed to stream workbook: %v", err)
	}
}

func writeAttemptsSheet(file *excelize.File, attempts []models.LoginAttempt) error {
	const sheet = "Login Attempts"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return err
	}
	file.SetActiveSheet(index)
	// Drop the default sheet excelize creates
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []interface{}{"Timestamp", "Session", "Username", "Success", "Tries"}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, attempt := range attempts {
		row := []interface{}{
			attempt.Timestamp.Format(time.RFC3339),
			attempt.SessionID,
			attempt.Username,
			attempt.Success,
			attempt.Tries,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeVisitsSheet(file *excelize.File, visits []models.VisitLog) error {
	const sheet = "Visits"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Date", "Admin Visits", "User Visits"}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, point := range buildVisitSeries(visits) {
		row := []interface{}{point.Date, point.AdminVisits, point.UserVisits}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
