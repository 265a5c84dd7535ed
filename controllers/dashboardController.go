package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"shawon-burger/export"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(dashboard *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		stats, err := dashboard.Stats(ctx, c.Query("dateRange"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func ExportDashboard(dashboard *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		stats, err := dashboard.Stats(ctx, c.Query("dateRange"))
		if err != nil {
			respondError(c, err)
			return
		}
		var buf bytes.Buffer
		if err := export.WriteDashboardPDF(&buf, stats); err != nil {
			respondError(c, err)
			return
		}
		filename := export.ReportFilename(dashboard.Now())
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
