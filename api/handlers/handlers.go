package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trendzo-analytics/analytics"
	"trendzo-analytics/dto"
	"trendzo-analytics/models"
	"trendzo-analytics/services"
)

// CalculateMetricsHandler godoc
// @Summary      Calculate link metrics
// @Description  Aggregate engagement events of a distribution link into a metrics snapshot
// @Tags         metrics
// @Param        id       path  string                       true  "Link ID"
// @Param        request  body  dto.CalculateMetricsRequest  true  "Calculation input"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ContentMetricsDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /links/{id}/metrics [post]
func CalculateMetricsHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CalculateMetricsRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		m, err := svc.CalculateMetrics(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			if errors.Is(err, analytics.ErrLinkNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "link not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "metrics unavailable"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// MetricsHistoryHandler godoc
// @Summary      Link metrics history
// @Description  List the audit snapshots of a link within a period, newest first
// @Tags         metrics
// @Param        id      path   string  true   "Link ID"
// @Param        period  query  string  false  "7d, 30d, 90d or all (default 30d)"
// @Produce      json
// @Success      200  {array}  dto.ContentMetricsDTO
// @Router       /links/{id}/metrics/history [get]
func MetricsHistoryHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.DefaultQuery("period", "30d")
		items, err := svc.History(c.Request.Context(), c.Param("id"), period)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// LinkScoreHandler godoc
// @Summary      Link performance score
// @Description  Score the most recent metrics snapshot of a link
// @Tags         metrics
// @Param        id      path   string  true   "Link ID"
// @Param        period  query  string  false  "7d, 30d, 90d or all (default 30d)"
// @Produce      json
// @Success      200  {object}  dto.ScoreDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /links/{id}/score [get]
func LinkScoreHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.DefaultQuery("period", "30d")
		score, err := svc.LatestScore(c.Request.Context(), c.Param("id"), period)
		if err != nil {
			if errors.Is(err, services.ErrNoData) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no metrics for link"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, score)
	}
}

// ComparisonHandler godoc
// @Summary      Expert vs automated comparison
// @Description  Build the comparison report over every metrics snapshot of the period
// @Tags         comparison
// @Param        period  path  string  true  "7d, 30d, 90d or all"
// @Produce      json
// @Success      200  {object}  dto.ComparisonReportDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /comparison/{period} [get]
func ComparisonHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Compare(c.Request.Context(), c.Param("period"))
		if err != nil {
			if errors.Is(err, services.ErrNoData) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no data available"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "comparison unavailable"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// LatestComparisonHandler godoc
// @Summary      Latest comparison report
// @Description  Return the most recently persisted comparison report for a period
// @Tags         comparison
// @Param        period  path  string  true  "7d, 30d, 90d or all"
// @Produce      json
// @Success      200  {object}  dto.ComparisonReportDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /comparison/{period}/latest [get]
func LatestComparisonHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.LatestComparison(c.Request.Context(), c.Param("period"))
		if err != nil {
			if errors.Is(err, services.ErrNoData) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no report for period"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "report unavailable"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// RegisterLinkHandler godoc
// @Summary      Register distribution link
// @Description  Register or update a distribution link for a template
// @Tags         links
// @Param        request  body  dto.RegisterLinkRequest  true  "Link input"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.RegisterLinkResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /links [post]
func RegisterLinkHandler(svc *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.RegisterLinkRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		created, err := svc.Register(c.Request.Context(), &models.DistributionLink{
			LinkID:     in.LinkID,
			TemplateID: in.TemplateID,
			Campaign:   in.Campaign,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "link registration failed"})
			return
		}
		c.JSON(http.StatusOK, dto.RegisterLinkResponseDTO{LinkID: in.LinkID, Created: created})
	}
}

// TagSourceHandler godoc
// @Summary      Tag template source
// @Description  Mark a template as expert-created or automated and index its provenance
// @Tags         templates
// @Param        id       path  string                true  "Template ID"
// @Param        request  body  dto.TagSourceRequest  true  "Provenance input"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.TagSourceResponseDTO
// @Router       /templates/{id}/source [post]
func TagSourceHandler(svc *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.TagSourceRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		ok := svc.TagSource(c.Request.Context(), c.Param("id"), in.IsExpert, in.CreatorID, in.Notes)
		c.JSON(http.StatusOK, dto.TagSourceResponseDTO{Success: ok})
	}
}
