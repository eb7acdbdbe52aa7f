package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shortlink/services"
)

// Analytics returns one page of links with their click events nested, plus
// the click total across all links.
func (h *LinkHandler) Analytics(c *gin.Context) {
	page := pageParam(c)

	links, total, err := services.GetAnalyticsPage(page, h.cfg.PageSize)
	if err != nil {
		h.logger.Error("load analytics page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load analytics"})
		return
	}

	totalClicks, err := services.TotalClicks()
	if err != nil {
		h.logger.Error("sum clicks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"links":        links,
		"total_clicks": totalClicks,
		"pagination":   services.NewPagination("/analytics", page, h.cfg.PageSize, total),
	})
}
