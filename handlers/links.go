package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shortlink/config"
	"shortlink/services"
)

type CreateLinkRequest struct {
	OriginalURL string `json:"original_url" form:"original_url" binding:"required,url"`
}

// LinkHandler serves link creation, redirect, listing, analytics and
// deletion.
type LinkHandler struct {
	cfg    *config.Config
	geo    services.LocationResolver
	logger *zap.Logger
}

func NewLinkHandler(cfg *config.Config, geo services.LocationResolver, logger *zap.Logger) *LinkHandler {
	return &LinkHandler{cfg: cfg, geo: geo, logger: logger}
}

func (h *LinkHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

func (h *LinkHandler) CreateShortLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "original_url is required and must be a well-formed URL"})
		return
	}

	link, err := services.CreateShortLink(req.OriginalURL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidURL) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("create short link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create short link"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           link.ID,
		"original_url": link.OriginalURL,
		"short_code":   link.ShortCode,
		"short_url":    h.cfg.BaseURL + "/" + link.ShortCode,
		"created_at":   link.CreatedAt,
	})
}

// Redirect resolves a short code, records the click and replies 302. The
// redirect is the primary effect: recording failures are logged and never
// surface to the visitor.
func (h *LinkHandler) Redirect(c *gin.Context) {
	code := c.Param("code")

	link, err := services.GetLinkByShortCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
			return
		}
		h.logger.Error("lookup short code", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve link"})
		return
	}

	userAgent := c.Request.UserAgent()
	ip := c.ClientIP()

	device := services.DetectDevice(userAgent)
	browser := services.DetectBrowser(userAgent)
	location := h.geo.Resolve(ip)

	if err := services.RecordClick(link, ip, device, browser, location); err != nil {
		h.logger.Error("record click", zap.Uint("link_id", link.ID), zap.Error(err))
	}

	c.Redirect(http.StatusFound, link.OriginalURL)
}

func (h *LinkHandler) DeleteLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}

	if err := services.DeleteLink(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
			return
		}
		h.logger.Error("delete link", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

func (h *LinkHandler) ListLinks(c *gin.Context) {
	page := pageParam(c)

	links, total, err := services.GetLinksPage(page, h.cfg.PageSize)
	if err != nil {
		h.logger.Error("list links", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list links"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"links":      links,
		"pagination": services.NewPagination("/links", page, h.cfg.PageSize, total),
	})
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>shortlink</title></head>
<body>
<h1>Shorten a URL</h1>
<form method="POST" action="/shorten">
  <input type="url" name="original_url" placeholder="https://example.com/page" size="60" required>
  <button type="submit">Shorten</button>
</form>
</body>
</html>
`
