package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wordnum/wordnum_app/internal/apperrors"
	portssvc "github.com/wordnum/wordnum_app/internal/core/ports/services"
	"github.com/wordnum/wordnum_app/internal/dto"
	"github.com/wordnum/wordnum_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// localeHandler handles HTTP requests related to locales.
type localeHandler struct {
	localeService portssvc.LocaleSvcFacade
}

// newLocaleHandler creates a new localeHandler.
func newLocaleHandler(ls portssvc.LocaleSvcFacade) *localeHandler {
	return &localeHandler{
		localeService: ls,
	}
}

// registerLocaleRoutes registers routes related to locales.
func registerLocaleRoutes(rg *gin.RouterGroup, ls portssvc.LocaleSvcFacade) {
	h := newLocaleHandler(ls)

	locales := rg.Group("/locales")
	{
		locales.GET("", h.listLocales)
		locales.GET("/:code", h.getLocaleByCode)
	}
}

// getLocaleByCode godoc
// @Summary Get a locale by code
// @Description Retrieves the full word tables and formatting rules for a specific locale
// @Tags locales
// @Produce  json
// @Param   code path string true "Locale Code (e.g. en-US)"
// @Success 200 {object} dto.LocaleDetailResponse
// @Failure 404 {object} map[string]string "Locale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve locale"
// @Router /locales/{code} [get]
func (h *localeHandler) getLocaleByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	logger = logger.With(slog.String("locale", code))
	logger.Info("Received request to get locale by code")

	locale, err := h.localeService.GetLocaleByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Locale not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Locale '%s' not found", code)})
		} else {
			logger.Error("Failed to get locale from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve locale"})
		}
		return
	}

	logger.Info("Locale retrieved successfully")
	c.JSON(http.StatusOK, dto.ToLocaleDetailResponse(locale))
}

// listLocales godoc
// @Summary List all locales
// @Description Retrieves a list of all available locales with their currency unit names
// @Tags locales
// @Produce  json
// @Success 200 {array} dto.LocaleResponse
// @Failure 500 {object} map[string]string "Failed to list locales"
// @Router /locales [get]
func (h *localeHandler) listLocales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list locales")

	locales, err := h.localeService.ListLocales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list locales from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locales"})
		return
	}

	logger.Info("Locales listed successfully", slog.Int("count", len(locales)))
	c.JSON(http.StatusOK, dto.ToListLocaleResponse(locales))
}
