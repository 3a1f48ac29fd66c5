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

// convertHandler handles HTTP requests for amount-to-words conversion.
type convertHandler struct {
	converterService portssvc.ConverterSvcFacade
	localeService    portssvc.LocaleSvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConverterSvcFacade, ls portssvc.LocaleSvcFacade) *convertHandler {
	return &convertHandler{
		converterService: cs,
		localeService:    ls,
	}
}

// registerConvertRoutes registers routes related to conversion.
func registerConvertRoutes(rg *gin.RouterGroup, cs portssvc.ConverterSvcFacade, ls portssvc.LocaleSvcFacade) {
	h := newConvertHandler(cs, ls)

	rg.POST("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount to words
// @Description Renders a decimal amount as a natural-language phrase for the requested locale, optionally as a currency phrase with overridable unit names
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Locale not found"
// @Failure 422 {object} map[string]string "Amount out of range for locale"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /convert [post]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	localeCode := req.Locale
	if localeCode == "" {
		localeCode = h.localeService.DefaultLocaleCode()
	}

	logger = logger.With(slog.String("locale", localeCode), slog.String("amount", req.Amount.String()))
	logger.Info("Received request to convert amount")

	locale, err := h.localeService.GetLocaleByCode(c.Request.Context(), localeCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Locale not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Locale '%s' not found", localeCode)})
		} else {
			logger.Error("Failed to get locale from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve locale"})
		}
		return
	}

	var words string
	if req.WithoutCurrency {
		words, err = h.converterService.ConvertWithoutCurrency(c.Request.Context(), req.Amount, locale)
	} else {
		words, err = h.converterService.Convert(c.Request.Context(), req.Amount, locale, req.Currency.ToCurrencyNames())
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrRange) {
			logger.Warn("Amount out of range for locale", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting amount", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert amount in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	logger.Info("Amount converted successfully")
	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount: req.Amount,
		Locale: locale.Code,
		Words:  words,
	})
}
