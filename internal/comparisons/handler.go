package comparisons

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/filings"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches comparison routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/comparisons", h.create)
	rg.GET("/comparisons", h.list)
	rg.GET("/comparisons/:id", h.get)
}

type createRequest struct {
	Company         string `json:"company"`
	CurrentFilingID string `json:"currentFilingId"`
	PriorFilingID   string `json:"priorFilingId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	var cmp Comparison
	var err error
	switch {
	case req.CurrentFilingID != "" || req.PriorFilingID != "":
		cmp, err = h.Svc.ComparePair(c.Request.Context(), req.CurrentFilingID, req.PriorFilingID)
	case strings.TrimSpace(req.Company) != "":
		cmp, err = h.Svc.CompareLatest(c.Request.Context(), req.Company)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"either company or currentFilingId+priorFilingId is required", nil)
		return
	}
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	c.Set("comparisonId", cmp.ID)
	respond.JSON(c, http.StatusCreated, cmp)
}

func (h *Handler) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "two distinct filing ids are required", nil)
	case errors.Is(err, filings.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "filing not found", nil)
	case errors.Is(err, ErrNoComparableFilings):
		respond.Error(c, http.StatusConflict, "no_comparable_filings",
			"at least two filings are required for comparison", nil)
	case errors.Is(err, ErrNoExtractableRisks):
		respond.Error(c, http.StatusUnprocessableEntity, "no_extractable_risks",
			"could not extract risk factors from either filing", nil)
	case errors.Is(err, ErrMismatchedCompanies):
		respond.Error(c, http.StatusBadRequest, "mismatched_companies", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run comparison", nil)
	}
}

func (h *Handler) get(c *gin.Context) {
	cmp, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "comparison not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch comparison", nil)
		}
		return
	}
	respond.OK(c, cmp)
}

func (h *Handler) list(c *gin.Context) {
	company := c.Query("company")
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	out, err := h.Svc.List(c.Request.Context(), company, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "company is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list comparisons", nil)
		}
		return
	}
	respond.OK(c, gin.H{"comparisons": out})
}
