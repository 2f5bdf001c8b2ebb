package filings

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/extract"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/shared/server/respond"
)

const maxUploadSize = 20 << 20 // 20MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches filing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/filings", h.create)
	rg.GET("/filings", h.list)
	rg.GET("/filings/:id", h.get)
}

type createTextRequest struct {
	Company    string `json:"company"`
	FiscalYear int    `json:"fiscalYear"`
	Content    string `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.createFromUpload(c)
		return
	}

	var req createTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	filing, err := h.Svc.IngestText(c.Request.Context(), req.Company, req.FiscalYear, req.Content)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}
	c.Set("filingId", filing.ID)
	respond.JSON(c, http.StatusCreated, toResponse(filing))
}

func (h *Handler) createFromUpload(c *gin.Context) {
	company := strings.TrimSpace(c.PostForm("company"))
	fiscalYear, _ := strconv.Atoi(c.PostForm("fiscalYear"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	filing, err := h.Svc.Ingest(c.Request.Context(), company, fiscalYear, fileHeader.Filename, mimeType, data)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}
	c.Set("filingId", filing.ID)
	respond.JSON(c, http.StatusCreated, toResponse(filing))
}

func (h *Handler) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "company and fiscalYear are required", nil)
	case errors.Is(err, ErrInsufficientContent):
		respond.Error(c, http.StatusUnprocessableEntity, "insufficient_content",
			"filing content is too short to analyze", gin.H{"minChars": MinContentChars})
	case errors.Is(err, ErrDuplicateFiling):
		respond.Error(c, http.StatusConflict, "duplicate_filing", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupportedFileType):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_file_type",
			"only PDF and plain text filings are supported", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store filing", nil)
	}
}

func (h *Handler) get(c *gin.Context) {
	filing, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "filing not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "filing id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch filing", nil)
		}
		return
	}
	respond.OK(c, toResponse(filing))
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
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list filings", nil)
		}
		return
	}

	items := make([]gin.H, 0, len(out))
	for _, filing := range out {
		items = append(items, toResponse(filing))
	}
	respond.OK(c, gin.H{"filings": items})
}

func toResponse(filing Filing) gin.H {
	return gin.H{
		"filingId":   filing.ID,
		"company":    filing.Company,
		"fiscalYear": filing.FiscalYear,
		"source":     filing.Source,
		"fileName":   filing.FileName,
		"charCount":  filing.CharCount,
		"createdAt":  filing.CreatedAt,
	}
}
