package handler

import (
	"io"
	"net/http"

	"github.com/Swati-d16/Product-Inventory/internal/apierror"
	"github.com/Swati-d16/Product-Inventory/internal/service"

	"github.com/gin-gonic/gin"
)

// CSVHandler exposes the bulk import/export endpoints.
type CSVHandler struct {
	svc      service.ImportService
	maxBytes int64
}

func NewCSVHandler(svc service.ImportService, maxBytes int64) *CSVHandler {
	return &CSVHandler{svc: svc, maxBytes: maxBytes}
}

// Import accepts a multipart upload under the "file" part and runs the batch.
// Always answers 200 with the result summary when the batch ran — even when
// every row was skipped. The only 400s are a missing part or an oversized file.
func (h *CSVHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No file provided"))
		return
	}
	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, apierror.New("File exceeds maximum import size"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Unreadable file"))
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Unreadable file"))
		return
	}

	result, err := h.svc.Import(c.Request.Context(), string(raw))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Export streams the full product set as a CSV attachment.
func (h *CSVHandler) Export(c *gin.Context) {
	doc, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(doc))
}
