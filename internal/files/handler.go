package files

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filebox-backend/internal/shared/metrics"
	"filebox-backend/internal/shared/server/respond"
)

// multipartOverheadBytes is headroom on top of the payload ceiling for
// multipart boundaries and part headers, so a request carrying exactly
// MaxUploadBytes of file content is not cut off by the body cap.
const multipartOverheadBytes = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches file routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/upload", h.upload)
	r.GET("/files", h.list)
	r.GET("/download/:id", h.download)
	r.DELETE("/delete/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+multipartOverheadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "file exceeds the maximum upload size", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	f, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		metrics.IncUploadFailed()
		switch {
		case errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error(), nil)
		case errors.Is(err, ErrMissingFile), errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidName):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to store file", nil)
		}
		return
	}

	metrics.IncUpload(f.SizeBytes)
	c.Set("fileId", f.ID)
	respond.OK(c, uploadResponse{
		Message:  "file uploaded successfully",
		FileID:   f.ID,
		Filename: f.OriginalName,
		Size:     f.SizeBytes,
	})
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list files", nil)
		return
	}

	resp := make([]fileSummary, 0, len(list))
	for _, f := range list {
		resp = append(resp, toSummary(f))
	}
	respond.OK(c, resp)
}

func (h *Handler) download(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		return
	}

	f, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to fetch file", nil)
		return
	}

	metrics.IncDownload()
	c.Set("fileId", f.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.OriginalName))
	// The stored mime type passes through as-is, including empty. No default
	// is invented here.
	c.Data(http.StatusOK, f.MimeType, f.Data)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to delete file", nil)
		return
	}

	metrics.IncDelete()
	c.Set("fileId", id)
	respond.Message(c, "file deleted successfully")
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
