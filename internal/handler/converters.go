package handler

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docmill/internal/config"
	"docmill/internal/converter"
	"docmill/internal/domain/services/convert"
	"docmill/internal/httputil"
)

// ConverterHandler handles HTTP requests for converter metadata, converter
// selection and document conversion.
type ConverterHandler struct {
	directory *converter.Directory
	config    *config.Config
	logger    *slog.Logger
}

// NewConverterHandler creates a new converter handler
func NewConverterHandler(directory *converter.Directory, cfg *config.Config, logger *slog.Logger) *ConverterHandler {
	return &ConverterHandler{
		directory: directory,
		config:    cfg,
		logger:    logger,
	}
}

// HealthCheck returns 200 OK when the service is up
func (h *ConverterHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListConverters returns every loaded converter's metadata plus the
// unavailable set with failure reasons.
//
// GET /api/converters
func (h *ConverterHandler) ListConverters(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"converters":  h.directory.AllInfo(),
		"unavailable": h.directory.UnavailableConverters(),
	})
}

// SelectRequest asks which converter would handle a given filename.
type SelectRequest struct {
	Filename string `json:"filename"`
}

// Validate implements request validation for SelectRequest
func (req *SelectRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Filename,
			validation.Required,
			validation.Length(1, config.MaxFilenameLength),
		),
	)
}

// SelectConverter performs a dry-run selection: which converter BestForFile
// would pick for this filename, without converting anything.
//
// POST /api/converters/select
func (h *ConverterHandler) SelectConverter(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv, err := h.directory.BestForFile(req.Filename, h.converterOptions())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"filename":  req.Filename,
		"converter": conv.Name(),
	})
}

// ConvertRequest is the validated metadata of an uploaded conversion job.
type ConvertRequest struct {
	Filename  string
	Converter string
}

// Validate implements request validation for ConvertRequest
func (req *ConvertRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Filename,
			validation.Required,
			validation.Length(1, config.MaxFilenameLength),
		),
	)
}

// ConvertResponse carries the conversion result.
type ConvertResponse struct {
	Markdown  string `json:"markdown"`
	Converter string `json:"converter"`
}

// Convert accepts a multipart upload (field "file", optional field
// "converter" to force a specific backend) and returns markdown.
//
// POST /api/convert
func (h *ConverterHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	req := ConvertRequest{
		Filename:  header.Filename,
		Converter: r.FormValue("converter"),
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Spool the upload to disk under a random name, keeping the original
	// extension so selection and the backends see the right file type.
	tmpPath := filepath.Join(os.TempDir(),
		uuid.NewString()+strings.ToLower(filepath.Ext(header.Filename)))
	dst, err := os.Create(tmpPath)
	if err != nil {
		h.logger.Error("failed to spool upload", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(tmpPath)

	size, err := io.Copy(dst, file)
	dst.Close()
	if err != nil {
		h.logger.Error("failed to spool upload", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	opts := h.converterOptions()
	var conv convert.DocumentConverter
	if req.Converter != "" {
		conv, err = h.directory.Get(req.Converter, opts)
	} else {
		conv, err = h.directory.BestForFile(tmpPath, opts)
	}
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	markdown, err := conv.Convert(r.Context(), tmpPath)
	if err != nil {
		h.logger.Error("conversion failed",
			"file", header.Filename,
			"converter", conv.Name(),
			"error", err,
		)
		httputil.RespondError(w, http.StatusUnprocessableEntity, "conversion failed: "+err.Error())
		return
	}

	h.logger.Info("document converted",
		"file", header.Filename,
		"converter", conv.Name(),
		"bytes", size,
	)

	httputil.RespondJSON(w, http.StatusOK, ConvertResponse{
		Markdown:  markdown,
		Converter: conv.Name(),
	})
}

// converterOptions builds the credentials forwarded to backend constructors
// from server configuration.
func (h *ConverterHandler) converterOptions() convert.Options {
	return convert.Options{
		APIKey:  h.config.ConverterAPIKey,
		BaseURL: h.config.ConverterBaseURL,
	}
}
