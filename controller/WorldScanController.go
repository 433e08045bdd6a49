package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/metrics"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

const worldScanFormatXlsx = "xlsx"

type WorldScanController interface {
	Scan(w http.ResponseWriter, r *http.Request)
}

func NewWorldScanController(worldScanService service.WorldScanService,
	exportService service.WorldScanExportService,
	archiveService service.WorldArchiveService,
	renderer templates.Renderer,
	maxUploadBytes int64) WorldScanController {
	return &worldScanControllerImpl{
		worldScanService: worldScanService,
		exportService:    exportService,
		archiveService:   archiveService,
		renderer:         renderer,
		maxUploadBytes:   maxUploadBytes,
	}
}

type worldScanControllerImpl struct {
	worldScanService service.WorldScanService
	exportService    service.WorldScanExportService
	archiveService   service.WorldArchiveService
	renderer         templates.Renderer
	maxUploadBytes   int64
}

func (c worldScanControllerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	data, err := c.readWorld(w, r)
	if err != nil {
		renderError(c.renderer, w, r, "Failed to read world", err)
		return
	}
	entries, err := c.worldScanService.ParseWorld(data)
	if err != nil {
		renderError(c.renderer, w, r, "Invalid world", err)
		return
	}
	result, err := c.worldScanService.Scan(entries)
	if err != nil {
		renderError(c.renderer, w, r, "Failed to scan world", err)
		return
	}

	if r.URL.Query().Get("format") == worldScanFormatXlsx {
		metrics.WorldScans.WithLabelValues(worldScanFormatXlsx).Inc()
		content, fileName, err := c.exportService.ExportToXlsx(result)
		if err != nil {
			renderError(c.renderer, w, r, "Failed to export world scan", err)
			return
		}
		w.Header().Set("Content-Type", service.XlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			log.Errorf("failed to write http response: %v", err)
		}
		return
	}
	metrics.WorldScans.WithLabelValues("html").Inc()
	renderPage(c.renderer, w, r, "world_scan", "Scan your world", view.WorldScanPage{
		Result:  result,
		Entries: strings.Join(entries, "\n"),
	})
}

// readWorld takes the "packages" field, or the uploaded "world" file when the field is empty.
func (c worldScanControllerImpl) readWorld(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadBytes)
	err := r.ParseMultipartForm(c.maxUploadBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return "", c.toReadError(err)
	}
	if packages := r.PostFormValue("packages"); strings.TrimSpace(packages) != "" {
		return packages, nil
	}
	file, _, err := r.FormFile("world")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.WorldScanEmpty,
				Message: exception.WorldScanEmptyMsg,
			}
		}
		return "", c.toReadError(err)
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, c.maxUploadBytes+1))
	if err != nil {
		return "", c.toReadError(err)
	}
	if int64(len(data)) > c.maxUploadBytes {
		return "", c.tooLargeError()
	}
	if c.archiveService.IsEnabled() {
		key, err := c.archiveService.ArchiveWorld(r.Context(), data)
		if err != nil {
			log.Warnf("Failed to archive world file: %v", err)
		} else {
			log.Debugf("World file archived as %s", key)
		}
	}
	return string(data), nil
}

func (c worldScanControllerImpl) toReadError(err error) error {
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		return c.tooLargeError()
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.BadRequestBody,
		Message: exception.BadRequestBodyMsg,
		Debug:   err.Error(),
	}
}

func (c worldScanControllerImpl) tooLargeError() error {
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.WorldFileTooLarge,
		Message: exception.WorldFileTooLargeMsg,
		Params:  map[string]interface{}{"maxSize": c.maxUploadBytes},
	}
}
