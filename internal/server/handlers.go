package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/dbsmedya/ausbeute/internal/analysis"
	"github.com/dbsmedya/ausbeute/internal/workbook"
)

// Multipart field names of the upload form.
const (
	FieldReference = "reference"
	FieldDaily     = "daily"
)

// Response headers set on the workbook download.
const (
	HeaderRunID    = "X-Ausbeute-Run-Id"
	HeaderSkipped  = "X-Ausbeute-Skipped-Files"
	HeaderWarnings = "X-Ausbeute-Warnings"
)

// memoryLimit is the part of an upload kept in memory; the rest spills to
// temporary files that are removed when the request ends.
const memoryLimit = 8 << 20

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error    string            `json:"error"`
	Warnings []WarningResponse `json:"warnings,omitempty"`
}

// WarningResponse describes a skipped daily file.
type WarningResponse struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// RowResponse is one result row of the preview.
type RowResponse struct {
	SortIndex    int                `json:"sort_index"`
	Dim1         string             `json:"dim1"`
	Dim2         string             `json:"dim2"`
	DimensionKey string             `json:"dimension_key"`
	Metrics      map[string]float64 `json:"metrics"`
}

// PreviewResponse is the JSON body of the preview endpoint.
type PreviewResponse struct {
	RunID         string            `json:"run_id"`
	Columns       []string          `json:"columns"`
	Rows          []RowResponse     `json:"rows"`
	Warnings      []WarningResponse `json:"warnings"`
	ReferenceRows int               `json:"reference_rows"`
	MatchedRows   int               `json:"matched_rows"`
	DailyFiles    int               `json:"daily_files"`
	UsedFiles     int               `json:"used_files"`
	UnmatchedKeys []string          `json:"unmatched_keys"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleAnalysis handles POST /api/v1/analysis and returns the result workbook.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	result, ok := s.analyze(w, r)
	if !ok {
		return
	}

	buf, err := workbook.Export(result, s.cfg.Output.Sheet)
	if err != nil {
		s.logger.Errorw("Export failed", "run", result.RunID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, err, nil)
		return
	}

	h := w.Header()
	h.Set("Content-Type", workbook.ContentType)
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.Output.Filename))
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set(HeaderRunID, result.RunID)
	h.Set(HeaderSkipped, strconv.Itoa(len(result.Warnings)))
	if len(result.Warnings) > 0 {
		names := make([]string, 0, len(result.Warnings))
		for _, warn := range result.Warnings {
			names = append(names, url.PathEscape(warn.File))
		}
		h.Set(HeaderWarnings, strings.Join(names, ","))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warnw("Failed to stream result", "run", result.RunID, "error", err)
	}
}

// handlePreview handles POST /api/v1/analysis/preview and returns the result as JSON.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	result, ok := s.analyze(w, r)
	if !ok {
		return
	}

	resp := PreviewResponse{
		RunID:         result.RunID,
		Columns:       result.Columns(),
		Rows:          make([]RowResponse, 0, len(result.Rows)),
		Warnings:      warningResponses(result.Warnings),
		ReferenceRows: result.Stats.ReferenceRows,
		MatchedRows:   result.Stats.MatchedRows,
		DailyFiles:    result.Stats.DailyFiles,
		UsedFiles:     result.Stats.DailyFilesUsed,
		UnmatchedKeys: result.Stats.UnmatchedKeys,
	}
	for _, row := range result.Rows {
		metrics := make(map[string]float64, len(result.Metrics))
		for i, name := range result.Metrics {
			metrics[name] = row.Metrics[i]
		}
		resp.Rows = append(resp.Rows, RowResponse{
			SortIndex:    row.SortIndex,
			Dim1:         row.Dim1,
			Dim2:         row.Dim2,
			DimensionKey: row.DimensionKey,
			Metrics:      metrics,
		})
	}

	render.JSON(w, r, resp)
}

// analyze parses the upload and runs the pipeline. On failure it writes the
// error response and returns false.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (*analysis.Result, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes())
	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Errorf("upload exceeds %d MB", s.cfg.Server.MaxUploadMB), nil)
			return nil, false
		}
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid multipart upload: %w", err), nil)
		return nil, false
	}
	defer r.MultipartForm.RemoveAll()

	var reference analysis.Source
	if files := r.MultipartForm.File[FieldReference]; len(files) > 0 {
		reference = uploadSource(files[0], s.cfg.Reference.Sheet)
	}

	var daily []analysis.Source
	for _, fh := range r.MultipartForm.File[FieldDaily] {
		daily = append(daily, uploadSource(fh, s.cfg.Daily.Sheet))
	}

	log := s.logger.WithFields(map[string]interface{}{
		"request_id": middleware.GetReqID(r.Context()),
	})
	result, err := analysis.NewPipeline(s.cfg, log).Run(reference, daily)
	if err != nil {
		status, warnings := classify(err)
		s.writeError(w, r, status, err, warnings)
		return nil, false
	}
	return result, true
}

// classify maps pipeline errors onto HTTP status codes.
func classify(err error) (int, []analysis.FileWarning) {
	var noData *analysis.NoDailyDataError
	var refErr *analysis.ReferenceError

	switch {
	case errors.Is(err, analysis.ErrMissingReference), errors.Is(err, analysis.ErrMissingDaily):
		return http.StatusBadRequest, nil
	case errors.As(err, &noData):
		return http.StatusUnprocessableEntity, noData.Warnings
	case errors.As(err, &refErr):
		return http.StatusUnprocessableEntity, nil
	default:
		return http.StatusInternalServerError, nil
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error, warnings []analysis.FileWarning) {
	if status >= http.StatusInternalServerError {
		s.logger.Errorw("Request failed", "status", status, "error", err)
	} else {
		s.logger.Warnw("Request rejected", "status", status, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Error:    err.Error(),
		Warnings: warningResponses(warnings),
	})
}

func warningResponses(warnings []analysis.FileWarning) []WarningResponse {
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningResponse{File: w.File, Error: w.Err.Error()})
	}
	return out
}

func uploadSource(fh *multipart.FileHeader, sheet string) *workbook.Source {
	return workbook.NewSource(fh.Filename, sheet, func() (io.ReadCloser, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
