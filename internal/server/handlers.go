package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/extraction"
)

const (
	uploadField    = "resume"
	maxAnalyzeBody = 1 << 20
)

var errNoText = errors.New("document contains no text")

// UploadResponse represents the response for /upload
type UploadResponse struct {
	Success      bool   `json:"success"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

// AnalyzeRequest represents the request body for /api/analyze-ats
type AnalyzeRequest struct {
	FileName string `json:"fileName" validate:"required"`
}

// handleUpload saves a multipart resume upload and marks it as the
// session's pending upload
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("upload request received")

	if s.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.uploadError(w, r, err)
		return
	}
	defer file.Close() //nolint:errcheck

	filename := secureFilename(header.Filename)
	if filename == "" {
		s.logger.Warn("upload filename is empty after sanitizing", zap.String("original", header.Filename))
		s.writeError(w, &ErrValidation{Field: uploadField, Message: msgNoFileSelected})
		return
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.logger.Error("failed to create upload directory", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	path := filepath.Join(s.uploadDir, filename)
	if err := saveUpload(file, path); err != nil {
		s.logger.Error("failed to save upload", zap.String("path", path), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	if err := s.sessions.SetPendingUpload(w, r, path); err != nil {
		s.logger.Error("failed to store pending upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	s.logger.Info("file saved", zap.String("filename", filename), zap.String("original", header.Filename))
	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Success:      true,
		Filename:     filename,
		OriginalName: header.Filename,
	})
}

// uploadError reports a failure to read the resume part of the form
func (s *Server) uploadError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// A file input left empty arrives as a plain form value
		if r.MultipartForm != nil {
			if _, ok := r.MultipartForm.Value[uploadField]; ok {
				s.logger.Warn("empty filename")
				s.writeError(w, &ErrValidation{Field: uploadField, Message: msgNoFileSelected})
				return
			}
		}
		s.logger.Warn("no file in request")
		s.writeError(w, &ErrValidation{Field: uploadField, Message: msgNoFileUploaded})
	case errors.Is(err, http.ErrNotMultipart):
		s.logger.Warn("upload is not a multipart form", zap.Error(err))
		s.writeError(w, &ErrValidation{Field: uploadField, Message: msgNoFileUploaded})
	case errors.As(err, &tooLarge):
		s.logger.Warn("upload exceeds size limit", zap.Int64("limit", tooLarge.Limit))
		s.errorResponse(w, http.StatusRequestEntityTooLarge, msgUploadFailed)
	default:
		s.logger.Error("failed to read upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, msgUploadFailed)
	}
}

func saveUpload(src multipart.File, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close() //nolint:errcheck
		return fmt.Errorf("failed to write file: %w", err)
	}
	return dst.Close()
}

// handleAnalyzeATS extracts the text of an uploaded resume and scores it
func (s *Server) handleAnalyzeATS(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("ATS analysis request received")

	req, err := s.decodeAnalyzeRequest(r)
	if err != nil {
		s.logger.Warn("invalid analyze request", zap.Error(err))
		s.writeError(w, err)
		return
	}

	path, err := s.locateUpload(req.FileName)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("analyzing file", zap.String("path", path))

	text, err := s.extractor.Extract(path)
	if err == nil && strings.TrimSpace(text) == "" {
		err = &extraction.ExtractionError{Path: path, Cause: errNoText}
	}
	if err != nil {
		s.logger.Warn("failed to extract text from file", zap.String("path", path), zap.Error(err))
		s.writeError(w, err)
		return
	}
	s.logger.Info("extracted text", zap.Int("length", len(text)))

	report := s.scorer.Analyze(r.Context(), text)
	s.jsonResponse(w, http.StatusOK, report)
}

// decodeAnalyzeRequest reads the JSON body. A missing, malformed or empty
// object is reported as missing data.
func (s *Server) decodeAnalyzeRequest(r *http.Request) (AnalyzeRequest, error) {
	var raw map[string]any
	body := io.LimitReader(r.Body, maxAnalyzeBody)
	if err := json.NewDecoder(body).Decode(&raw); err != nil || len(raw) == 0 {
		return AnalyzeRequest{}, &ErrValidation{Field: "body", Message: msgNoData}
	}

	name, _ := raw["fileName"].(string)
	req := AnalyzeRequest{FileName: strings.TrimSpace(name)}
	if err := s.validate.Struct(req); err != nil {
		return AnalyzeRequest{}, &ErrValidation{Field: "fileName", Message: msgNoFileName}
	}
	return req, nil
}

// locateUpload resolves name inside the upload directory. Only the base name
// is used so a request cannot reach outside the directory.
func (s *Server) locateUpload(name string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", &ErrFileNotFound{Name: name}
	}

	path := filepath.Join(s.uploadDir, base)
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()):
		s.logger.Warn("file not found", zap.String("path", path), zap.Strings("uploads", s.listUploads()))
		return "", &ErrFileNotFound{Name: base}
	case err != nil:
		return "", fmt.Errorf("failed to stat upload: %w", err)
	}
	return path, nil
}

// listUploads returns the file names in the upload directory, for logging
func (s *Server) listUploads() []string {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		s.logger.Warn("could not list upload directory", zap.Error(err))
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
