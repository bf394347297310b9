package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tidwall/pretty"
	"go.uber.org/zap"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/resume"
)

// builderFields are always offered by the resume form, in this order
var builderFields = []string{"name", "email", "phone", "location", "summary"}

// BuilderPage is the data behind build-resume.html
type BuilderPage struct {
	Record resume.Record
	Fields []FormField
}

// FormField is one input of the resume form
type FormField struct {
	Key       string
	Value     string
	Multiline bool
}

// DownloadPage is the data behind download.html
type DownloadPage struct {
	Session string
}

// ATSPage is the data behind ats-score.html
type ATSPage struct {
	File     string
	Enhanced string
}

// handlePage renders a template that needs no data
func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.render(w, name, nil)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.render(w, "download.html", DownloadPage{Session: r.URL.Query().Get("session")})
}

func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	s.render(w, "ats-score.html", ATSPage{File: query.Get("file"), Enhanced: query.Get("enhanced")})
}

// handleBuildResume renders the resume form. With from_upload=true the
// session's pending upload is consumed and parsed to prefill the form.
func (s *Server) handleBuildResume(w http.ResponseWriter, r *http.Request) {
	record := resume.Record{}

	if strings.EqualFold(r.URL.Query().Get("from_upload"), "true") {
		path, ok, err := s.sessions.TakePendingUpload(w, r)
		switch {
		case err != nil:
			s.logger.Warn("failed to consume pending upload", zap.Error(err))
		case ok:
			record = s.parseUpload(r.Context(), path)
		}
	}

	s.render(w, "build-resume.html", BuilderPage{Record: record, Fields: formFields(record)})
}

// parseUpload runs the resume parsing flow on a saved upload. Any failure
// yields an empty record.
func (s *Server) parseUpload(ctx context.Context, path string) resume.Record {
	text, err := s.extractor.Extract(path)
	if err != nil {
		s.logger.Warn("failed to extract text for resume form", zap.String("path", path), zap.Error(err))
		return resume.Record{}
	}
	return s.parser.Parse(ctx, text)
}

// render executes a page template into a buffer so a template failure can
// still produce a clean 500
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("failed to render page", zap.String("template", name), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("failed to write page", zap.String("template", name), zap.Error(err))
	}
}

// formFields lays the record out as form inputs: the standard fields first,
// then every other top-level key in record order
func formFields(record resume.Record) []FormField {
	fields := make([]FormField, 0, len(builderFields)+len(record.Object))
	seen := make(map[string]bool, len(builderFields))

	for _, key := range builderFields {
		seen[key] = true
		var value string
		var multiline bool
		if v, ok := record.Get(key); ok {
			value, multiline = fieldText(v)
		}
		fields = append(fields, FormField{Key: key, Value: value, Multiline: multiline || key == "summary"})
	}

	for _, m := range record.Object {
		if seen[m.Key] {
			continue
		}
		seen[m.Key] = true
		value, multiline := fieldText(m.Value)
		fields = append(fields, FormField{Key: m.Key, Value: value, Multiline: multiline})
	}
	return fields
}

// fieldText renders a value for a form input. Lists of strings become one
// line per item; other containers become indented JSON.
func fieldText(v resume.Value) (string, bool) {
	switch t := v.(type) {
	case resume.String:
		return string(t), strings.Contains(string(t), "\n")
	case resume.Number:
		return string(t), false
	case resume.Bool:
		if t {
			return "true", false
		}
		return "false", false
	case resume.List:
		lines := make([]string, 0, len(t))
		for _, item := range t {
			str, ok := item.(resume.String)
			if !ok {
				return prettyJSON(v), true
			}
			lines = append(lines, string(str))
		}
		return strings.Join(lines, "\n"), true
	default:
		return prettyJSON(v), true
	}
}

func prettyJSON(v resume.Value) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(pretty.Pretty(raw)))
}
