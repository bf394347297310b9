// Package extraction pulls plain text out of uploaded resume documents.
// The document type is sniffed from the file's bytes, never from its name.
package extraction

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// Content types the extractor can read.
const (
	MIMEPDF    = "application/pdf"
	MIMEDOCX   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEMSWord = "application/msword"
)

// Extractor reads text from PDF and Word documents.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract returns the text of the document at path. PDF pages and Word
// paragraphs are joined with newlines, so a document without a text layer
// yields only separators rather than an error.
//
// Errors are *UnsupportedTypeError for other content types and
// *ExtractionError for anything that goes wrong while reading.
func (e *Extractor) Extract(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("panic while extracting text", zap.String("file", path), zap.Any("panic", r))
			text = ""
			err = &ExtractionError{Path: path, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	e.logger.Info("extracting text", zap.String("file", path))

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: err}
	}
	e.logger.Info("detected file type", zap.String("file", path), zap.String("mime", mtype.String()))

	switch {
	case mtype.Is(MIMEPDF):
		text, err = extractPDF(path)
	case mtype.Is(MIMEDOCX), mtype.Is(MIMEMSWord):
		text, err = extractWord(path)
	default:
		e.logger.Error("unsupported file type", zap.String("file", path), zap.String("mime", mtype.String()))
		return "", &UnsupportedTypeError{Path: path, MIME: mtype.String()}
	}
	if err != nil {
		e.logger.Error("failed to extract text", zap.String("file", path), zap.Error(err))
		return "", &ExtractionError{Path: path, Cause: err}
	}

	e.logger.Info("extracted text", zap.String("file", path), zap.Int("length", len(text)))
	return text, nil
}
