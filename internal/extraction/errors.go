package extraction

import "fmt"

// UnsupportedTypeError is returned for files whose sniffed content type is
// neither PDF nor a Word document.
type UnsupportedTypeError struct {
	Path string
	MIME string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %s: %s", e.MIME, e.Path)
}

// ExtractionError wraps any failure while reading or decoding a document.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s", e.Path)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
