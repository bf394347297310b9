package extraction

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestExtract_PDF(t *testing.T) {
	path := writeFile(t, "resume.pdf", buildPDF(textPage("Jane Doe"), textPage("Go Developer")))

	text, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Go Developer")
	assert.Less(t, strings.Index(text, "Jane Doe"), strings.Index(text, "Go Developer"))
}

func TestExtract_ImageOnlyPDF(t *testing.T) {
	path := writeFile(t, "scan.pdf", buildPDF("", "", ""))

	text, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "\n\n", text)
	assert.Empty(t, strings.TrimSpace(text))
}

func TestExtract_TypeSniffedFromContent(t *testing.T) {
	// A PDF saved with a Word extension is still read as a PDF
	path := writeFile(t, "resume.docx", buildPDF(textPage("Jane Doe")))

	text, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestExtract_CorruptPDF(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("%PDF-1.4 garbage that is not a document"))

	text, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)

	assert.Empty(t, text)
	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr), "got %T: %v", err, err)
	assert.Equal(t, path, extractionErr.Path)
}

func TestExtract_DOCX(t *testing.T) {
	data := buildDOCX(t,
		paragraph("Jane ", "Doe"),
		paragraph(),
		paragraph("Senior Go Developer"),
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go</w:t></w:r></w:p>`,
	)
	path := writeFile(t, "resume.docx", data)

	text, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n\nSenior Go Developer\nSkills:\tGo", text)
}

func TestExtract_EmptyDOCX(t *testing.T) {
	path := writeFile(t, "blank.docx", buildDOCX(t, paragraph(), paragraph()))

	text, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "\n", text)
}

func TestExtract_UnsupportedType(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"plain text", "resume.pdf", []byte("Jane Doe\nGo developer\n")},
		{"png image", "resume.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")},
		{"plain zip", "resume.docx", func() []byte {
			// A zip without a word/ part is not a Word document
			return []byte("PK\x05\x06" + strings.Repeat("\x00", 18))
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.data)

			_, err := NewExtractor(zaptest.NewLogger(t)).Extract(path)

			var unsupported *UnsupportedTypeError
			require.True(t, errors.As(err, &unsupported), "got %T: %v", err, err)
			assert.NotEmpty(t, unsupported.MIME)
		})
	}
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := NewExtractor(nil).Extract("/nonexistent/resume.pdf")

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

type fakePages []string

func (f fakePages) NumPage() int { return len(f) }

func (f fakePages) PageText(i int) (string, error) {
	if f[i-1] == "ERR" {
		return "", errors.New("bad content stream")
	}
	return f[i-1], nil
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name     string
		pages    fakePages
		expected string
		wantErr  bool
	}{
		{"no pages", fakePages{}, "", false},
		{"single page", fakePages{"one"}, "one", false},
		{"blank pages keep separators", fakePages{"", "two", ""}, "\ntwo\n", false},
		{"all blank", fakePages{"", "", "", ""}, "\n\n\n", false},
		{"page error", fakePages{"one", "ERR"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := joinPages(tt.pages)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestParagraphTexts(t *testing.T) {
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>First</w:t></w:r><w:r><w:br/><w:t>line</w:t></w:r></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>In a table</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p><w:hyperlink><w:r><w:t>linked</w:t></w:r></w:hyperlink></w:p>` +
		`</w:body></w:document>`

	texts, err := paragraphTexts(xml)
	require.NoError(t, err)
	assert.Equal(t, []string{"First\nline", "linked"}, texts)
}

func TestParagraphTexts_Malformed(t *testing.T) {
	_, err := paragraphTexts("<w:document><w:body>")
	assert.Error(t, err)
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("unexpected EOF")
	extractionErr := &ExtractionError{Path: "/tmp/a.pdf", Cause: cause}
	assert.Equal(t, "failed to extract text from /tmp/a.pdf: unexpected EOF", extractionErr.Error())
	assert.ErrorIs(t, extractionErr, cause)

	unsupported := &UnsupportedTypeError{Path: "/tmp/a.txt", MIME: "text/plain; charset=utf-8"}
	assert.Equal(t, "unsupported file type text/plain; charset=utf-8: /tmp/a.txt", unsupported.Error())
}
