package extraction

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageSource is the page-level view of a PDF used to assemble its text.
type pageSource interface {
	NumPage() int
	// PageText returns the text of page i (1-based). Pages without a text
	// layer return "".
	PageText(i int) (string, error)
}

type pdfPages struct {
	r *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.r.NumPage()
}

func (p pdfPages) PageText(i int) (string, error) {
	page := p.r.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	return joinPages(pdfPages{r: r})
}

// joinPages joins page texts with "\n". Every page contributes an entry, so
// an image-only document of n pages yields n-1 newlines.
func joinPages(src pageSource) (string, error) {
	n := src.NumPage()
	texts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		text, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, "\n"), nil
}
