package extraction

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/nguyenthenguyen/docx"
)

// bodyParagraphs selects the top-level paragraphs of a WordprocessingML body.
const bodyParagraphs = "/w:document/w:body/w:p"

// extractWord reads a Word document and joins its body paragraphs with "\n".
// Legacy binary .doc files are not zip containers and fail to open.
func extractWord(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open Word document: %w", err)
	}
	defer func() { _ = r.Close() }()

	paragraphs, err := paragraphTexts(r.Editable().GetContent())
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphTexts returns the text of each body paragraph of document.xml.
func paragraphTexts(documentXML string) ([]string, error) {
	doc, err := xmlquery.Parse(strings.NewReader(documentXML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document.xml: %w", err)
	}

	nodes, err := xmlquery.QueryAll(doc, bodyParagraphs)
	if err != nil {
		return nil, fmt.Errorf("failed to query paragraphs: %w", err)
	}

	texts := make([]string, 0, len(nodes))
	for _, p := range nodes {
		var sb strings.Builder
		writeRunText(&sb, p)
		texts = append(texts, sb.String())
	}
	return texts, nil
}

// writeRunText appends the visible text under n in document order: text
// runs verbatim, tabs as "\t" and breaks as "\n".
func writeRunText(sb *strings.Builder, n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if c.Prefix == "w" {
			switch c.Data {
			case "t":
				sb.WriteString(c.InnerText())
				continue
			case "tab":
				sb.WriteByte('\t')
				continue
			case "br", "cr":
				sb.WriteByte('\n')
				continue
			}
		}
		writeRunText(sb, c)
	}
}
