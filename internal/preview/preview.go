// Package preview inspects PDFs locally so the UI can show a text preview and
// the service can reject multi-page documents before calling the extraction
// service.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFInfo struct {
	PageCount int
	Text      string
}

// InspectPDF parses the document and returns its page count plus whatever
// plain text the pages carry. A scanned page with no text layer yields an
// empty Text, which is not an error: the OCR service is the authority on
// extraction, this is only a preview.
func InspectPDF(data []byte) (*PDFInfo, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages := pdfReader.NumPage()

	var textBuilder strings.Builder
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages without a readable text layer are fine for a preview.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return &PDFInfo{
		PageCount: numPages,
		Text:      strings.TrimSpace(textBuilder.String()),
	}, nil
}
