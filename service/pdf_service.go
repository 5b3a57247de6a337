package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/tieubaoca/paperdesk-be/types"
)

// PDFService extracts plain text from PDF bytes. Only the first maxPages
// pages are read; page texts are concatenated in order with no separator,
// matching what downstream prompts expect.
type PDFService struct {
	maxPages int
}

const defaultMaxPages = 10

func NewPDFService(maxPages int) *PDFService {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &PDFService{maxPages: maxPages}
}

func (s *PDFService) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &types.ExtractionError{Msg: "failed to parse PDF", Err: err}
	}

	numPages := reader.NumPage()
	if numPages > s.maxPages {
		numPages = s.maxPages
	}

	var buf bytes.Buffer
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			return "", &types.ExtractionError{
				Msg: fmt.Sprintf("failed to read page %d", pageNum),
			}
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &types.ExtractionError{
				Msg: fmt.Sprintf("failed to extract text from page %d", pageNum),
				Err: err,
			}
		}
		buf.WriteString(text)
	}

	return buf.String(), nil
}
