package service

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/paperdesk-be/types"
)

// buildPDF assembles a minimal but valid PDF with one text line per page.
// Object layout: 1 catalog, 2 page tree, 3 font, then a page object and a
// content stream per page.
func buildPDF(pageTexts []string) []byte {
	n := len(pageTexts)
	var buf bytes.Buffer
	offsets := make([]int, 0, 3+2*n)

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := 0; i < n; i++ {
		kids += fmt.Sprintf("%d 0 R ", 4+2*i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids, n))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	for i, text := range pageTexts {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n", pageNum, contentNum))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", contentNum, len(stream), stream))
	}

	xrefOffset := buf.Len()
	total := len(offsets) + 1
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", total))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefOffset))

	return buf.Bytes()
}

func pageTexts(n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("PAGE%02d", i+1)
	}
	return texts
}

func TestExtractTextSinglePage(t *testing.T) {
	svc := NewPDFService(10)

	text, err := svc.ExtractText(buildPDF([]string{"Hello paper"}))
	require.NoError(t, err)
	assert.Contains(t, text, "Hello paper")
}

func TestExtractTextConcatenatesPagesInOrder(t *testing.T) {
	svc := NewPDFService(10)

	text, err := svc.ExtractText(buildPDF(pageTexts(3)))
	require.NoError(t, err)
	first := bytes.Index([]byte(text), []byte("PAGE01"))
	second := bytes.Index([]byte(text), []byte("PAGE02"))
	third := bytes.Index([]byte(text), []byte("PAGE03"))
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestExtractTextStopsAtPageLimit(t *testing.T) {
	svc := NewPDFService(10)

	text, err := svc.ExtractText(buildPDF(pageTexts(12)))
	require.NoError(t, err)
	assert.Contains(t, text, "PAGE10")
	assert.NotContains(t, text, "PAGE11")
	assert.NotContains(t, text, "PAGE12")
}

func TestExtractTextGrowsWithMorePages(t *testing.T) {
	svc := NewPDFService(10)

	short, err := svc.ExtractText(buildPDF(pageTexts(2)))
	require.NoError(t, err)
	long, err := svc.ExtractText(buildPDF(pageTexts(5)))
	require.NoError(t, err)
	assert.Greater(t, len(long), len(short))
}

func TestExtractTextInvalidBytes(t *testing.T) {
	svc := NewPDFService(10)

	_, err := svc.ExtractText([]byte("this is not a pdf"))
	var ee *types.ExtractionError
	require.ErrorAs(t, err, &ee)
}

func TestExtractTextDeterministic(t *testing.T) {
	svc := NewPDFService(10)
	data := buildPDF(pageTexts(2))

	a, err := svc.ExtractText(data)
	require.NoError(t, err)
	b, err := svc.ExtractText(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
