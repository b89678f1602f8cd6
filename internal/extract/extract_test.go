package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0"?><document><body><p><r><t>` + body + `</t></r></p></body></document>`
	if _, err := w.Write([]byte(xml)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextPlainPassthrough(t *testing.T) {
	got := Text(context.Background(), []byte("hello resume"), "text/plain", "resume.txt")
	assert.Equal(t, "hello resume", got)
}

func TestTextDocx(t *testing.T) {
	data := buildDocx(t, "Senior Engineer at Example Corp")
	got := Text(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx")
	assert.Contains(t, got, "Senior Engineer at Example Corp")
}

func TestTextDocxFromZipMime(t *testing.T) {
	data := buildDocx(t, "Backend work")
	got := Text(context.Background(), data, "application/zip", "resume.docx")
	assert.Contains(t, got, "Backend work")
}

func TestTextUnsupportedTypeDegrades(t *testing.T) {
	got := Text(context.Background(), []byte{0x00, 0x01}, "image/png", "photo.png")
	assert.Equal(t, "[Resume uploaded as photo.png; text extraction not supported]", got)
}

func TestTextCorruptPDFDegrades(t *testing.T) {
	got := Text(context.Background(), []byte("not a pdf"), "application/pdf", "resume.pdf")
	assert.Equal(t, "[Resume uploaded as resume.pdf; text extraction not supported]", got)
}

func TestTextEmptyPayloadDegrades(t *testing.T) {
	got := Text(context.Background(), nil, "application/pdf", "resume.pdf")
	assert.Equal(t, "[Resume uploaded as resume.pdf; text extraction not supported]", got)
}
