package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAttachmentRoundTrip(t *testing.T) {
	content := []byte("%PDF-1.4 fake report")
	f := NewFileAttachment("report.pdf", "application/pdf", content)

	assert.Equal(t, "report.pdf", f.Name)
	assert.Equal(t, "application/pdf", f.Type)
	assert.Equal(t, len(content), f.Size)

	decoded, err := f.Bytes()
	assert.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestFileAttachmentBadBase64(t *testing.T) {
	f := FileAttachment{Name: "x", Base64: "not base64!!"}
	_, err := f.Bytes()
	assert.Error(t, err)
}
