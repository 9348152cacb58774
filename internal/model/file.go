package model

import (
	"encoding/base64"
	"fmt"
)

// FileAttachment represents an uploaded blob stored inline in a document.
// The shape is shared by everything that stores or downloads files (company
// logos, verification documents, generated report PDFs), so it must stay
// exactly {name, type, size, base64}.
type FileAttachment struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Size   int    `json:"size"`
	Base64 string `json:"base64"`
}

// NewFileAttachment encodes raw content into the inline attachment shape.
func NewFileAttachment(name, mimeType string, content []byte) FileAttachment {
	return FileAttachment{
		Name:   name,
		Type:   mimeType,
		Size:   len(content),
		Base64: base64.StdEncoding.EncodeToString(content),
	}
}

// Bytes decodes the attachment content.
func (f FileAttachment) Bytes() ([]byte, error) {
	content, err := base64.StdEncoding.DecodeString(f.Base64)
	if err != nil {
		return nil, fmt.Errorf("decode attachment %q: %w", f.Name, err)
	}
	return content, nil
}
