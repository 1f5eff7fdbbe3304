package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Metadata URI schemes. Exactly one is produced per record.
const (
	RemoteURIPrefix = "ipfs://"
	InlineURIPrefix = "data:application/json;base64,"
)

// MetadataRecord is the token metadata document and where it lives.
type MetadataRecord struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URI         string `json:"-"`
}

// IsInline reports whether the document is embedded in a data: URI.
func (m *MetadataRecord) IsInline() bool {
	return strings.HasPrefix(m.URI, InlineURIPrefix)
}

// PlaceholderImage is a 1x1 PNG used when no hosted image exists.
const PlaceholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// Document returns the JSON metadata document.
func (m *MetadataRecord) Document() ([]byte, error) {
	doc, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding metadata document: %w", err)
	}
	return doc, nil
}

// InlineURI embeds the document in a data:application/json;base64 URI.
func (m *MetadataRecord) InlineURI() (string, error) {
	doc, err := m.Document()
	if err != nil {
		return "", err
	}
	return InlineURIPrefix + base64.StdEncoding.EncodeToString(doc), nil
}
