package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const dataURIPrefix = "data:"

var ErrInvalidDataURI = errors.New("invalid data uri")

// GetContentType returns the media type of a "data:<type>;base64,<payload>" string, or "".
func GetContentType(file string) string {
	start := len(dataURIPrefix)
	end := strings.Index(file, ";base64,")

	if !strings.HasPrefix(file, dataURIPrefix) || end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode splits a base64 data URI into its content type and raw bytes.
func Decode(file string) (contentType string, data []byte, err error) {
	contentType = GetContentType(file)
	if contentType == "" {
		return "", nil, ErrInvalidDataURI
	}

	_, payload, _ := strings.Cut(file, ";base64,")

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}

	return contentType, data, nil
}
