package domain

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Attachments travel as base64 data URLs, the format produced by the
// storefront's file inputs.

const (
	MaxReceiptSize = 5 * 1024 * 1024
	MaxImageSize   = 2 * 1024 * 1024
)

var (
	ErrAttachmentFormat   = errors.New("formato inválido. Aceitos: JPG, PNG ou PDF")
	ErrAttachmentTooLarge = errors.New("o arquivo deve ter no máximo 5MB")
	ErrImageFormat        = errors.New("por favor, selecione apenas arquivos de imagem")
	ErrImageTooLarge      = errors.New("a imagem deve ter no máximo 2MB")
)

var receiptTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// ValidateReceipt checks a PIX payment receipt data URL: JPG, PNG or
// PDF, at most 5MB decoded.
func ValidateReceipt(dataURL string) error {
	mediaType, size, err := parseDataURL(dataURL)
	if err != nil {
		return ErrAttachmentFormat
	}
	if !receiptTypes[mediaType] {
		return ErrAttachmentFormat
	}
	if size > MaxReceiptSize {
		return ErrAttachmentTooLarge
	}
	return nil
}

// ValidateImage checks a product or logo image data URL: any image
// type, at most 2MB decoded.
func ValidateImage(dataURL string) error {
	mediaType, size, err := parseDataURL(dataURL)
	if err != nil {
		return ErrImageFormat
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return ErrImageFormat
	}
	if size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// DecodeDataURL decodes "data:<type>;base64,<payload>" into its media
// type and raw bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, errors.New("not a data url")
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return "", nil, errors.New("missing payload")
	}

	mediaType, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, ";base64") {
		return mediaType, []byte(payload), nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mediaType, data, nil
}

// parseDataURL splits "data:<type>;base64,<payload>" and returns the
// media type and decoded payload size.
func parseDataURL(s string) (string, int, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", 0, errors.New("not a data url")
	}
	rest := strings.TrimPrefix(s, "data:")

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", 0, errors.New("missing payload")
	}

	mediaType, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, ";base64") {
		return mediaType, len(payload), nil
	}

	size := base64.StdEncoding.DecodedLen(len(payload))
	return mediaType, size, nil
}
