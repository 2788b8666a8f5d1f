/*
Package storage provides the asset host integration: S3-compatible object
storage for message and profile images.

This file handles decoding of inline image payloads. Clients submit images as
base64 data URIs; the decoded bytes are uploaded and only the resulting public
URL is ever persisted.
*/
package storage

import (
	"encoding/base64"
	"strings"

	"dmchat/internal/pkg/errs"
)

const (
	// MaxImageSizeMB is the maximum allowed decoded image size in megabytes.
	MaxImageSizeMB = 8

	// MaxImageSize is the maximum allowed decoded image size in bytes.
	MaxImageSize = MaxImageSizeMB * 1024 * 1024
)

// allowedImageMIMETypes defines the set of permitted MIME types for inline images,
// mapped to the file extension used for the stored object key.
var allowedImageMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageData is a decoded inline image ready for upload.
type ImageData struct {
	// Bytes is the raw image payload.
	Bytes []byte

	// ContentType is the declared MIME type, e.g. "image/png".
	ContentType string

	// Ext is the object key extension matching the MIME type, e.g. ".png".
	Ext string
}

// ParseImageDataURI decodes a "data:image/<type>;base64,<payload>" string and
// validates its MIME type and decoded size. All failures map to client errors;
// nothing is uploaded or persisted for a rejected image.
func ParseImageDataURI(dataURI string) (*ImageData, *errs.CustomError) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return nil, errs.NewError(errs.ErrImageInvalid)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errs.NewError(errs.ErrImageInvalid)
	}

	mimeType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return nil, errs.NewError(errs.ErrImageInvalid)
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	ext, ok := allowedImageMIMETypes[mimeType]
	if !ok {
		return nil, errs.NewError(errs.ErrImageInvalid)
	}

	// Reject oversized payloads before decoding; base64 inflates by ~4/3.
	if len(payload) > (MaxImageSize/3+1)*4 {
		return nil, errs.NewError(errs.ErrImageTooLarge)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errs.NewError(errs.ErrImageInvalid)
	}

	if len(decoded) == 0 {
		return nil, errs.NewError(errs.ErrImageInvalid)
	}

	if len(decoded) > MaxImageSize {
		return nil, errs.NewError(errs.ErrImageTooLarge)
	}

	return &ImageData{
		Bytes:       decoded,
		ContentType: mimeType,
		Ext:         ext,
	}, nil
}
