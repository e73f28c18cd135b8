package validation

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the largest photo, in bytes before encoding, the
// employee form accepts.
const MaxImageSize = 2 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds 2MB")
	ErrImageEncoding = errors.New("image encoding failed")
)

// Messages shown under the photo picker.
const (
	MsgImageTooLarge = "Image size must be less than 2MB"
	MsgImageEncoding = "Failed to process image"
)

// EncodeImage reads an uploaded photo and returns it as a data URI.
//
// size is the size the client declared for the file. Anything above
// MaxImageSize is rejected before a single byte is read; the read itself
// is also capped so a lying client cannot push more than the limit
// through. Non-image content is rejected with ErrImageEncoding.
//
// The caller applies the result to the form only when err is nil; on
// error the form keeps whatever image it had.
func EncodeImage(ctx context.Context, r io.Reader, size int64) (string, error) {
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageEncoding, err)
	}
	if n > MaxImageSize {
		return "", ErrImageTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mtype := mimetype.Detect(buf.Bytes())
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: unsupported content type %s", ErrImageEncoding, mtype.String())
	}

	return "data:" + mediaType(mtype) + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// mediaType strips parameters such as "; charset=utf-8" that mimetype
// attaches to text-based formats like SVG.
func mediaType(m *mimetype.MIME) string {
	t, _, _ := strings.Cut(m.String(), ";")
	return t
}

// ImageError returns the form message for an EncodeImage error, or ""
// for nil.
func ImageError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrImageTooLarge):
		return MsgImageTooLarge
	default:
		return MsgImageEncoding
	}
}
