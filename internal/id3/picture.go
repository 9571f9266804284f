package id3

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF dimensions
	_ "image/jpeg" // JPEG dimensions
	_ "image/png"  // PNG dimensions
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // BMP dimensions
	_ "golang.org/x/image/tiff" // TIFF dimensions
	_ "golang.org/x/image/webp" // WebP dimensions

	binutil "github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

// decodePicture parses an APIC frame:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type (ISO-8859-1)
//	[1 byte]              Picture type
//	[null-terminated]     Description (frame encoding)
//	[remaining]           Picture data
func (s *scanner) decodePicture(f *types.Frame, data []byte, off int64) (types.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: no encoding byte", errTooShort)
	}
	enc := s.textEncoding(f, data[0], off)

	c := binutil.NewCursor(data[1:], off+1)
	mime, ok := c.Terminated(1)
	if !ok {
		return nil, fmt.Errorf("%w after MIME type", errMissingTerminator)
	}
	pictureType := binutil.Next[uint8](c, "picture type")
	if err := c.Err(); err != nil {
		return nil, err
	}
	desc, ok := c.Terminated(enc.TerminatorWidth())
	if !ok {
		return nil, fmt.Errorf("%w after description", errMissingTerminator)
	}

	pic := types.AttachedPicture{
		Encoding:    enc,
		MIMEType:    latin1(mime),
		PictureType: types.PictureType(pictureType),
		Description: decodeString(enc, desc),
		Data:        c.Rest(),
	}

	if s.policy.DecodeImages && len(pic.Data) > 0 {
		s.analyzePicture(f, &pic, c.Offset())
	}
	return pic, nil
}

// analyzePicture sniffs the image bytes and reads their dimensions.
func (s *scanner) analyzePicture(f *types.Frame, pic *types.AttachedPicture, off int64) {
	detected := mimetype.Detect(pic.Data)
	pic.DetectedMIMEType = detected.String()

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(pic.Data)); err == nil {
		pic.Width, pic.Height = cfg.Width, cfg.Height
	}

	declared := normalizeMIME(pic.MIMEType)
	if declared == "" || !strings.HasPrefix(pic.DetectedMIMEType, "image/") {
		return
	}
	if !detected.Is(declared) {
		s.col.addf(&f.Issues, types.SeverityInfo, types.CodeMIMEMismatch, off,
			"picture declared as %q but data looks like %s", pic.MIMEType, pic.DetectedMIMEType)
	}
}

// normalizeMIME maps common declared values onto registered MIME types.
// It returns "" for values that cannot be compared, such as the "-->"
// link marker.
func normalizeMIME(declared string) string {
	m := strings.ToLower(strings.TrimSpace(declared))
	switch {
	case m == "" || m == "-->":
		return ""
	case m == "image/jpg":
		return "image/jpeg"
	case !strings.Contains(m, "/"):
		// Bare format names such as "PNG" or "JPG".
		if m == "jpg" {
			m = "jpeg"
		}
		return "image/" + m
	default:
		return m
	}
}
