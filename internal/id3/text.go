package id3

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	binutil "github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

var textEncodings = map[types.TextEncoding]encoding.Encoding{
	types.EncodingLatin1:  charmap.ISO8859_1,
	types.EncodingUTF16:   unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM),
	types.EncodingUTF16BE: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	types.EncodingUTF8:    unicode.UTF8,
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeString converts one encoded field (without terminator) to UTF-8.
// Undecodable sequences become U+FFFD.
func decodeString(enc types.TextEncoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if enc == types.EncodingUTF16 && !hasBOM(b) {
		// Missing BOM: fall back to big-endian as most readers do.
		enc = types.EncodingUTF16BE
	}
	e, ok := textEncodings[enc]
	if !ok {
		e = charmap.ISO8859_1
	}
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func hasBOM(b []byte) bool {
	return len(b) >= 2 && (b[0] == 0xFF && b[1] == 0xFE || b[0] == 0xFE && b[1] == 0xFF)
}

func littleEndianBOM(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE
}

// latin1 decodes an ISO-8859-1 field.
func latin1(b []byte) string {
	return decodeString(types.EncodingLatin1, b)
}

// splitStrings splits terminator-separated values. A trailing terminator
// does not produce an extra empty value. In UTF-16 frames a value without
// a BOM inherits the byte order of the first value.
func splitStrings(enc types.TextEncoding, b []byte) []string {
	width := enc.TerminatorWidth()
	values := []string{}
	le := enc == types.EncodingUTF16 && littleEndianBOM(b)
	decode := func(v []byte) string {
		if le && len(v) > 0 && !hasBOM(v) {
			if out, err := utf16LE.NewDecoder().Bytes(v); err == nil {
				return string(out)
			}
		}
		return decodeString(enc, v)
	}
	for len(b) > 0 {
		i := binutil.IndexTerminator(b, width)
		if i < 0 {
			values = append(values, decode(b))
			break
		}
		values = append(values, decode(b[:i]))
		b = b[i+width:]
	}
	return values
}

// trimTerminator returns b up to its first terminator, if any.
func trimTerminator(enc types.TextEncoding, b []byte) []byte {
	if i := binutil.IndexTerminator(b, enc.TerminatorWidth()); i >= 0 {
		return b[:i]
	}
	return b
}

// textEncoding validates an encoding byte for the tag version. Undefined
// values fall back to ISO-8859-1; encodings the version does not define are
// still honoured but reported.
func (s *scanner) textEncoding(f *types.Frame, b byte, off int64) types.TextEncoding {
	enc := types.TextEncoding(b)
	if !enc.Valid() {
		s.col.addf(&f.Issues, types.SeverityWarning, types.CodeInvalidTextEncoding, off,
			"frame %s: text encoding byte 0x%02X is undefined, decoded as ISO-8859-1", f.ID, b)
		return types.EncodingLatin1
	}
	if !s.spec.encodings(enc) {
		s.col.addf(&f.Issues, types.SeverityWarning, types.CodeInvalidTextEncoding, off,
			"frame %s: %s is not defined in ID3v2.%d", f.ID, enc, s.spec.major)
	}
	return enc
}
