package types

import (
	"fmt"
	"strings"
)

// TextEncoding is the encoding byte that prefixes ID3v2 text fields.
type TextEncoding uint8

const (
	EncodingLatin1  TextEncoding = 0 // ISO-8859-1
	EncodingUTF16   TextEncoding = 1 // UTF-16 with BOM
	EncodingUTF16BE TextEncoding = 2 // UTF-16BE without BOM (v2.4 only)
	EncodingUTF8    TextEncoding = 3 // UTF-8 (v2.4 only)
)

// String returns the encoding name.
func (e TextEncoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(e))
	}
}

// Valid reports whether e is one of the four defined encodings.
func (e TextEncoding) Valid() bool {
	return e <= EncodingUTF8
}

// TerminatorWidth returns the size in bytes of a string terminator.
func (e TextEncoding) TerminatorWidth() int {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return 2
	}
	return 1
}

// MarshalText renders the encoding by name in reports.
func (e TextEncoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// FrameKind names the decoded shape of a frame's content.
type FrameKind int

const (
	KindUnknown FrameKind = iota
	KindText
	KindURL
	KindUserText
	KindUserURL
	KindComment
	KindPicture
	KindUniqueFileID
	KindChapter
	KindTableOfContents
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindText:            "text",
	KindURL:             "url",
	KindUserText:        "user_text",
	KindUserURL:         "user_url",
	KindComment:         "comment",
	KindPicture:         "picture",
	KindUniqueFileID:    "unique_file_id",
	KindChapter:         "chapter",
	KindTableOfContents: "table_of_contents",
}

func (k FrameKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("FrameKind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText renders the kind by name in reports.
func (k FrameKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Content is the decoded payload of a frame. The set of implementations is
// closed: Text, URL, UserText, UserURL, Comment, AttachedPicture,
// UniqueFileID, Chapter, TableOfContents and Unknown.
type Content interface {
	Kind() FrameKind
	isContent()
}

// Text is a T*** text information frame. Values holds one entry per
// terminator-separated string.
type Text struct {
	Encoding TextEncoding `json:"encoding"`
	Values   []string     `json:"values"`
}

// URL is a W*** link frame. URLs are always Latin-1.
type URL struct {
	URL string `json:"url"`
}

// UserText is a TXXX user-defined text frame.
type UserText struct {
	Encoding    TextEncoding `json:"encoding"`
	Description string       `json:"description"`
	Values      []string     `json:"values"`
}

// UserURL is a WXXX user-defined link frame.
type UserURL struct {
	Encoding    TextEncoding `json:"encoding"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
}

// Comment is a COMM comment or USLT unsynchronised lyrics frame.
type Comment struct {
	Encoding    TextEncoding `json:"encoding"`
	Language    string       `json:"language"`
	Description string       `json:"description"`
	Text        string       `json:"text"`
}

// UniqueFileID is a UFID frame.
type UniqueFileID struct {
	Owner      string `json:"owner"`
	Identifier []byte `json:"identifier"`
}

// Unknown holds the raw payload of a frame that has no dedicated decoder
// or could not be decoded.
type Unknown struct {
	Data []byte `json:"-"`
}

func (Text) Kind() FrameKind            { return KindText }
func (URL) Kind() FrameKind             { return KindURL }
func (UserText) Kind() FrameKind        { return KindUserText }
func (UserURL) Kind() FrameKind         { return KindUserURL }
func (Comment) Kind() FrameKind         { return KindComment }
func (AttachedPicture) Kind() FrameKind { return KindPicture }
func (UniqueFileID) Kind() FrameKind    { return KindUniqueFileID }
func (Chapter) Kind() FrameKind         { return KindChapter }
func (TableOfContents) Kind() FrameKind { return KindTableOfContents }
func (Unknown) Kind() FrameKind         { return KindUnknown }

func (Text) isContent()            {}
func (URL) isContent()             {}
func (UserText) isContent()        {}
func (UserURL) isContent()         {}
func (Comment) isContent()         {}
func (AttachedPicture) isContent() {}
func (UniqueFileID) isContent()    {}
func (Chapter) isContent()         {}
func (TableOfContents) isContent() {}
func (Unknown) isContent()         {}

// String joins multiple values with " / ".
func (t Text) String() string {
	return strings.Join(t.Values, " / ")
}

// String returns a short description of the raw payload.
func (u Unknown) String() string {
	return fmt.Sprintf("<%d bytes>", len(u.Data))
}
