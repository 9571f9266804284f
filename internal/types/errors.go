package types

import (
	"errors"
	"fmt"
)

// ErrStrict is wrapped by every StrictError.
var ErrStrict = errors.New("strict mode: dissection has issues")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the input is not an ID3v2.3/2.4 tag.
//
// Callers use it to fall back to generic handling; the accompanying
// Dissection still carries the header bytes that could be read.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported format: %s", e.Reason)
	}
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// TagTooLargeError is returned when a tag's declared size is above the hard cap.
// No frames are scanned for such a tag.
type TagTooLargeError struct {
	Path  string
	Size  uint32
	Limit uint32
}

func (e *TagTooLargeError) Error() string {
	msg := fmt.Sprintf("tag size %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

// StrictError is returned in strict mode when a dissection carries any
// warning or error issue.
type StrictError struct {
	Path  string
	Issue Issue
	Count int
}

func (e *StrictError) Error() string {
	prefix := "strict dissection failed"
	if e.Path != "" {
		prefix = e.Path + ": " + prefix
	}
	return fmt.Sprintf("%s: %d issue(s), first: %s", prefix, e.Count, e.Issue)
}

func (e *StrictError) Unwrap() error {
	return ErrStrict
}

// IsRejection reports whether err means the tag was rejected before frame
// scanning (bad header or oversized tag). Such errors come with a non-nil
// Dissection describing the rejection.
func IsRejection(err error) bool {
	var unsupported *UnsupportedFormatError
	var tooLarge *TagTooLargeError
	return errors.As(err, &unsupported) || errors.As(err, &tooLarge)
}

// Severity ranks an Issue.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText renders the severity by name in reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Code classifies an Issue.
type Code string

const (
	CodeMalformedHeader        Code = "MalformedHeader"
	CodeSynchsafeViolation     Code = "SynchsafeViolation"
	CodeSizeExceeded           Code = "SizeExceeded"
	CodeTruncated              Code = "Truncated"
	CodeUnknownFrameID         Code = "UnknownFrameId"
	CodeInvalidTextEncoding    Code = "InvalidTextEncoding"
	CodeRecursionDepthExceeded Code = "RecursionDepthExceeded"
	CodeTagSize                Code = "TagSize"
	CodeInvalidFrameID         Code = "InvalidFrameId"
	CodeEmptyFrame             Code = "EmptyFrame"
	CodeMalformedFrame         Code = "MalformedFrame"
	CodeUnsupportedFrameFlags  Code = "UnsupportedFrameFlags"
	CodeInvalidExtendedHeader  Code = "InvalidExtendedHeader"
	CodeMissingFooter          Code = "MissingFooter"
	CodeMIMEMismatch           Code = "MIMEMismatch"
)

// Issue is a structural anomaly found while dissecting.
//
// Issues are attached to the tag or to the specific frame they concern.
// Only SizeExceeded and MalformedHeader stop a dissection; every other
// issue is local and scanning continues with the next frame.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     Code     `json:"code"`
	Message  string   `json:"message"`

	// Offset is the byte offset within the tag (header byte 0 = offset 0)
	// where the issue was found.
	Offset int64 `json:"offset"`
}

// String returns a human-readable issue line.
func (i Issue) String() string {
	return fmt.Sprintf("%s %s (at offset %d): %s", i.Severity, i.Code, i.Offset, i.Message)
}

// Fatal reports whether the issue rejected the whole tag.
func (i Issue) Fatal() bool {
	return i.Code == CodeSizeExceeded || i.Code == CodeMalformedHeader
}
