package id3

import (
	"errors"
	"fmt"

	binutil "github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

var (
	errTooShort          = errors.New("payload too short")
	errMissingTerminator = errors.New("missing string terminator")
)

// decodeContent routes a payload to the decoder for its frame ID. Layout
// failures are reported as MalformedFrame and leave the content Unknown.
func (s *scanner) decodeContent(f *types.Frame, data []byte, off int64, depth int) types.Content {
	var (
		content types.Content
		err     error
	)

	switch id := f.ID; {
	case id == "COMM" || id == "USLT":
		content, err = s.decodeComment(f, data, off)
	case id == "APIC":
		content, err = s.decodePicture(f, data, off)
	case id == "UFID":
		content, err = decodeUniqueFileID(data, off)
	case id == "CHAP":
		content, err = s.decodeChapter(f, data, off, depth)
	case id == "CTOC":
		content, err = s.decodeTableOfContents(f, data, off, depth)
	case id == "TXXX":
		content, err = s.decodeUserText(f, data, off)
	case id == "WXXX":
		content, err = s.decodeUserURL(f, data, off)
	case id[0] == 'T':
		content, err = s.decodeText(f, data, off)
	case id[0] == 'W':
		content = types.URL{URL: latin1(trimTerminator(types.EncodingLatin1, data))}
	default:
		if !Known(id) {
			s.col.addf(&f.Issues, types.SeverityInfo, types.CodeUnknownFrameID, f.Offset,
				"frame ID %s is not defined by ID3v2.3 or ID3v2.4", id)
		}
		content = types.Unknown{Data: data}
	}

	if err != nil {
		s.col.addf(&f.Issues, types.SeverityWarning, types.CodeMalformedFrame, off, "frame %s: %v", f.ID, err)
		return types.Unknown{Data: data}
	}
	return content
}

// <encoding> <text> [00 <text>]...
func (s *scanner) decodeText(f *types.Frame, data []byte, off int64) (types.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: no encoding byte", errTooShort)
	}
	enc := s.textEncoding(f, data[0], off)
	return types.Text{Encoding: enc, Values: splitStrings(enc, data[1:])}, nil
}

// <encoding> <description> 00 <value> [00 <value>]...
func (s *scanner) decodeUserText(f *types.Frame, data []byte, off int64) (types.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: no encoding byte", errTooShort)
	}
	enc := s.textEncoding(f, data[0], off)
	c := binutil.NewCursor(data[1:], off+1)
	desc, ok := c.Terminated(enc.TerminatorWidth())
	if !ok {
		return nil, fmt.Errorf("%w after description", errMissingTerminator)
	}
	return types.UserText{
		Encoding:    enc,
		Description: decodeString(enc, desc),
		Values:      splitStrings(enc, c.Rest()),
	}, nil
}

// <encoding> <description> 00 <latin-1 url>
func (s *scanner) decodeUserURL(f *types.Frame, data []byte, off int64) (types.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: no encoding byte", errTooShort)
	}
	enc := s.textEncoding(f, data[0], off)
	c := binutil.NewCursor(data[1:], off+1)
	desc, ok := c.Terminated(enc.TerminatorWidth())
	if !ok {
		return nil, fmt.Errorf("%w after description", errMissingTerminator)
	}
	return types.UserURL{
		Encoding:    enc,
		Description: decodeString(enc, desc),
		URL:         latin1(trimTerminator(types.EncodingLatin1, c.Rest())),
	}, nil
}

// <encoding> <language:3> <description> 00 <text>
func (s *scanner) decodeComment(f *types.Frame, data []byte, off int64) (types.Content, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %d bytes, need encoding and language", errTooShort, len(data))
	}
	enc := s.textEncoding(f, data[0], off)
	c := binutil.NewCursor(data[4:], off+4)
	desc, ok := c.Terminated(enc.TerminatorWidth())
	if !ok {
		return nil, fmt.Errorf("%w after description", errMissingTerminator)
	}
	return types.Comment{
		Encoding:    enc,
		Language:    latin1(data[1:4]),
		Description: decodeString(enc, desc),
		Text:        decodeString(enc, trimTerminator(enc, c.Rest())),
	}, nil
}

// <latin-1 owner> 00 <identifier>
func decodeUniqueFileID(data []byte, off int64) (types.Content, error) {
	c := binutil.NewCursor(data, off)
	owner, ok := c.Terminated(1)
	if !ok {
		return nil, fmt.Errorf("%w after owner", errMissingTerminator)
	}
	return types.UniqueFileID{Owner: latin1(owner), Identifier: c.Rest()}, nil
}
