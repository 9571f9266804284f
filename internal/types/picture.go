package types

import "fmt"

// AttachedPicture is an APIC frame.
//
// MIMEType is the value declared in the frame; DetectedMIMEType, Width and
// Height come from sniffing the image bytes and are empty when image
// analysis is disabled or the data is not a recognized image.
type AttachedPicture struct {
	Encoding    TextEncoding `json:"encoding"`
	MIMEType    string       `json:"mime_type"`
	PictureType PictureType  `json:"picture_type"`
	Description string       `json:"description"`

	// Image binary data
	Data []byte `json:"-"`

	DetectedMIMEType string `json:"detected_mime_type,omitempty"`
	Width            int    `json:"width,omitempty"`
	Height           int    `json:"height,omitempty"`
}

// PictureType categorizes the purpose/content of an attached picture.
//
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType uint8

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon (32x32 PNG)",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media (CD/vinyl label)",
	"Lead artist/performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright colored fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/studio logotype",
}

func (p PictureType) String() string {
	if int(p) < len(pictureTypeNames) {
		return pictureTypeNames[p]
	}
	return fmt.Sprintf("PictureType(%d)", uint8(p))
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (a AttachedPicture) String() string {
	dims := ""
	if a.Width > 0 && a.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", a.Width, a.Height)
	}

	mime := a.DetectedMIMEType
	if mime == "" {
		mime = a.MIMEType
	}

	return fmt.Sprintf("%s (%s%s, %s)", a.PictureType, dims, mimeToFormat(mime), formatSize(len(a.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
