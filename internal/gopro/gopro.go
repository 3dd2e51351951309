// Package gopro parses the GoPro chaptered filename convention.
//
// Cameras since the Hero 6 name chaptered video files Gqzzxxxx.MP4, where
// q is the codec marker (X = HEVC, H = AVC), zz is the two-digit chapter
// number, and xxxx is the four-digit session (file) number. All chapters
// of one recording share the session number; the chapter number gives the
// order within the recording.
//
// Upstream docs: https://gopro.github.io/OpenGoPro/http#tag/Media/Chapters
package gopro

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Codec identifies the video codec encoded in the filename marker.
type Codec string

const (
	CodecHEVC Codec = "hevc" // marker "X"
	CodecAVC  Codec = "avc"  // marker "H"
)

// Marker returns the filename marker character for the codec, or "?" for
// unknown values so a zero Codec never reconstructs a valid-looking name.
func (c Codec) Marker() string {
	switch c {
	case CodecHEVC:
		return "X"
	case CodecAVC:
		return "H"
	}
	return "?"
}

// FileInfo holds the fields recovered from one GoPro filename. Path and
// Folder are filled in by the caller after parsing; the parser itself only
// sees the basename.
type FileInfo struct {
	Path    string
	Folder  string
	Codec   Codec
	Chapter int
	Session int
}

// Filename reconstructs the canonical GoPro basename from the parsed
// fields (always upper-case, as the camera writes it).
func (fi FileInfo) Filename() string {
	return fmt.Sprintf("G%s%02d%04d.MP4", fi.Codec.Marker(), fi.Chapter, fi.Session)
}

// ParseError reports a filename that does not match the GoPro convention.
// Such files are skipped with a warning; they never abort a batch.
type ParseError struct {
	Name string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filename %q does not match GoPro convention Gqzzxxxx.MP4", e.Name)
}

// The codec marker and digit groups are strict; only the extension is
// matched case-insensitively (some copy tools lower-case it).
var reFilename = regexp.MustCompile(`^G([XH])([0-9]{2})([0-9]{4})\.(?i:MP4)$`)

// ParseFilename parses a GoPro basename into its codec, chapter, and
// session fields. It returns a *ParseError when the name does not match.
func ParseFilename(basename string) (FileInfo, error) {
	m := reFilename.FindStringSubmatch(basename)
	if m == nil {
		return FileInfo{}, &ParseError{Name: basename}
	}

	codec := CodecAVC
	if strings.ToUpper(m[1]) == "X" {
		codec = CodecHEVC
	}

	chapter, _ := strconv.Atoi(m[2])
	session, _ := strconv.Atoi(m[3])

	return FileInfo{
		Codec:   codec,
		Chapter: chapter,
		Session: session,
	}, nil
}
