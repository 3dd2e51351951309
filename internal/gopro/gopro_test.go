package gopro

import (
	"errors"
	"testing"
)

func TestParseFilename(t *testing.T) {
	cases := []struct {
		name     string
		basename string

		wantCodec   Codec
		wantChapter int
		wantSession int
	}{
		{
			name: "HEVC first chapter", basename: "GX010042.MP4",
			wantCodec: CodecHEVC, wantChapter: 1, wantSession: 42,
		},
		{
			name: "HEVC later chapter", basename: "GX030042.MP4",
			wantCodec: CodecHEVC, wantChapter: 3, wantSession: 42,
		},
		{
			name: "AVC marker", basename: "GH010099.MP4",
			wantCodec: CodecAVC, wantChapter: 1, wantSession: 99,
		},
		{
			name: "lowercase extension", basename: "GX010001.mp4",
			wantCodec: CodecHEVC, wantChapter: 1, wantSession: 1,
		},
		{
			name: "mixed-case extension", basename: "GH120123.Mp4",
			wantCodec: CodecAVC, wantChapter: 12, wantSession: 123,
		},
		{
			name: "max session number", basename: "GX999999.MP4",
			wantCodec: CodecHEVC, wantChapter: 99, wantSession: 9999,
		},
		{
			name: "chapter zero", basename: "GX000042.MP4",
			wantCodec: CodecHEVC, wantChapter: 0, wantSession: 42,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fi, err := ParseFilename(tc.basename)
			if err != nil {
				t.Fatalf("ParseFilename(%q): %v", tc.basename, err)
			}
			if fi.Codec != tc.wantCodec {
				t.Errorf("codec: got %q, want %q", fi.Codec, tc.wantCodec)
			}
			if fi.Chapter != tc.wantChapter {
				t.Errorf("chapter: got %d, want %d", fi.Chapter, tc.wantChapter)
			}
			if fi.Session != tc.wantSession {
				t.Errorf("session: got %d, want %d", fi.Session, tc.wantSession)
			}
		})
	}
}

func TestParseFilenameRejects(t *testing.T) {
	bad := []string{
		"badname.mp4",
		"GX10042.MP4",    // chapter has one digit
		"GX0100425.MP4",  // session has five digits
		"GZ010042.MP4",   // unknown codec marker
		"GX010042.MOV",   // wrong extension
		"GX010042",       // no extension
		"AGX010042.MP4",  // leading junk
		"GX010042.MP4.x", // trailing junk
		"gx010042.mp4",   // lowercase prefix is not what the camera writes
	}

	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFilename(name)
			if err == nil {
				t.Fatalf("ParseFilename(%q): expected error", name)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error type: got %T, want *ParseError", err)
			}
		})
	}
}

// Reconstructing the filename from parsed fields must match the camera's
// canonical form (upper-case extension).
func TestFilenameRoundTrip(t *testing.T) {
	names := []string{"GX010042.MP4", "GH120099.MP4", "GX991234.MP4", "GH000007.MP4"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			fi, err := ParseFilename(name)
			if err != nil {
				t.Fatalf("ParseFilename: %v", err)
			}
			if got := fi.Filename(); got != name {
				t.Errorf("round trip: got %q, want %q", got, name)
			}
		})
	}

	// Lower-case extensions normalize to the canonical upper-case form.
	fi, err := ParseFilename("GX010042.mp4")
	if err != nil {
		t.Fatalf("ParseFilename: %v", err)
	}
	if got := fi.Filename(); got != "GX010042.MP4" {
		t.Errorf("normalized round trip: got %q", got)
	}
}

// A zero-value FileInfo must not reconstruct a parseable filename.
func TestFilenameZeroValueDoesNotRoundTrip(t *testing.T) {
	if got := (Codec("")).Marker(); got != "?" {
		t.Errorf("unknown codec marker: got %q, want %q", got, "?")
	}

	name := FileInfo{}.Filename()
	if _, err := ParseFilename(name); err == nil {
		t.Errorf("ParseFilename(%q): expected error for zero-value reconstruction", name)
	}
}
