package probe

import (
	"fmt"
	"time"
)

// Result is the parsed output of a single ffprobe call: the container
// creation timestamp and the playback duration in seconds.
//
// GoPro writes the session's initial creation time into every chapter
// file, so CreationTime is only authoritative for a session's first
// chapter; later chapters derive their timestamps from durations.
type Result struct {
	CreationTime time.Time
	Duration     float64 // seconds, sub-second precision preserved
	FormatName   string
	Size         int64
}

// MetadataError reports that ffprobe failed for a file or returned output
// missing the fields we need. Per-file failures are warned about and
// skipped; they never abort the batch.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata unavailable for %q: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }
