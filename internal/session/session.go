// Package session groups parsed GoPro files into recording sessions and
// computes the per-chapter start/stop timeline.
//
// The camera stamps every chapter of a recording with the session's
// initial creation time, so only the first chapter's timestamp is real.
// Later chapters are placed back to back: each starts where the previous
// one stopped, which yields a gap-free, non-decreasing timeline whose last
// stop equals the first creation time plus the sum of all durations.
package session

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/backmassage/videometa/internal/gopro"
)

// File is one probed GoPro chapter: the parsed filename fields plus the
// container metadata. Immutable once built.
type File struct {
	gopro.FileInfo
	CreationTime time.Time
	Duration     float64 // seconds
}

// Session is an ordered set of chapters sharing one session number,
// sorted by chapter ascending.
type Session struct {
	ID    int
	Files []File
}

// Record is the computed timeline entry for one chapter. Field order
// matches the serialized output (JSON keys, CSV columns).
type Record struct {
	File     string    `json:"file"`
	Folder   string    `json:"folder"`
	Start    time.Time `json:"start_time"`
	Stop     time.Time `json:"stop_time"`
	Duration float64   `json:"duration"`
	Session  int       `json:"session"`
	Chapter  int       `json:"chapter"`
}

// IncompleteSessionError reports a session whose chapter numbering is not
// contiguous (missing or duplicate chapters). The session is excluded from
// timestamp calculation and the error surfaces as a warning; chapters are
// never silently renumbered.
type IncompleteSessionError struct {
	Session  int
	Chapters []int
}

func (e *IncompleteSessionError) Error() string {
	return fmt.Sprintf("session %04d has non-contiguous chapters %v", e.Session, e.Chapters)
}

// Group partitions files by session number and sorts each session's
// chapters ascending. Sessions with chapter gaps or duplicates are
// excluded and reported via the returned error list; complete sessions
// are returned sorted by session number.
func Group(files []File) ([]Session, []error) {
	bySession := make(map[int][]File)
	for _, f := range files {
		bySession[f.Session] = append(bySession[f.Session], f)
	}

	ids := make([]int, 0, len(bySession))
	for id := range bySession {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	sessions := make([]Session, 0, len(ids))
	var errs []error
	for _, id := range ids {
		chapters := bySession[id]
		sort.Slice(chapters, func(i, j int) bool {
			return chapters[i].Chapter < chapters[j].Chapter
		})

		if !contiguous(chapters) {
			nums := make([]int, len(chapters))
			for i, f := range chapters {
				nums[i] = f.Chapter
			}
			errs = append(errs, &IncompleteSessionError{Session: id, Chapters: nums})
			continue
		}

		sessions = append(sessions, Session{ID: id, Files: chapters})
	}
	return sessions, errs
}

// contiguous reports whether chapter numbers (already sorted) run without
// gaps or duplicates from 0 or 1. Older firmware starts chapters at 00,
// current firmware at 01; both are accepted.
func contiguous(files []File) bool {
	if len(files) == 0 {
		return false
	}
	first := files[0].Chapter
	if first != 0 && first != 1 {
		return false
	}
	for i, f := range files {
		if f.Chapter != first+i {
			return false
		}
	}
	return true
}

// Timeline computes start/stop records for every chapter in the session.
// The first chapter starts at its reported creation time; each subsequent
// chapter starts exactly where the previous one stopped.
func (s Session) Timeline() []Record {
	records := make([]Record, 0, len(s.Files))
	var start time.Time
	for i, f := range s.Files {
		if i == 0 {
			start = f.CreationTime
		}
		// Prefer the on-disk name; fall back to the canonical
		// reconstruction for files built directly from parsed fields.
		name := f.Filename()
		if f.Path != "" {
			name = filepath.Base(f.Path)
		}

		stop := start.Add(secondsToDuration(f.Duration))
		records = append(records, Record{
			File:     name,
			Folder:   f.Folder,
			Start:    start,
			Stop:     stop,
			Duration: f.Duration,
			Session:  f.Session,
			Chapter:  f.Chapter,
		})
		start = stop
	}
	return records
}

// secondsToDuration converts float seconds to time.Duration, keeping
// sub-second precision (nanosecond resolution is far below what the
// container reports).
func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
