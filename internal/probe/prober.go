package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Func is the metadata collaborator the pipeline depends on. Production
// code passes [Probe]; tests substitute a fake so no ffprobe binary is
// needed.
type Func func(ctx context.Context, path string) (*Result, error)

// Probe runs a single ffprobe JSON call against path and returns the
// container creation time and duration. Only the format section is
// requested; per-stream data is irrelevant for timestamp extraction.
func Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, &MetadataError{Path: path, Err: fmt.Errorf("ffprobe: %w", err)}
	}

	res, err := ParseJSON(out)
	if err != nil {
		return nil, &MetadataError{Path: path, Err: err}
	}
	return res, nil
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw.Format)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format ffprobeFormat `json:"format"`
}

type ffprobeFormat struct {
	Filename   string            `json:"filename"`
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	Tags       map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildResult(f *ffprobeFormat) (*Result, error) {
	ct, ok := f.Tags["creation_time"]
	if !ok || strings.TrimSpace(ct) == "" {
		return nil, fmt.Errorf("no creation_time tag in container metadata")
	}
	created, err := parseCreationTime(ct)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(f.Duration) == "" {
		return nil, fmt.Errorf("no duration in container metadata")
	}
	dur, err := strconv.ParseFloat(strings.TrimSpace(f.Duration), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", f.Duration, err)
	}

	return &Result{
		CreationTime: created,
		Duration:     dur,
		FormatName:   f.FormatName,
		Size:         parseInt64(f.Size),
	}, nil
}

// GoPro cameras stamp creation_time as 2024-01-01T10:00:00.000000Z;
// RFC 3339 covers that. The space-separated layout shows up in files
// remuxed by older tools.
var creationTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseCreationTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range creationTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable creation_time %q", s)
}

// ffprobe returns numbers as strings.
func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}
