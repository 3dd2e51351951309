package display

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/videometa/internal/session"
)

var sampleRecords = []session.Record{
	{
		File:     "GX010042.MP4",
		Folder:   ".",
		Start:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Stop:     time.Date(2024, 1, 1, 10, 1, 0, 0, time.UTC),
		Duration: 60.0,
		Session:  42,
		Chapter:  1,
	},
	{
		File:     "GX020042.MP4",
		Folder:   ".",
		Start:    time.Date(2024, 1, 1, 10, 1, 0, 0, time.UTC),
		Stop:     time.Date(2024, 1, 1, 10, 1, 45, 500_000_000, time.UTC),
		Duration: 45.5,
		Session:  42,
		Chapter:  2,
	},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecords))

	out := buf.String()

	// Deterministic field order from the struct tags.
	iFile := strings.Index(out, `"file"`)
	iFolder := strings.Index(out, `"folder"`)
	iStart := strings.Index(out, `"start_time"`)
	iStop := strings.Index(out, `"stop_time"`)
	iDur := strings.Index(out, `"duration"`)
	iSess := strings.Index(out, `"session"`)
	iChap := strings.Index(out, `"chapter"`)
	assert.True(t, iFile < iFolder && iFolder < iStart && iStart < iStop &&
		iStop < iDur && iDur < iSess && iSess < iChap, "field order: %s", out)

	// ISO-8601 timestamps with sub-second precision preserved.
	assert.Contains(t, out, `"2024-01-01T10:00:00Z"`)
	assert.Contains(t, out, `"2024-01-01T10:01:45.5Z"`)
	assert.Contains(t, out, `"duration": 45.5`)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()), "no records must serialize as an empty array, not null")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Filename", "Start Time", "Stop Time", "Duration", "Chapter", "Session", "Folder"}, rows[0])
	assert.Equal(t, "GX010042.MP4", rows[1][0])
	assert.Equal(t, "2024-01-01T10:00:00Z", rows[1][1])
	assert.Equal(t, "00:01:00.00", rows[1][3])
	assert.Equal(t, "2", rows[2][4])
	assert.Equal(t, "42", rows[2][5])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleRecords))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, two rows

	assert.Contains(t, lines[0], "File")
	assert.Contains(t, lines[0], "Session")
	assert.Contains(t, lines[2], "GX010042.MP4")
	assert.Contains(t, lines[3], "00:00:45.50")

	// All rows align to the header grid.
	sep := lines[1]
	for _, l := range []string{lines[0], lines[2], lines[3]} {
		assert.LessOrEqual(t, len(l), len(sep)+1)
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))
	assert.Contains(t, buf.String(), "No records")
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00.00"},
		{90, "00:01:30.00"},
		{3661, "01:01:01.00"},
		{45.5, "00:00:45.50"},
		{531.264, "00:08:51.26"},
		// Fractions that round up must carry instead of printing ":60".
		{59.999, "00:01:00.00"},
		{119.997, "00:02:00.00"},
		{3599.999, "01:00:00.00"},
		{59.994, "00:00:59.99"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSeconds(tc.in), "FormatSeconds(%v)", tc.in)
	}
}
