// Package display renders computed timestamp records as JSON, CSV, or an
// aligned text table. It only writes to the given writer; file handling
// is the caller's job.
package display

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/backmassage/videometa/internal/session"
)

// WriteJSON writes records as an indented JSON array. Field order is fixed
// by the Record struct tags; timestamps are RFC 3339 with sub-second
// precision preserved.
func WriteJSON(w io.Writer, records []session.Record) error {
	if records == nil {
		records = []session.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// CSV column order matches the legacy report layout.
var csvHeader = []string{"Filename", "Start Time", "Stop Time", "Duration", "Chapter", "Session", "Folder"}

// WriteCSV writes records with a header row. Timestamps are RFC 3339;
// durations are rendered as HH:MM:SS.ss clock values.
func WriteCSV(w io.Writer, records []session.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.File,
			r.Start.Format(time.RFC3339Nano),
			r.Stop.Format(time.RFC3339Nano),
			FormatSeconds(r.Duration),
			strconv.Itoa(r.Chapter),
			strconv.Itoa(r.Session),
			r.Folder,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes an aligned text table. Column widths are computed from
// the data so long folder paths don't wreck the layout.
func WriteTable(w io.Writer, records []session.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records.")
		return err
	}

	const timeLayout = "2006-01-02 15:04:05.000"

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.File,
			r.Start.Format(timeLayout),
			r.Stop.Format(timeLayout),
			FormatSeconds(r.Duration),
			fmt.Sprintf("%02d", r.Chapter),
			fmt.Sprintf("%04d", r.Session),
			r.Folder,
		})
	}

	header := []string{"File", "Start", "Stop", "Duration", "Ch", "Session", "Folder"}
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.Reset()
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	writeRow(header)
	total := 2 * (len(widths) - 1)
	for _, wd := range widths {
		total += wd
	}
	fmt.Fprintln(w, strings.Repeat("─", total))
	for _, row := range rows {
		writeRow(row)
	}
	return nil
}

// FormatSeconds converts float seconds to an HH:MM:SS.ss clock value
// (e.g. 90.5 → "00:01:30.50"). Rounding to centiseconds happens before
// the split so values like 119.997 carry into the minute instead of
// printing an invalid ":60".
func FormatSeconds(seconds float64) string {
	cs := int64(math.Round(seconds * 100))
	hours := cs / 360000
	minutes := (cs % 360000) / 6000
	rest := cs % 6000
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, rest/100, rest%100)
}
