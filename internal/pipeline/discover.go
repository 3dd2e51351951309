package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover collects .mp4 files under inputDir and returns the paths sorted
// lexicographically for deterministic processing order. Non-recursive mode
// lists only the directory itself; recursive mode walks subdirectories.
// When match is non-empty, basenames must also satisfy the glob.
//
// An unreadable input directory is the one fatal error in the program;
// everything downstream of discovery recovers per file.
func Discover(inputDir string, recursive bool, match string) ([]string, error) {
	var files []string

	keep := func(path, name string) {
		if !strings.EqualFold(filepath.Ext(name), ".mp4") {
			return
		}
		if match != "" {
			ok, err := doublestar.Match(match, name)
			if err != nil || !ok {
				return
			}
		}
		files = append(files, path)
	}

	if recursive {
		err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			keep(path, d.Name())
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(inputDir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			keep(filepath.Join(inputDir, e.Name()), e.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}
