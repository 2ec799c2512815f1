package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwielgus/townpress"
)

// ReadFailure records a discovered document that could not be read.
type ReadFailure struct {
	Path string
	Err  error
}

// FindHTMLFiles walks sourceDir recursively and loads every .html and .htm
// file as a Document. Paths are sorted lexicographically before positions are
// assigned, so discovery order is stable across runs and filesystems.
//
// Files that cannot be read are skipped and reported as ReadFailures rather
// than aborting discovery; only an empty result is fatal.
func FindHTMLFiles(sourceDir string) ([]*townpress.Document, []ReadFailure, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, townpress.Errorf(townpress.ENOTFOUND, "source directory %q does not exist", sourceDir)
		}
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, townpress.Errorf(townpress.EINVALID, "source path %q is not a directory", sourceDir)
	}

	var paths []string
	var skipped []ReadFailure
	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			skipped = append(skipped, ReadFailure{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".html" || ext == ".htm" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Strings(paths)

	docs := make([]*townpress.Document, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, ReadFailure{Path: path, Err: err})
			continue
		}
		docs = append(docs, &townpress.Document{
			Path: path,
			Name: filepath.Base(path),
			// Malformed byte sequences become replacement characters so a
			// partially corrupt mirror still converts.
			RawHTML:  strings.ToValidUTF8(string(raw), "�"),
			Position: len(docs),
		})
	}

	if len(docs) == 0 {
		if len(skipped) > 0 {
			return nil, nil, townpress.Errorf(townpress.ENOTFOUND, "no readable HTML documents in %q", sourceDir)
		}
		return nil, nil, townpress.Errorf(townpress.ENOTFOUND, "no HTML documents found in %q", sourceDir)
	}

	return docs, skipped, nil
}
