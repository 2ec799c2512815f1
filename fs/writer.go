// Package fs writes the generated site to disk with atomic update semantics.
// The whole output tree is staged in a temporary directory and moved into
// place on Commit, so an interrupted run never leaves a half-written site.
package fs

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/render"
)

// imageExts are the source asset extensions copied into the output tree.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
	".webp": true,
	".ico":  true,
}

// SiteWriter writes a canonical site as a static HTML tree.
// Files are staged in baseDir/name.tmp and moved to baseDir/name on Commit.
type SiteWriter struct {
	baseDir  string
	name     string
	renderer *render.Renderer
}

// NewSiteWriter creates a new SiteWriter.
// baseDir is the parent directory, name is the output directory name.
func NewSiteWriter(baseDir, name string, renderer *render.Renderer) *SiteWriter {
	if renderer == nil {
		renderer = &render.Renderer{}
	}
	return &SiteWriter{
		baseDir:  baseDir,
		name:     name,
		renderer: renderer,
	}
}

func (s *SiteWriter) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteWriter) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteSite stages the complete output tree: the parsed JSON snapshot, one
// HTML page per canonical slot, an index.html redirect, and the shared
// assets.
func (s *SiteWriter) WriteSite(site *townpress.CanonicalSite) error {
	if err := os.MkdirAll(s.tempDir(), 0o755); err != nil {
		return err
	}

	if err := s.writeJSON(site); err != nil {
		return err
	}

	for _, t := range townpress.CanonicalTypes {
		page, err := s.renderer.RenderPage(t, site)
		if err != nil {
			return err
		}
		path := filepath.Join(s.tempDir(), string(t)+".html")
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return err
		}
	}

	if err := os.WriteFile(filepath.Join(s.tempDir(), "index.html"), []byte(indexRedirect), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), "style.css"), render.StyleCSS, 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), "layout_switcher.js"), render.LayoutSwitcherJS, 0o644)
}

// writeJSON stages the canonical model as {slug}-parsed.json.
func (s *SiteWriter) writeJSON(site *townpress.CanonicalSite) error {
	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return err
	}
	name := Slug(site.Metadata.Name) + "-parsed.json"
	return os.WriteFile(filepath.Join(s.tempDir(), name), append(data, '\n'), 0o644)
}

// CopyImages copies image assets found under sourceDir into the staged
// images directory, flattened by base name. It returns the number of files
// copied; individual copy failures are skipped.
func (s *SiteWriter) CopyImages(sourceDir string) (int, error) {
	imagesDir := filepath.Join(s.tempDir(), "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return 0, err
	}

	var copied int
	err := filepath.WalkDir(sourceDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if err := copyFile(path, filepath.Join(imagesDir, filepath.Base(path))); err != nil {
			return nil
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

// Commit atomically replaces the final directory with the staged tree.
func (s *SiteWriter) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged tree.
func (s *SiteWriter) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Slug lowercases a site name and replaces spaces for use in file names.
func Slug(name string) string {
	if name == "" {
		return "site"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

const indexRedirect = `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="refresh" content="0; url=home.html">
    <title>Redirecting...</title>
</head>
<body>
    <p>Redirecting to <a href="home.html">home page</a>...</p>
</body>
</html>
`
