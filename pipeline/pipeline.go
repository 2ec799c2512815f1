// Package pipeline orchestrates the conversion of a mirrored site directory
// into the canonical site model. It coordinates document discovery, content
// extraction, classification, markdown conversion, and the metadata fold.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/mwielgus/townpress"
	"golang.org/x/sync/errgroup"
)

// DefaultMetadataLimit bounds the site-wide metadata scan to a prefix of the
// discovery order.
const DefaultMetadataLimit = 5

// Pipeline converts a source directory of mirrored HTML into a canonical
// site. All fields except Scanner are required; a nil Scanner skips the
// metadata fold and relies on the folder-name fallback.
type Pipeline struct {
	Extractor  townpress.Extractor
	Classifier townpress.Classifier
	Converter  townpress.Converter
	Scanner    townpress.MetadataScanner

	// Concurrency bounds parallel document processing. Zero or negative
	// means 10.
	Concurrency int

	// MetadataLimit is the number of leading documents scanned for site
	// metadata. Zero means DefaultMetadataLimit.
	MetadataLimit int
}

// Result holds the outcome of a conversion.
type Result struct {
	Site      *townpress.CanonicalSite
	Records   []*townpress.PageRecord
	Processed int
	Failed    int
}

// ProgressEvent reports progress during a conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	PageType  townpress.PageType
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single document.
type pageResult struct {
	position int
	path     string
	record   *townpress.PageRecord
	text     string
	err      error
}

// Convert discovers the HTML documents under sourceDir and folds them into a
// canonical site. Documents are processed in parallel; a failure in one
// document, including an unreadable file, never aborts the run. The progress
// callback, if provided, receives events as processing proceeds.
func (p *Pipeline) Convert(ctx context.Context, sourceDir string, progress ProgressFunc) (*Result, error) {
	docs, skipped, err := FindHTMLFiles(sourceDir)
	if err != nil {
		return nil, err
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(docs) + len(skipped)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan pageResult, len(docs))

	var completed atomic.Int64

	failed := len(skipped)
	for _, sk := range skipped {
		completed.Add(1)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      sk.Path,
				Error:     sk.Err,
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, doc := range docs {
			doc := doc
			g.Go(func() error {
				select {
				case <-gctx.Done():
					resultCh <- pageResult{position: doc.Position, path: doc.Path, err: gctx.Err()}
					return nil
				default:
				}
				resultCh <- p.processDocument(doc)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results into discovery-order positions.
	results := make([]pageResult, len(docs))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			if result.err != nil {
				failed++
			}
			continue
		}
		if result.err != nil {
			failed++
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      result.path,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      result.path,
				PageType:  result.record.Type,
			})
		}
	}

	metadata := p.scanMetadata(docs, sourceDir)

	var records []*townpress.PageRecord
	var homeText string
	for _, result := range results {
		if result.err != nil {
			continue
		}
		if homeText == "" && result.record.Type == townpress.PageHome {
			homeText = result.text
		}
		records = append(records, result.record)
	}

	site := townpress.BuildSite(metadata, records, homeText)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Site:      site,
		Records:   records,
		Processed: len(records),
		Failed:    failed,
	}, nil
}

// processDocument runs one document through extraction, classification, and
// markdown conversion.
func (p *Pipeline) processDocument(doc *townpress.Document) pageResult {
	result := pageResult{
		position: doc.Position,
		path:     doc.Path,
	}

	extracted, err := p.Extractor.Extract(doc.RawHTML)
	if err != nil {
		result.err = fmt.Errorf("extract %s: %w", doc.Path, err)
		return result
	}

	pageType := p.Classifier.Classify(townpress.Signals{
		Filename: doc.Name,
		Path:     doc.Path,
		Title:    extracted.Title,
		Text:     extracted.Text,
	})

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = fmt.Errorf("convert %s: %w", doc.Path, err)
		return result
	}

	result.text = extracted.Text
	result.record = &townpress.PageRecord{
		Type:        pageType,
		Title:       extracted.Title,
		Content:     markdown,
		Source:      doc.Name,
		ContentHash: ComputeHash(markdown),
		Position:    doc.Position,
	}

	return result
}

// scanMetadata folds scanner results over the leading documents, first match
// per field wins. The source folder name backstops the site name.
func (p *Pipeline) scanMetadata(docs []*townpress.Document, sourceDir string) townpress.SiteMetadata {
	metadata := townpress.SiteMetadata{}

	if p.Scanner != nil {
		limit := p.MetadataLimit
		if limit <= 0 {
			limit = DefaultMetadataLimit
		}
		if limit > len(docs) {
			limit = len(docs)
		}
		for _, doc := range docs[:limit] {
			scanned, err := p.Scanner.Scan(doc.RawHTML)
			if err != nil {
				continue
			}
			metadata.Merge(scanned)
		}
	}

	if metadata.Name == "" {
		metadata.Name = siteNameFromDir(sourceDir)
	}

	return metadata
}

// siteNameFromDir derives a fallback site name from the source folder, e.g.
// "www.east-berlin.com" becomes "East Berlin".
func siteNameFromDir(sourceDir string) string {
	name := filepath.Base(filepath.Clean(sourceDir))
	name = strings.TrimPrefix(name, "www.")
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
