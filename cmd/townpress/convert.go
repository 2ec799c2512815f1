package main

import (
	"fmt"
	"path/filepath"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/fs"
	"github.com/mwielgus/townpress/goquery"
	"github.com/mwielgus/townpress/htmltomarkdown"
	"github.com/mwielgus/townpress/pipeline"
	"github.com/mwielgus/townpress/render"
	"github.com/mwielgus/townpress/yaml"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	// Load layout overrides early so a bad file fails before any work.
	var layouts map[townpress.PageType]townpress.Layout
	if c.Layouts != "" {
		var err error
		layouts, err = yaml.LoadLayouts(c.Layouts)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", townpress.ErrorMessage(err))
			return err
		}
	}

	p := &pipeline.Pipeline{
		Extractor:     newExtractor(c.Extractor, deps.Logger),
		Classifier:    newClassifier(deps.Logger),
		Converter:     htmltomarkdown.NewConverter(),
		Scanner:       goquery.NewScanner(),
		Concurrency:   c.Concurrency,
		MetadataLimit: c.MetadataScan,
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d documents\n", event.Total)
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s -> %s\n", event.Completed, event.Total, filepath.Base(event.Path), event.PageType)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", filepath.Base(event.Path), event.Error)
		}
	}

	result, err := p.Convert(deps.Ctx, c.Source, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", townpress.ErrorMessage(err))
		return err
	}

	writer := fs.NewSiteWriter(c.Output, filepath.Base(filepath.Clean(c.Source)), &render.Renderer{Layouts: layouts})
	if err := writer.WriteSite(result.Site); err != nil {
		_ = writer.Abort()
		return fmt.Errorf("failed to write site: %w", err)
	}

	if !c.NoImages {
		copied, err := writer.CopyImages(c.Source)
		if err != nil {
			_ = writer.Abort()
			return fmt.Errorf("failed to copy images: %w", err)
		}
		if copied > 0 {
			fmt.Fprintf(deps.Stdout, "Copied %d images\n", copied)
		}
	}

	if err := writer.Commit(); err != nil {
		_ = writer.Abort()
		return fmt.Errorf("failed to commit output: %w", err)
	}

	if !c.NoArchive {
		run := &townpress.Run{
			SourceDir: c.Source,
			SiteName:  result.Site.Metadata.Name,
			Metadata:  result.Site.Metadata,
		}
		if err := deps.Archive.CreateRun(deps.Ctx, run, result.Records); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving run: %s\n", townpress.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Archived run %s\n", run.ID)
	}

	fmt.Fprintf(deps.Stdout, "Converted %d pages (%d failed) -> %s\n",
		result.Processed, result.Failed, filepath.Join(c.Output, filepath.Base(filepath.Clean(c.Source))))

	return nil
}
