package main

import (
	"fmt"
	"path/filepath"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/htmltomarkdown"
	"github.com/mwielgus/townpress/pipeline"
)

// Run executes the classify command. It runs the pipeline without writing
// any output, printing one classification per document.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	p := &pipeline.Pipeline{
		Extractor:   newExtractor(c.Extractor, deps.Logger),
		Classifier:  newClassifier(deps.Logger),
		Converter:   htmltomarkdown.NewConverter(),
		Concurrency: c.Concurrency,
	}

	result, err := p.Convert(deps.Ctx, c.Source, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", townpress.ErrorMessage(err))
		return err
	}

	counts := make(map[townpress.PageType]int)
	for _, rec := range result.Records {
		counts[rec.Type]++
		fmt.Fprintf(deps.Stdout, "%-24s %s\n", rec.Type, filepath.Base(rec.Source))
	}

	fmt.Fprintln(deps.Stdout)
	for _, t := range townpress.CanonicalTypes {
		if counts[t] > 0 {
			fmt.Fprintf(deps.Stdout, "%-24s %d\n", t, counts[t])
		}
	}
	if counts[townpress.PageAdditional] > 0 {
		fmt.Fprintf(deps.Stdout, "%-24s %d\n", townpress.PageAdditional, counts[townpress.PageAdditional])
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%-24s %d\n", "failed", result.Failed)
	}

	return nil
}
