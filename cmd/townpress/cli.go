package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Archive townpress.SiteArchive
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert  ConvertCmd  `cmd:"" help:"Convert a mirrored site into a canonical static site"`
	Classify ClassifyCmd `cmd:"" help:"Classify documents without generating output"`
	Runs     RunsCmd     `cmd:"" help:"List archived conversion runs"`
	Delete   DeleteCmd   `cmd:"" help:"Delete an archived conversion run"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Source string `arg:"" help:"Mirrored site directory"`
	Output string `short:"o" default:"converted_sites" help:"Output parent directory"`

	Extractor    string `short:"e" default:"cleaner" enum:"cleaner,readability,trafilatura" help:"Content extraction strategy"`
	Concurrency  int    `short:"c" default:"10" help:"Concurrent document limit"`
	MetadataScan int    `default:"5" help:"Number of leading documents scanned for site metadata"`
	Layouts      string `short:"l" help:"YAML file with layout overrides"`
	NoImages     bool   `help:"Skip copying source images"`
	NoArchive    bool   `help:"Skip archiving the run to the database"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Source      string `arg:"" help:"Mirrored site directory"`
	Extractor   string `short:"e" default:"cleaner" enum:"cleaner,readability,trafilatura" help:"Content extraction strategy"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent document limit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Source string `help:"Filter by source directory"`
	Limit  int    `default:"20" help:"Maximum number of runs to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Run ID"`
}
