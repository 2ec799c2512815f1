package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/classify"
	"github.com/mwielgus/townpress/goquery"
	"github.com/mwielgus/townpress/readability"
	tpslog "github.com/mwielgus/townpress/slog"
	"github.com/mwielgus/townpress/sqlite"
	"github.com/mwielgus/townpress/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the archive service.
	DB *sqlite.DB

	// Archive for end-to-end testing.
	Archive townpress.SiteArchive
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("townpress"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'townpress --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TOWNPRESS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Archive = sqlite.NewArchiveService(m.DB)
	deps.DB = m.DB
	deps.Archive = m.Archive

	return kongCtx.Run(deps)
}

// newExtractor builds the named extraction strategy, wrapped with debug
// logging.
func newExtractor(name string, logger *slog.Logger) townpress.Extractor {
	var ext townpress.Extractor
	switch name {
	case "readability":
		ext = readability.NewExtractor()
	case "trafilatura":
		ext = trafilatura.NewExtractor()
	default:
		ext = &goquery.Cleaner{RewriteImages: true}
	}
	return tpslog.NewLoggingExtractor(ext, logger)
}

// newClassifier builds the decision-list classifier, wrapped with debug
// logging.
func newClassifier(logger *slog.Logger) townpress.Classifier {
	return tpslog.NewLoggingClassifier(classify.NewClassifier(), logger)
}

func defaultDBPath() string {
	if path := os.Getenv("TOWNPRESS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "townpress.db"
	}
	dir := filepath.Join(home, ".townpress")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "townpress.db")
}
