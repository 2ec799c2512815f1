package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/mock"
	tpslog "github.com/mwielgus/townpress/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*townpress.ExtractResult, error) {
				return &townpress.ExtractResult{Title: "Welcome", ContentHTML: "<p>hi</p>"}, nil
			},
		}

		ext := tpslog.NewLoggingExtractor(inner, debugLogger(&buf))
		result, err := ext.Extract("<html><body><p>hi</p></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Welcome", result.Title)
		output := buf.String()
		assert.Contains(t, output, "content extraction")
		assert.Contains(t, output, "title=Welcome")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*townpress.ExtractResult, error) {
				return nil, errors.New("parse failed")
			},
		}

		ext := tpslog.NewLoggingExtractor(inner, debugLogger(&buf))
		_, err := ext.Extract("<html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"parse failed\"")
	})
}

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Classifier{
		ClassifyFn: func(sig townpress.Signals) townpress.PageType {
			return townpress.PageAbout
		},
	}

	c := tpslog.NewLoggingClassifier(inner, debugLogger(&buf))
	got := c.Classify(townpress.Signals{Filename: "about.html", Title: "About Us"})

	assert.Equal(t, townpress.PageAbout, got)
	output := buf.String()
	assert.Contains(t, output, "page classification")
	assert.Contains(t, output, "filename=about.html")
	assert.Contains(t, output, "page_type=about")
}
