package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

// Format selects the file type written by Printer.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Printer writes the deck to a timestamped file. It implements port.Printer.
type Printer struct {
	dir    string
	format Format
	opts   Options
	now    func() time.Time
}

// NewPrinter creates a Printer writing into dir.
func NewPrinter(dir string, format Format, opts Options) *Printer {
	if format != FormatMarkdown {
		format = FormatHTML
	}
	return &Printer{
		dir:    dir,
		format: format,
		opts:   opts,
		now:    time.Now,
	}
}

// Render returns the document bytes without writing them.
func (p *Printer) Render(slides []entity.Slide) ([]byte, error) {
	md := Markdown(slides, p.opts)
	if p.format == FormatMarkdown {
		return []byte(md), nil
	}
	return HTML(md, p.opts)
}

// Print renders slides and writes them under the printer's directory.
// It returns the path of the written file.
func (p *Printer) Print(ctx context.Context, slides []entity.Slide) (string, error) {
	log := logging.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.dir == "" {
		return "", fmt.Errorf("export directory not configured")
	}

	data, err := p.Render(slides)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, dirPerm); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	ext := ".html"
	if p.format == FormatMarkdown {
		ext = ".md"
	}
	name := "lectern-" + p.now().Format("20060102-150405") + ext
	path := filepath.Join(p.dir, name)

	// Readers never observe a partially written document
	tmp, err := os.CreateTemp(p.dir, ".lectern-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		log.Debug().Err(err).Msg("chmod export file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename export file: %w", err)
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("deck exported")
	return path, nil
}
