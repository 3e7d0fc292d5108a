// Package deckfile reads slide decks from YAML, including the bundled
// Singapore deck.
package deckfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/bnema/lectern/internal/domain/deck"
	"github.com/bnema/lectern/internal/domain/entity"
	"github.com/bnema/lectern/internal/logging"
)

//go:embed singapore.yaml
var singaporeYAML []byte

// ErrInvalidBlock reports a content block with an unknown type.
var ErrInvalidBlock = errors.New("invalid content block")

// File is the on-disk deck layout.
type File struct {
	Title   string         `json:"title" yaml:"title"`
	TitleVi string         `json:"titleVi,omitempty" yaml:"titleVi,omitempty"`
	Slides  []entity.Slide `json:"slides" yaml:"slides"`
}

// Decode parses deck YAML without building a store. Unknown fields are
// rejected so typos surface at load time.
func Decode(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, deck.ErrEmptyDeck
		}
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &f, nil
}

// Parse decodes deck YAML, resolves fact icons and validates the result.
func Parse(ctx context.Context, data []byte) (*deck.Store, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Build(ctx, f)
}

// Build validates f and returns its store. Unknown icon names are logged
// and rendered as no icon.
func Build(ctx context.Context, f *File) (*deck.Store, error) {
	log := logging.FromContext(ctx)

	slides := make([]entity.Slide, len(f.Slides))
	copy(slides, f.Slides)

	for i := range slides {
		s := &slides[i]
		for j, block := range s.Content {
			if !block.Kind.Valid() {
				return nil, fmt.Errorf("slide %q block %d: %w: %q", s.Slug, j, ErrInvalidBlock, block.Kind)
			}
		}
		if len(s.Visual.Facts) > 0 {
			facts := make([]entity.KeyFact, len(s.Visual.Facts))
			copy(facts, s.Visual.Facts)
			for j := range facts {
				raw := string(facts[j].Icon)
				facts[j].Icon = entity.ParseIcon(raw)
				if raw != "" && facts[j].Icon == entity.IconNone {
					log.Warn().Str("slug", s.Slug).Str("icon", raw).Msg("unknown fact icon")
				}
			}
			s.Visual.Facts = facts
		}
	}

	store, err := deck.New(slides)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("slides", store.Count()).Str("title", f.Title).Msg("deck loaded")
	return store, nil
}

// Deck is a loaded deck: its titles plus the validated store.
type Deck struct {
	Title   string
	TitleVi string
	Store   *deck.Store
}

// LoadDefault returns the bundled Singapore deck.
func LoadDefault(ctx context.Context) (*deck.Store, error) {
	return Parse(ctx, singaporeYAML)
}

// DefaultFile returns the decoded bundled deck.
func DefaultFile() (*File, error) {
	return Decode(singaporeYAML)
}

// Open reads the deck at path with its titles. An empty path opens the
// bundled deck.
func Open(ctx context.Context, path string) (*Deck, error) {
	data := singaporeYAML
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read deck %s: %w", path, err)
		}
	}

	f, err := Decode(data)
	if err == nil {
		var store *deck.Store
		if store, err = Build(ctx, f); err == nil {
			return &Deck{Title: f.Title, TitleVi: f.TitleVi, Store: store}, nil
		}
	}
	if path == "" {
		return nil, err
	}
	return nil, fmt.Errorf("load deck %s: %w", path, err)
}

// Load reads the deck at path. An empty path loads the bundled deck.
func Load(ctx context.Context, path string) (*deck.Store, error) {
	d, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.Store, nil
}

// Schema returns the JSON schema of the deck file format.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&File{})

	schema.ID = "https://github.com/bnema/lectern/deck.schema.json"
	schema.Title = "Lectern Deck"
	schema.Description = "Bilingual slide deck read by lectern"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
