// Package deck reads and writes card decks: files listing word/translation
// pairs that can be imported into or exported from the card store.
//
// A deck is a TOML, YAML or JSON document with a single "cards" list:
//
//	[[cards]]
//	word = "dog"
//	translation = "собака"
//	image = "images/dog.png"
package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/service"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format names a deck file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions or format names that
// are not supported.
var ErrUnknownFormat = errors.New("unknown deck format")

// Entry is one card in a deck file.
type Entry struct {
	Word        string `toml:"word" yaml:"word" json:"word"`
	Translation string `toml:"translation" yaml:"translation" json:"translation"`
	Image       string `toml:"image,omitempty" yaml:"image,omitempty" json:"image,omitempty"`
}

// Deck is the document stored in a deck file.
type Deck struct {
	Cards []Entry `toml:"cards" yaml:"cards" json:"cards"`
}

// ParseFormat converts a format name such as "yaml" or "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads a deck in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Deck, error) {
	var d Deck

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return nil, fmt.Errorf("error parsing toml deck: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", domain.ErrInvalidFormat, undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error parsing yaml deck: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("error parsing json deck: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &d, nil
}

// Encode writes d in the given format.
func Encode(w io.Writer, format Format, d *Deck) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load reads the deck file at path, choosing the format from its extension.
func Load(fs afero.Fs, path string) (*Deck, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, format)
}

// Save writes d to path in the given format, replacing any existing file.
func Save(fs afero.Fs, path string, format Format, d *Deck) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deck %s: %w", path, err)
	}

	if err := Encode(f, format, d); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write deck %s: %w", path, err)
	}
	return f.Close()
}

// FromCards builds a deck from stored cards.
func FromCards(cards []*domain.Card) *Deck {
	d := &Deck{Cards: make([]Entry, 0, len(cards))}
	for _, c := range cards {
		d.Cards = append(d.Cards, Entry{
			Word:        c.Word,
			Translation: c.Translation,
			Image:       c.Image,
		})
	}
	return d
}

// Inputs converts the deck entries into card service input.
func (d *Deck) Inputs() []service.CardInput {
	inputs := make([]service.CardInput, 0, len(d.Cards))
	for _, e := range d.Cards {
		inputs = append(inputs, service.CardInput{
			Word:        e.Word,
			Translation: e.Translation,
			Image:       e.Image,
		})
	}
	return inputs
}
