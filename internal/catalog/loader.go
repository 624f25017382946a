package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// deckFile is the expected file name inside the deck directory.
const deckFile = "deck.toml"

type deckConfig struct {
	Deck struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Author  string `toml:"author"`
	} `toml:"deck"`
	Cards []Card `toml:"cards"`
}

// Load reads and normalizes the deck from dir/deck.toml.
func Load(dir string) (*Catalog, error) {
	path := filepath.Join(dir, deckFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s not found in %s: %w", deckFile, dir, err)
	}

	var cfg deckConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", deckFile, err)
	}

	cards := normalize(cfg.Cards)
	if len(cards) == 0 {
		return nil, fmt.Errorf("deck %s contains no usable cards", path)
	}
	return New(cards), nil
}

// LoadOrFallback loads the deck, degrading to a built-in single-card catalog
// when the deck directory is missing or unusable. The server starts either way.
func LoadOrFallback(dir string, logger *slog.Logger) *Catalog {
	cat, err := Load(dir)
	if err != nil {
		logger.Warn("deck unavailable, serving fallback catalog",
			"deck_dir", dir,
			"error", err.Error(),
		)
		return Fallback()
	}
	logger.Info("deck loaded", "deck_dir", dir, "cards", cat.Len())
	return cat
}

// Fallback returns the degraded single-card catalog.
func Fallback() *Catalog {
	return New([]Card{{
		Name:     "愚者",
		En:       "The Fool",
		Img:      "major_00.jpg",
		Desc:     "A leap into the unknown, taken lightly.",
		Text:     "The Fool steps forward without a map, trusting the road to appear.",
		Keywords: []string{"beginnings", "spontaneity", "trust"},
	}})
}
