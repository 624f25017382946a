// Package catalog owns the immutable card universe the rest of the service
// draws from. Cards are loaded once at startup and never mutated.
package catalog

import "strings"

// Card is one entry in the deck. Name carries the localized name, En the
// English one; both feed tone classification downstream.
type Card struct {
	ID       int      `toml:"id" json:"id"`
	Name     string   `toml:"name" json:"name"`
	En       string   `toml:"en" json:"en"`
	Img      string   `toml:"img" json:"img"`
	Desc     string   `toml:"desc" json:"desc"`
	Text     string   `toml:"text" json:"text"`
	Keywords []string `toml:"keywords" json:"keywords"`
}

// Catalog is an ordered, 0-indexed sequence of cards.
type Catalog struct {
	cards []Card
}

// New builds a catalog from pre-normalized cards. IDs are reassigned to the
// card's position so indices stay stable and dense.
func New(cards []Card) *Catalog {
	owned := make([]Card, len(cards))
	copy(owned, cards)
	for i := range owned {
		owned[i].ID = i
	}
	return &Catalog{cards: owned}
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Card returns the card at index i by value. Callers must pass a valid index;
// the pick validator guarantees this for client-supplied indices.
func (c *Catalog) Card(i int) Card {
	return c.cards[i]
}

// Contains reports whether i is a valid card index.
func (c *Catalog) Contains(i int) bool {
	return i >= 0 && i < len(c.cards)
}

// normalize trims fields and drops entries that have no usable name.
func normalize(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, card := range cards {
		card.Name = strings.TrimSpace(card.Name)
		card.En = strings.TrimSpace(card.En)
		card.Img = strings.TrimSpace(card.Img)
		card.Desc = strings.TrimSpace(card.Desc)
		card.Text = strings.TrimSpace(card.Text)
		if card.Name == "" && card.En == "" {
			continue
		}
		keywords := make([]string, 0, len(card.Keywords))
		for _, kw := range card.Keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		card.Keywords = keywords
		out = append(out, card)
	}
	return out
}
