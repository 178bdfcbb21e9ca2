package game

import "math/rand"

// DeckSize is the number of distinct cards in a full deck (4 suits x 6 ranks).
const DeckSize = 24

// Deck is an ordered pile of cards consumed from the top (end of the slice).
// Draws are destructive: two draws from the same deck never overlap.
type Deck struct {
	cards []Card
}

// NewShuffledDeck builds the full 24-card set and applies a uniform
// Fisher-Yates permutation over its whole length.
func NewShuffledDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the top n cards. If fewer than n remain it returns
// whatever is left; callers are expected to check Size first.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := make([]Card, n)
	for i := 0; i < n; i++ {
		top := len(d.cards) - 1
		drawn[i] = d.cards[top]
		d.cards = d.cards[:top]
	}
	return drawn
}

// Size reports how many cards remain.
func (d *Deck) Size() int {
	return len(d.cards)
}
