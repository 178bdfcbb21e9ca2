package game

import "fmt"

// Suit of a playing card.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists every suit in the deck.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// Rank runs from ace (low) to six. There is no wraparound: A-2-3 is a
// straight, 5-6-A is not.
type Rank int

const (
	RankAce Rank = iota + 1
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
)

// Ranks lists every rank in the deck, ascending.
var Ranks = [6]Rank{RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix}

func (r Rank) String() string {
	if r == RankAce {
		return "A"
	}
	return fmt.Sprintf("%d", int(r))
}

// Card is an immutable suit/rank pair.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
