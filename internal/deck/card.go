package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

// Suits lists every suit in construction order
var Suits = []Suit{Spades, Diamonds, Clubs, Hearts}

// String returns the symbol for the suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ace is low.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the display name of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Value returns the points the rank is worth. Aces always count 1 and
// picture cards count 10.
func (r Rank) Value() int {
	if r >= Jack {
		return 10
	}
	return int(r)
}

// Card is a playing card. Rank and Suit never change once a card is built;
// FaceUp is flipped by the dealer as the round progresses.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// NewCard creates a new face-up card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, FaceUp: true}
}

// Value returns the card's points
func (c Card) Value() int {
	return c.Rank.Value()
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// SameIdentity reports whether two cards share rank and suit, ignoring visibility
func (c Card) SameIdentity(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// ParseCard parses notation like "As", "Td", "10h" or "kC" into a face-up card
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rankPart, suitPart := strings.ToUpper(s[:len(s)-1]), strings.ToLower(s[len(s)-1:])

	var rank Rank
	switch rankPart {
	case "A":
		rank = Ace
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		if len(rankPart) != 1 || rankPart[0] < '2' || rankPart[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = Rank(rankPart[0] - '0')
	}

	var suit Suit
	switch suitPart {
	case "s":
		suit = Spades
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	case "h":
		suit = Hearts
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a whitespace separated list of cards, e.g. "As 10d Kh"
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
