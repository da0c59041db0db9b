package deck

import (
	"errors"
	rand "math/rand/v2"
)

// CardsPerSet is the size of one standard deck
const CardsPerSet = 52

// ErrEmptyDeck is returned when dealing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered stack of cards. Cards are dealt from the end of the slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds sets*52 cards in suit-major, rank-ascending order. The deck
// is not shuffled.
func NewDeck(sets int, rng *rand.Rand) *Deck {
	if sets < 1 {
		sets = 1
	}
	d := &Deck{
		cards: make([]Card, 0, sets*CardsPerSet),
		rng:   rng,
	}

	for range sets {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				d.cards = append(d.cards, NewCard(rank, suit))
			}
		}
	}

	return d
}

// NewDeckFromCards returns a stacked deck that deals the given cards in order.
// Shuffle is a no-op on a stacked deck.
func NewDeckFromCards(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes the next card, sets its visibility and returns it
func (d *Deck) Deal(faceUp bool) (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	card.FaceUp = faceUp
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, next card to be dealt last
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
