package game

import "github.com/lox/blackjack/internal/deck"

// BustThreshold is the highest score a hand can hold without busting
const BustThreshold = 21

// Participant is the read-only view of a seat that displays render
type Participant interface {
	Name() string
	Cards() []deck.Card
	Score() int
}

// Hand holds the cards one seat has received this round. The score is kept
// incrementally and only ever counts face-up cards.
type Hand struct {
	name  string
	cards []deck.Card
	score int
	ready bool
}

// NewHand creates an empty hand for the named seat
func NewHand(name string) Hand {
	return Hand{name: name}
}

// Name returns the seat name
func (h *Hand) Name() string {
	return h.name
}

// Cards returns a copy of the cards held, in the order received
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Score returns the sum of face-up card values
func (h *Hand) Score() int {
	return h.score
}

// IsReady returns true once the seat has stood
func (h *Hand) IsReady() bool {
	return h.ready
}

// IsBust returns true if the visible score is over 21
func (h *Hand) IsBust() bool {
	return h.score > BustThreshold
}

// Receive adds a card to the hand, scoring it if it is face up
func (h *Hand) Receive(card deck.Card) {
	h.cards = append(h.cards, card)
	if card.FaceUp {
		h.score += card.Value()
	}
}

// RevealHiddenCards turns every face-down card over and adds its value to
// the score. It returns the number of points added, which is zero on any
// later call.
func (h *Hand) RevealHiddenCards() int {
	added := 0
	for i := range h.cards {
		if !h.cards[i].FaceUp {
			h.cards[i].FaceUp = true
			added += h.cards[i].Value()
		}
	}
	h.score += added
	return added
}

// HiddenCount returns the number of face-down cards in the hand
func (h *Hand) HiddenCount() int {
	n := 0
	for _, c := range h.cards {
		if !c.FaceUp {
			n++
		}
	}
	return n
}

// MarkReady records that the seat stands for the rest of the round
func (h *Hand) MarkReady() {
	h.ready = true
}

// Reset clears the cards, score and ready flag
func (h *Hand) Reset() {
	h.cards = nil
	h.score = 0
	h.ready = false
}
