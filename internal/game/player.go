package game

import "fmt"

// Player is the human seat: a hand plus a chip pot that carries across rounds
type Player struct {
	Hand
	pot        int
	initialPot int
}

// NewPlayer creates a player holding initialPot chips
func NewPlayer(name string, initialPot int) *Player {
	return &Player{
		Hand:       NewHand(name),
		pot:        initialPot,
		initialPot: initialPot,
	}
}

// Pot returns the current chip balance
func (p *Player) Pot() int {
	return p.pot
}

// InitialPot returns the balance the player started the session with
func (p *Player) InitialPot() int {
	return p.initialPot
}

// Debit takes amount from the pot. It refuses to take the pot below zero.
func (p *Player) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("debit %d: %w", amount, ErrNegativeAmount)
	}
	if amount > p.pot {
		return fmt.Errorf("debit %d from pot of %d: %w", amount, p.pot, ErrNegativePot)
	}
	p.pot -= amount
	return nil
}

// Credit adds amount to the pot
func (p *Player) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit %d: %w", amount, ErrNegativeAmount)
	}
	p.pot += amount
	return nil
}

// IsBroke returns true when the pot is empty
func (p *Player) IsBroke() bool {
	return p.pot == 0
}

// RestoreInitialPot puts the pot back to its starting balance. Used when a
// broke player chooses to start over.
func (p *Player) RestoreInitialPot() {
	p.pot = p.initialPot
}

// Dealer is the house seat. It has no pot and plays a fixed policy.
type Dealer struct {
	Hand
}

// NewDealer creates the dealer seat
func NewDealer() *Dealer {
	return &Dealer{Hand: NewHand("Dealer")}
}

// ShouldDraw reports whether the dealer must take another card
func (d *Dealer) ShouldDraw(standsOn int) bool {
	return d.Score() < standsOn
}
