package display

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func newTestTable(opts ...TableOption) (*Table, *bytes.Buffer) {
	var buf bytes.Buffer
	opts = append([]TableOption{WithProfile(termenv.Ascii)}, opts...)
	return NewTable(&buf, opts...), &buf
}

func TestTableBanner(t *testing.T) {
	t.Parallel()

	table, buf := newTestTable()
	table.ShowBanner(1000)

	out := buf.String()
	assert.Contains(t, out, "BLACKJACK")
	assert.Contains(t, out, "POT TOTAL: $1000")
	assert.NotContains(t, out, "\x1b[2J", "no clear unless asked")
}

func TestTableBannerClears(t *testing.T) {
	t.Parallel()

	table, buf := newTestTable(WithClear(true))
	table.ShowBanner(50)

	assert.Contains(t, buf.String(), "\x1b[2J")
	assert.Contains(t, buf.String(), "POT TOTAL: $50")
}

func TestTableShowHand(t *testing.T) {
	t.Parallel()

	table, buf := newTestTable()

	player := game.NewPlayer("Player", 1000)
	for _, c := range deck.MustParseCards("As 10h") {
		player.Receive(c)
	}
	table.ShowHand(player)

	out := buf.String()
	assert.Contains(t, out, "PLAYER")
	assert.Contains(t, out, "A♠")
	assert.Contains(t, out, "♠A")
	assert.Contains(t, out, "10♥")
	assert.Contains(t, out, "Score: 11")
	assert.NotContains(t, out, "BUST")
}

func TestTableHidesFaceDownCards(t *testing.T) {
	t.Parallel()

	table, buf := newTestTable()

	dealer := game.NewDealer()
	dealer.Receive(deck.NewCard(deck.King, deck.Clubs))
	hidden := deck.NewCard(deck.Queen, deck.Diamonds)
	hidden.FaceUp = false
	dealer.Receive(hidden)
	table.ShowHand(dealer)

	out := buf.String()
	assert.Contains(t, out, "DEALER")
	assert.Contains(t, out, "K♣")
	assert.Contains(t, out, cardBack)
	assert.NotContains(t, out, "Q♦")
	assert.Contains(t, out, "Score: 10")
}

func TestTableShowsBust(t *testing.T) {
	t.Parallel()

	table, buf := newTestTable()

	player := game.NewPlayer("Player", 1000)
	for _, c := range deck.MustParseCards("Ks Qh 5d") {
		player.Receive(c)
	}
	table.ShowHand(player)

	assert.Contains(t, buf.String(), "Score: 25 BUST")
}

func TestTableShowMessage(t *testing.T) {
	t.Parallel()

	table, buf := newTestTable()
	table.ShowMessage("Dealer wins")

	assert.Equal(t, "Dealer wins\n", buf.String())
}
