// Package gameid generates sortable session identifiers. An ID is a UUIDv7
// written as 26 characters of Crockford base32, so IDs sort by the time the
// session started.
package gameid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	length   = 26
)

// Generator creates IDs from a clock and an optional random stream. With a
// nil stream the random bits come from crypto/rand.
type Generator struct {
	clock quartz.Clock
	rng   *rand.Rand
}

// NewGenerator returns a generator. A seeded rng together with a mock clock
// makes IDs reproducible in tests and seeded simulations.
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns the next ID
func (g *Generator) Generate() string {
	var id [16]byte

	ms := uint64(g.clock.Now().UnixMilli())
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], ms)
	copy(id[:6], ts[2:])

	if g.rng != nil {
		binary.BigEndian.PutUint16(id[6:8], uint16(g.rng.Uint32()))
		binary.BigEndian.PutUint64(id[8:], g.rng.Uint64())
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("gameid: reading random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(id)
}

// encode writes the 128-bit value as 26 base32 digits, most significant
// first. The leading digit carries only the top 3 bits.
func encode(id [16]byte) string {
	var out [length]byte
	var buf uint16
	bits := 0
	i := length - 1
	for b := len(id) - 1; b >= 0; b-- {
		buf |= uint16(id[b]) << bits
		bits += 8
		for bits >= 5 {
			out[i] = alphabet[buf&0x1f]
			i--
			buf >>= 5
			bits -= 5
		}
	}
	out[0] = alphabet[buf&0x1f]
	return string(out[:])
}

func decode(s string) ([16]byte, error) {
	var id [16]byte
	var buf uint16
	bits := 0
	j := len(id) - 1
	for i := length - 1; i >= 0; i-- {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return id, fmt.Errorf("invalid character %q at position %d", s[i], i)
		}
		buf |= uint16(v) << bits
		bits += 5
		if bits >= 8 && j >= 0 {
			id[j] = byte(buf)
			j--
			buf >>= 8
			bits -= 8
		}
	}
	return id, nil
}

// Validate checks that id is 26 lowercase base32 characters whose leading
// digit fits in 3 bits.
func Validate(id string) error {
	if len(id) != length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	_, err := decode(id)
	return err
}

// Timestamp returns the millisecond creation time embedded in id
func Timestamp(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	raw, _ := decode(id)
	var ts [8]byte
	copy(ts[2:], raw[:6])
	return time.UnixMilli(int64(binary.BigEndian.Uint64(ts[:]))), nil
}
