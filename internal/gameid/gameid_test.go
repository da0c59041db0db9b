package gameid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := NewGenerator(nil, nil).Generate()
	assert.Len(t, id, 26)
	require.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id := NewGenerator(nil, nil).Generate()
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestGenerateSortsByTime(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, randutil.New(7))

	var ids []string
	for range 10 {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "%s should sort before %s", ids[i-1], ids[i])
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	a := NewGenerator(clock, randutil.New(42)).Generate()
	b := NewGenerator(clock, randutil.New(42)).Generate()
	c := NewGenerator(clock, randutil.New(43)).Generate()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	id := NewGenerator(clock, randutil.New(1)).Generate()

	ts, err := Timestamp(id)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().UnixMilli(), ts.UnixMilli())
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	var id [16]byte
	for i := range id {
		id[i] = byte(i*17 + 3)
	}
	got, err := decode(encode(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", encode(ones))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid ID", id: "01h5n0et5q6mt3v7ms1234abcd"},
		{name: "too short", id: "01h5n0et5q6mt3v7ms123", wantErr: true},
		{name: "too long", id: "01h5n0et5q6mt3v7ms1234abcdef", wantErr: true},
		{name: "first char too high", id: "81h5n0et5q6mt3v7ms1234abcd", wantErr: true},
		{name: "invalid character", id: "01h5n0et5q6mt3v7ms1234abci", wantErr: true},
		{name: "uppercase not allowed", id: "01H5N0ET5Q6MT3V7MS1234ABCD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAlphabet(t *testing.T) {
	t.Parallel()

	assert.Len(t, alphabet, 32)
	seen := make(map[rune]bool)
	for _, c := range alphabet {
		assert.False(t, seen[c], "duplicate %c", c)
		seen[c] = true
	}
	for _, c := range "ilou" {
		assert.NotContains(t, alphabet, string(c))
	}
}
