package roundid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/randutil"
)

func TestNew(t *testing.T) {
	id := New()

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated id failed validation: %v", err)
	}
}

func TestNewUnique(t *testing.T) {
	ids := make(map[string]bool)
	for range 100 {
		id := New()
		if ids[id] {
			t.Errorf("duplicate id generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGeneratorSortedByTime(t *testing.T) {
	clock := quartz.NewMock(t)
	gen := NewGenerator(randutil.New(1), clock)

	var ids []string
	for range 10 {
		ids = append(ids, gen.Next())
		clock.Advance(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("ids not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)

	a := NewGenerator(randutil.New(7), clock).Next()
	b := NewGenerator(randutil.New(7), clock).Next()
	c := NewGenerator(randutil.New(8), clock).Next()

	if a != b {
		t.Errorf("same seed and time produced %s and %s", a, b)
	}
	if a == c {
		t.Errorf("different seeds produced the same id %s", a)
	}
}

func TestTime(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Advance(90 * time.Minute)
	want := clock.Now().Truncate(time.Millisecond)

	id := NewGenerator(randutil.New(3), clock).Next()
	got, err := Time(id)
	if err != nil {
		t.Fatalf("Time(%s) failed: %v", id, err)
	}
	if !got.Equal(want) {
		t.Errorf("Time(%s) = %v, want %v", id, got, want)
	}

	if _, err := Time("not-an-id"); err == nil {
		t.Error("expected error for malformed id")
	}
}

func TestEncodeDecode(t *testing.T) {
	var id [16]byte
	for i := range id {
		id[i] = byte(i*17 + 3)
	}

	got, err := decode(encode(id))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != id {
		t.Errorf("decode(encode(%x)) = %x", id, got)
	}

	if s := encode([16]byte{}); s != strings.Repeat("0", Length) {
		t.Errorf("zero id encoded as %s", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	if len(alphabet) != 32 {
		t.Errorf("alphabet should have 32 characters, got %d", len(alphabet))
	}

	seen := make(map[rune]bool)
	for _, char := range alphabet {
		if seen[char] {
			t.Errorf("duplicate character in alphabet: %c", char)
		}
		seen[char] = true
	}

	for _, char := range "ilou" {
		if strings.ContainsRune(alphabet, char) {
			t.Errorf("alphabet should not contain %c", char)
		}
	}
}
