// Package roundid generates time-sortable identifiers for rounds so that log
// lines from one round can be correlated. An id is a UUIDv7 written as 26
// characters of Crockford base32, the TypeID layout.
package roundid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Length is the number of characters in an id
const Length = 26

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Source supplies random bits. *math/rand/v2.Rand satisfies it.
type Source interface {
	Uint64() uint64
}

// Generator produces ids from a clock and a random source
type Generator struct {
	src   Source
	clock quartz.Clock
}

// NewGenerator creates a generator. A nil src uses crypto/rand and a nil
// clock uses the real clock.
func NewGenerator(src Source, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{src: src, clock: clock}
}

// New returns an id from the real clock and crypto/rand
func New() string {
	return NewGenerator(nil, nil).Next()
}

// Next returns a fresh id
func (g *Generator) Next() string {
	var id [16]byte

	// 48-bit millisecond timestamp, then random bits
	binary.BigEndian.PutUint64(id[0:8], uint64(g.clock.Now().UnixMilli())<<16)
	if g.src != nil {
		binary.BigEndian.PutUint16(id[6:8], uint16(g.src.Uint64()))
		binary.BigEndian.PutUint64(id[8:16], g.src.Uint64())
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = id[6]&0x0f | 0x70 // version 7
	id[8] = id[8]&0x3f | 0x80 // variant 10

	return encode(id)
}

// encode writes the 128 bits as 130 with two leading zero bits, so the first
// character is always 0-7.
func encode(id [16]byte) string {
	var out [Length]byte
	for i := range Length {
		var v byte
		for b := range 5 {
			v <<= 1
			if bit := i*5 + b - 2; bit >= 0 && id[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

func decode(s string) ([16]byte, error) {
	var id [16]byte
	if err := Validate(s); err != nil {
		return id, err
	}
	for i := range Length {
		v := strings.IndexByte(alphabet, s[i])
		for b := range 5 {
			if bit := i*5 + b - 2; bit >= 0 && v&(0x10>>b) != 0 {
				id[bit/8] |= 0x80 >> (bit % 8)
			}
		}
	}
	return id, nil
}

// Validate checks that s is 26 lowercase base32 characters starting 0-7
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("round id must be %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return fmt.Errorf("round id must start with 0-7, got %c", s[0])
	}
	for i := range len(s) {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return nil
}

// Time returns the millisecond timestamp embedded in an id
func Time(s string) (time.Time, error) {
	id, err := decode(s)
	if err != nil {
		return time.Time{}, err
	}
	ms := binary.BigEndian.Uint64(id[0:8]) >> 16
	return time.UnixMilli(int64(ms)), nil
}
