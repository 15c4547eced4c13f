package blackjack

import "strings"

// Key is an abstract input key. Hosts map raw key events onto these.
type Key uint8

const (
	Hit Key = iota
	Stand
	Restart
	Quit
)

func (k Key) String() string {
	switch k {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// KeySet is the set of keys newly pressed since the previous tick.
// Pressing a key several times within one tick counts once.
type KeySet uint8

// Keys builds a KeySet from individual keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Without returns the set with k removed
func (s KeySet) Without(k Key) KeySet {
	return s &^ (1 << k)
}

// Empty reports whether no key is set
func (s KeySet) Empty() bool {
	return s == 0
}

func (s KeySet) String() string {
	var names []string
	for _, k := range []Key{Hit, Stand, Restart, Quit} {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
