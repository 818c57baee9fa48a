package main

import "sort"

// KeySet is the set of top-level keys of one translation file.
type KeySet map[string]struct{}

func newKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in lexical order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Minus returns the sorted keys of s that are absent from other.
func (s KeySet) Minus(other KeySet) []string {
	out := []string{}
	for k := range s {
		if !other.Has(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// SymmetricDifference returns the sorted keys present in exactly one of s and other.
func (s KeySet) SymmetricDifference(other KeySet) []string {
	out := append(s.Minus(other), other.Minus(s)...)
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same keys.
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}
