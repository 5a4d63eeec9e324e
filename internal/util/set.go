// Package util contains small generic data-structure helpers shared across
// the ictiobus packages: ordered sets, a stack, and deterministic map
// iteration. None of it is specific to automata or grammars; it exists so
// that the core packages can rely on insertion-stable, sorted iteration
// wherever spec determinism is required.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// StringSet is a set of strings with deterministic, sorted string output.
type StringSet map[string]bool

// NewStringSet returns a new, empty StringSet, optionally seeded from the
// given maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// StringSetOf returns a StringSet containing exactly the elements of sl.
func StringSetOf(sl []string) StringSet {
	s := NewStringSet()
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

func (s StringSet) Add(v string)    { s[v] = true }
func (s StringSet) Remove(v string) { delete(s, v) }
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}
func (s StringSet) Len() int    { return len(s) }
func (s StringSet) Empty() bool { return len(s) == 0 }

func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s.Add(k)
	}
}

func (s StringSet) Copy() StringSet {
	newS := NewStringSet()
	newS.AddAll(s)
	return newS
}

func (s StringSet) Union(o StringSet) StringSet {
	newS := s.Copy()
	newS.AddAll(o)
	return newS
}

func (s StringSet) Intersection(o StringSet) StringSet {
	newS := NewStringSet()
	for k := range s {
		if o.Has(k) {
			newS.Add(k)
		}
	}
	return newS
}

func (s StringSet) Difference(o StringSet) StringSet {
	newS := s.Copy()
	for k := range o {
		newS.Remove(k)
	}
	return newS
}

func (s StringSet) Any(predicate func(v string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// Elements returns the set contents in unspecified order.
func (s StringSet) Elements() []string {
	el := make([]string, 0, len(s))
	for k := range s {
		el = append(el, k)
	}
	return el
}

// Sorted returns the set contents sorted ascending, for deterministic
// iteration (e.g. over FIRST and FOLLOW sets).
func (s StringSet) Sorted() []string {
	el := s.Elements()
	sort.Strings(el)
	return el
}

func (s StringSet) Equal(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// String gives a deterministic, sorted string representation suitable for
// use as a map key (e.g. identifying a DFA state by the NFA subset it
// represents).
func (s StringSet) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	sorted := s.Sorted()
	for i, v := range sorted {
		sb.WriteString(v)
		if i+1 < len(sorted) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

// IntSet is a set of ints with deterministic, sorted iteration. Used for
// sets of automaton state ids, where subset-construction state numbering
// needs sorted-ascending tie-breaks.
type IntSet map[int]bool

func NewIntSet(of ...[]int) IntSet {
	s := IntSet{}
	for _, sl := range of {
		for _, v := range sl {
			s.Add(v)
		}
	}
	return s
}

func (s IntSet) Add(v int)    { s[v] = true }
func (s IntSet) Remove(v int) { delete(s, v) }
func (s IntSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}
func (s IntSet) Len() int    { return len(s) }
func (s IntSet) Empty() bool { return len(s) == 0 }

func (s IntSet) AddAll(o IntSet) {
	for k := range o {
		s.Add(k)
	}
}

func (s IntSet) Copy() IntSet {
	newS := NewIntSet()
	newS.AddAll(s)
	return newS
}

// Sorted returns the set's members in ascending order. Subset construction
// (automaton.NFA.ToDFA) uses this to assign deterministic new-state ids: the
// subset's sorted member list is its canonical identity.
func (s IntSet) Sorted() []int {
	el := make([]int, 0, len(s))
	for k := range s {
		el = append(el, k)
	}
	sort.Ints(el)
	return el
}

// Key returns a string uniquely identifying the set's contents, independent
// of insertion order. Used as the map key when interning subsets during
// subset construction.
func (s IntSet) Key() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}

func (s IntSet) Equal(o IntSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}
