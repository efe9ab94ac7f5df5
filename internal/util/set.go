// Package util contains small generic container types shared across the
// grammex packages: sets with and without an attached value, and a stack.
// None of it is specific to grammars or parsing; it exists so that the
// grammar, automaton, lrtable, and driver packages don't each reinvent
// ordered-set bookkeeping.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// ISet is the common shape of every set in this package: something that can
// be queried, combined, and rendered deterministically for use as a map or
// struct key.
type ISet[E any] interface {
	// Elements returns the members of the set in no particular order.
	Elements() []E

	// Add adds element to the set. No effect if already present.
	Add(element E)

	// Has returns whether element is in the set.
	Has(element E) bool

	// Len returns the number of elements in the set.
	Len() int

	// Union returns a new set containing every element of s and o.
	Union(o ISet[E]) ISet[E]

	// Empty returns whether the set has no elements.
	Empty() bool

	// StringOrdered renders the set's elements sorted alphabetically by their
	// %v representation. Two sets with the same elements produce the same
	// StringOrdered() output regardless of insertion order — this is what
	// lets item sets and DFA states use it as a canonical map key.
	StringOrdered() string
}

// VSet is a set that additionally maps each string element to a value of
// type V — used for item sets, where the element is the item's canonical
// string form and the value is the item itself.
type VSet[V any] interface {
	ISet[string]

	// Set assigns element's value, adding element if it isn't present.
	Set(element string, data V)

	// Get retrieves element's value, or the zero value of V if absent.
	Get(element string) V

	AddAll(o VSet[V])
}

// SVSet is a VSet backed by a plain map.
type SVSet[V any] map[string]V

func NewSVSet[V any](of ...map[string]V) SVSet[V] {
	s := SVSet[V]{}
	for _, m := range of {
		for k, v := range m {
			s[k] = v
		}
	}
	return s
}

func (s SVSet[V]) Add(element string) {
	if _, ok := s[element]; !ok {
		var zero V
		s[element] = zero
	}
}

func (s SVSet[V]) Set(element string, data V) { s[element] = data }
func (s SVSet[V]) Get(element string) V        { return s[element] }
func (s SVSet[V]) Has(element string) bool     { _, ok := s[element]; return ok }
func (s SVSet[V]) Len() int                    { return len(s) }

func (s SVSet[V]) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

func (s SVSet[V]) AddAll(o VSet[V]) {
	for _, k := range o.Elements() {
		s.Set(k, o.Get(k))
	}
}

func (s SVSet[V]) Union(o ISet[string]) ISet[string] {
	newSet := NewSVSet(s)
	if vo, ok := o.(VSet[V]); ok {
		newSet.AddAll(vo)
	} else {
		for _, k := range o.Elements() {
			newSet.Add(k)
		}
	}
	return newSet
}

func (s SVSet[V]) Empty() bool { return len(s) == 0 }

func (s SVSet[V]) StringOrdered() string {
	return orderedSetString(s.Elements())
}

// StringSet is a set of strings with no attached value — used for FIRST,
// FOLLOW, terminal, and nonterminal sets.
type StringSet map[string]bool

func NewStringSet(of ...[]string) StringSet {
	s := StringSet{}
	for _, sl := range of {
		for _, e := range sl {
			s.Add(e)
		}
	}
	return s
}

func StringSetOf(sl []string) StringSet {
	return NewStringSet(sl)
}

func (s StringSet) Add(element string)      { s[element] = true }
func (s StringSet) Remove(element string)   { delete(s, element) }
func (s StringSet) Has(element string) bool { return s[element] }
func (s StringSet) Len() int                { return len(s) }
func (s StringSet) Empty() bool             { return len(s) == 0 }

func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

func (s StringSet) AddAll(o ISet[string]) {
	for _, k := range o.Elements() {
		s.Add(k)
	}
}

func (s StringSet) Union(o ISet[string]) ISet[string] {
	newSet := NewStringSet(s.Elements())
	newSet.AddAll(o)
	return newSet
}

func (s StringSet) Intersection(o ISet[string]) StringSet {
	newSet := NewStringSet()
	for k := range s {
		if o.Has(k) {
			newSet.Add(k)
		}
	}
	return newSet
}

func (s StringSet) Difference(o ISet[string]) StringSet {
	newSet := NewStringSet(s.Elements())
	for _, k := range o.Elements() {
		newSet.Remove(k)
	}
	return newSet
}

func (s StringSet) Copy() StringSet {
	return NewStringSet(s.Elements())
}

func (s StringSet) Sorted() []string {
	sl := s.Elements()
	sort.Strings(sl)
	return sl
}

func (s StringSet) StringOrdered() string {
	return orderedSetString(s.Elements())
}

func (s StringSet) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	elems := s.Elements()
	for i, e := range elems {
		sb.WriteString(e)
		if i+1 < len(elems) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

func orderedSetString(elems []string) string {
	conv := make([]string, len(elems))
	copy(conv, elems)
	sort.Strings(conv)

	var sb strings.Builder
	sb.WriteRune('{')
	for i, e := range conv {
		sb.WriteString(fmt.Sprintf("%v", e))
		if i+1 < len(conv) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m sorted ascending, for deterministic
// iteration when printing tables or walking automaton states.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
