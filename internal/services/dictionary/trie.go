package dictionary

import (
	"sort"
	"strings"
)

// node is one trie node; children are keyed by lowercase letter.
type node struct {
	children map[rune]*node
	isWord   bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix tree over a word list. Words are stored lowercase
// and all queries are case-insensitive. Lookup cost is linear in the
// probe string, independent of dictionary size.
type Trie struct {
	root  *node
	count int
}

// NewTrie creates an empty trie
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// BuildTrie creates a trie holding every word in words
func BuildTrie(words []string) *Trie {
	t := NewTrie()
	for _, word := range words {
		t.Insert(word)
	}
	return t
}

// Insert adds a word. Empty strings and duplicates are ignored.
func (t *Trie) Insert(word string) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}
	n := t.root
	for _, ch := range word {
		child, ok := n.children[ch]
		if !ok {
			child = newNode()
			n.children[ch] = child
		}
		n = child
	}
	if !n.isWord {
		n.isWord = true
		t.count++
	}
}

// Contains reports whether word was inserted. Only nodes explicitly
// marked end-of-word match; the empty string never does.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n != t.root && n.isWord
}

// HasPrefix reports whether any inserted word starts with prefix.
// Every word is a prefix of itself; the empty prefix matches whenever
// the trie is non-empty.
func (t *Trie) HasPrefix(prefix string) bool {
	if t.count == 0 {
		return false
	}
	return t.walk(prefix) != nil
}

// WordsWithPrefix returns every inserted word starting with prefix,
// sorted lexicographically.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	n := t.walk(prefix)
	if n == nil || t.count == 0 {
		return nil
	}

	var results []string
	collect(n, prefix, &results)
	sort.Strings(results)
	return results
}

// NextCharacters returns the set of letters that can extend prefix
// toward at least one inserted word.
func (t *Trie) NextCharacters(prefix string) map[rune]struct{} {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	next := make(map[rune]struct{}, len(n.children))
	for ch := range n.children {
		next[ch] = struct{}{}
	}
	return next
}

// Len returns the number of distinct words inserted
func (t *Trie) Len() int {
	return t.count
}

// walk follows probe from the root, returning nil when it falls off
func (t *Trie) walk(probe string) *node {
	n := t.root
	for _, ch := range strings.ToLower(probe) {
		child, ok := n.children[ch]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func collect(n *node, prefix string, results *[]string) {
	if n.isWord {
		*results = append(*results, prefix)
	}
	for ch, child := range n.children {
		collect(child, prefix+string(ch), results)
	}
}
