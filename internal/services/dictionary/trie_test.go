package dictionary

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TrieSuite struct {
	suite.Suite
	trie *Trie
}

func TestTrieSuite(t *testing.T) {
	suite.Run(t, new(TrieSuite))
}

func (s *TrieSuite) SetupTest() {
	s.trie = NewTrie()
}

func (s *TrieSuite) TestContainsRoundTrip() {
	words := []string{"cat", "cats", "car", "dog"}
	for _, w := range words {
		s.trie.Insert(w)
	}

	for _, w := range words {
		s.True(s.trie.Contains(w), "expected %q to be present", w)
	}
	s.False(s.trie.Contains("ca"))
	s.False(s.trie.Contains("catsup"))
	s.False(s.trie.Contains("bird"))
}

func (s *TrieSuite) TestContainsRequiresEndOfWordMark() {
	s.trie.Insert("cats")

	// "cat" is reachable but was never inserted
	s.False(s.trie.Contains("cat"))
	s.True(s.trie.HasPrefix("cat"))
}

func (s *TrieSuite) TestEmptyStringIsNeverAWord() {
	s.False(s.trie.Contains(""))
	s.trie.Insert("")
	s.False(s.trie.Contains(""))
	s.Equal(0, s.trie.Len())
}

func (s *TrieSuite) TestCaseInsensitive() {
	s.trie.Insert("Apple")
	s.True(s.trie.Contains("apple"))
	s.True(s.trie.Contains("APPLE"))
	s.True(s.trie.HasPrefix("aPp"))
}

func (s *TrieSuite) TestHasPrefix() {
	s.trie.Insert("crumble")

	for _, p := range []string{"c", "cr", "crumb", "crumble"} {
		s.True(s.trie.HasPrefix(p), "expected prefix %q", p)
	}
	s.False(s.trie.HasPrefix("crumbles"))
	s.False(s.trie.HasPrefix("x"))
}

func (s *TrieSuite) TestHasPrefixEmptyTrie() {
	s.False(s.trie.HasPrefix(""))
	s.False(s.trie.HasPrefix("a"))
}

func (s *TrieSuite) TestWordsWithPrefix() {
	for _, w := range []string{"cat", "cats", "car", "cart", "dog"} {
		s.trie.Insert(w)
	}

	s.Equal([]string{"car", "cart", "cat", "cats"}, s.trie.WordsWithPrefix("ca"))
	s.Equal([]string{"cat", "cats"}, s.trie.WordsWithPrefix("cat"))
	s.Nil(s.trie.WordsWithPrefix("z"))
	s.Equal([]string{"car", "cart", "cat", "cats", "dog"}, s.trie.WordsWithPrefix(""))
}

func (s *TrieSuite) TestNextCharacters() {
	for _, w := range []string{"cat", "car", "cab", "dog"} {
		s.trie.Insert(w)
	}

	next := s.trie.NextCharacters("ca")
	s.Len(next, 3)
	s.Contains(next, 't')
	s.Contains(next, 'r')
	s.Contains(next, 'b')

	next = s.trie.NextCharacters("")
	s.Len(next, 2)
	s.Contains(next, 'c')
	s.Contains(next, 'd')

	s.Nil(s.trie.NextCharacters("zz"))
	s.Empty(s.trie.NextCharacters("cat"))
}

func (s *TrieSuite) TestDuplicateInsertCountsOnce() {
	s.trie.Insert("cat")
	s.trie.Insert("cat")
	s.trie.Insert("CAT")
	s.Equal(1, s.trie.Len())
}
