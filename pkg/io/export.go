package io

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/anagramma/pkg/anagram"
	"github.com/matzehuels/anagramma/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Generation is the result of generating anagrams of one word.
type Generation struct {
	Word       string   `json:"word" yaml:"word"`
	Normalized string   `json:"normalized" yaml:"normalized"`
	Unique     bool     `json:"unique" yaml:"unique"`
	Count      string   `json:"count" yaml:"count"`
	Total      string   `json:"total" yaml:"total"`
	Anagrams   []string `json:"anagrams" yaml:"anagrams"`
}

// Comparison is the result of checking two words.
type Comparison struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	KeyA     string `json:"key_a" yaml:"key_a"`
	KeyB     string `json:"key_b" yaml:"key_b"`
	Anagrams bool   `json:"anagrams" yaml:"anagrams"`
}

// WordCount is the distinct-arrangement count of one word.
type WordCount struct {
	Word    string         `json:"word" yaml:"word"`
	Key     string         `json:"key" yaml:"key"`
	Count   string         `json:"count" yaml:"count"`
	Letters map[string]int `json:"letters" yaml:"letters"`
}

// Counts is a list of word counts.
type Counts struct {
	Words []WordCount `json:"words" yaml:"words"`
}

// WordKey pairs a word with its anagram key.
type WordKey struct {
	Word string `json:"word" yaml:"word"`
	Key  string `json:"key" yaml:"key"`
}

// Keys is a list of anagram keys.
type Keys struct {
	Words []WordKey `json:"words" yaml:"words"`
}

// Shuffles holds random rearrangements of one word.
type Shuffles struct {
	Word    string   `json:"word" yaml:"word"`
	Results []string `json:"results" yaml:"results"`
}

// Group is one anagram class.
type Group struct {
	Key   string   `json:"key" yaml:"key"`
	Words []string `json:"words" yaml:"words"`
}

// GroupsDoc is the ordered list of anagram classes.
type GroupsDoc struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// ExamplesDoc is the reference table of anagram pairs.
type ExamplesDoc struct {
	Pairs []anagram.Pair `json:"pairs" yaml:"pairs"`
}

// FromGroups converts grouping results into their ordered document form.
func FromGroups(g anagram.Groups) GroupsDoc {
	doc := GroupsDoc{Groups: make([]Group, 0, g.Len())}
	for key, words := range g.All() {
		doc.Groups = append(doc.Groups, Group{Key: key, Words: words})
	}
	return doc
}

// FromCount builds the count document for word.
func FromCount(word string) WordCount {
	letters := make(map[string]int)
	for r, n := range anagram.Multiset(word) {
		letters[string(r)] = n
	}
	return WordCount{
		Word:    word,
		Key:     anagram.Key(word),
		Count:   anagram.Count(word).String(),
		Letters: letters,
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes v as YAML with two-space indentation.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Encode writes v in the given machine-readable format.
// FormatText is not handled here and yields an INVALID_FORMAT error.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "cannot encode as %q", format)
}
