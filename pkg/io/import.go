package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single input line. Longer lines are not words.
const maxLine = 64 * 1024

// ReadWords reads a word list from r.
//
// If the first non-space byte is '[', the input is decoded as a JSON array
// of strings. Otherwise every non-blank line is one word, with surrounding
// whitespace trimmed. ReadWords does not close r.
func ReadWords(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	if first, err := peekNonSpace(br); err == nil && first == '[' {
		var words []string
		if err := json.NewDecoder(br).Decode(&words); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return words, nil
	}

	var words []string
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return words, nil
}

// peekNonSpace returns the first non-whitespace byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !bytes.ContainsAny(b, " \t\r\n") {
			return b[0], nil
		}
		if _, err := br.ReadByte(); err != nil {
			return 0, err
		}
	}
}
