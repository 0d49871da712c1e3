// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"fmt"
	"unicode"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/length"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/stop"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/character"
)

// minTokenRunes drops single-character tokens such as "a", "2" or "x".
const minTokenRunes = 2

// Tokenizer turns feature text into index terms. It is stateless after
// construction and safe for concurrent use.
type Tokenizer struct {
	analyzer *analysis.DefaultAnalyzer
}

// NewTokenizer builds the analysis chain:
// letter/digit runs, lower case, length >= 2, English stop words removed.
func NewTokenizer() (*Tokenizer, error) {
	stopWords := analysis.NewTokenMap()
	if err := stopWords.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("load english stop words: %w", err)
	}

	return &Tokenizer{
		analyzer: &analysis.DefaultAnalyzer{
			Tokenizer: character.NewCharacterTokenizer(isTokenRune),
			TokenFilters: []analysis.TokenFilter{
				lowercase.NewLowerCaseFilter(),
				length.NewLengthFilter(minTokenRunes, 0),
				stop.NewStopTokensFilter(stopWords),
			},
		},
	}, nil
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokens returns the terms of text in order of appearance, repeats included.
func (t *Tokenizer) Tokens(text string) []string {
	stream := t.analyzer.Analyze([]byte(text))
	out := make([]string, 0, len(stream))
	for _, tok := range stream {
		out = append(out, string(tok.Term))
	}
	return out
}
