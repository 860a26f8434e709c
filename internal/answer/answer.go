// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer selects the best knowledge-graph field for a natural-
// language question. Questions are classified into intents by trigger
// phrases; fields are scored by term overlap multiplied by intent weight,
// and the winner is rendered with a prettified label.
// Implements: prd005-query (R1-R5);
//
//	docs/ARCHITECTURE § Query.
package answer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/repo-sage/internal/graph"
)

// Answer is the selected field for a question.
type Answer struct {
	Label   string   `json:"label"`
	Content string   `json:"content"`
	Score   int      `json:"score"`
	Intents []Intent `json:"intents"`
}

// Retrieve evaluates every registry field against the document and returns
// the best-scoring non-empty one. ok is false when no field yields any text,
// which callers report as "no knowledge found".
func Retrieve(doc *graph.Document, question string) (ans Answer, ok bool) {
	intents := Classify(question)

	type chunk struct {
		label   string
		content string
	}
	var chunks []chunk
	for _, f := range Registry {
		if content := f.Extract(doc); strings.TrimSpace(content) != "" {
			chunks = append(chunks, chunk{f.Label, content})
		}
	}
	if len(chunks) == 0 {
		return Answer{}, false
	}

	bestScore := -1
	var best chunk
	for _, c := range chunks {
		total := combinedScore(termScore(question, c.content), c.label, intents)
		if total > bestScore {
			bestScore = total
			best = c
		}
	}

	content := best.content
	if listLabels[best.label] {
		// Keep only the first blank-line-separated block.
		if i := strings.Index(content, "\n\n"); i >= 0 {
			content = content[:i]
		}
		content = strings.TrimSpace(content)
	}

	return Answer{Label: best.label, Content: content, Score: bestScore, Intents: intents}, true
}

// termScore is the base relevance of text to the question: the sum over
// question tokens of that token's frequency in the text. Tokenization is
// lowercased whitespace splitting on both sides.
func termScore(question, text string) int {
	if text == "" {
		return 0
	}
	freq := make(map[string]int)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		freq[tok]++
	}
	score := 0
	for _, tok := range strings.Fields(strings.ToLower(question)) {
		score += freq[tok]
	}
	return score
}

// combinedScore folds intent weighting into the base term score. A field
// with term overlap is multiplied by its weight. A field with no overlap
// still receives the bare weight when any active intent has a weight table,
// so intent-only questions ("how do I install it?") land on the right field
// even without shared vocabulary.
func combinedScore(base int, label string, intents []Intent) int {
	weight := 1
	for _, intent := range intents {
		weight += intentWeights[intent][label]
	}
	if base > 0 {
		return base * weight
	}
	if anyWeighted(intents) {
		return weight
	}
	return base
}

func anyWeighted(intents []Intent) bool {
	for _, intent := range intents {
		if _, ok := intentWeights[intent]; ok {
			return true
		}
	}
	return false
}

// Format renders an answer as a prettified label, a dash underline of the
// same display width, and the trimmed content.
func Format(a Answer) string {
	label := prettyLabel(a.Label)
	underline := strings.Repeat("-", utf8.RuneCountInString(label))
	return label + "\n" + underline + "\n" + strings.TrimSpace(a.Content)
}

// prettyLabel turns "install:commands" into "Install → Commands".
func prettyLabel(label string) string {
	s := strings.ReplaceAll(label, ":", " → ")
	s = strings.ReplaceAll(s, "_", " ")
	return titleCase(s)
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest, with any non-letter acting as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			inWord = false
			b.WriteRune(r)
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		default:
			inWord = true
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
