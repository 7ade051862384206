package extractors

import (
	"regexp"
	"strings"
)

// numberPattern matches signed decimal tokens with '.' or ','
// separator groups, e.g. -3, 100.50, 1,234.56.
var numberPattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)*`)

// PatternExtractor evaluates keyword-relative patterns against
// line-structured text. It holds no per-document state and is safe for
// concurrent use.
type PatternExtractor struct{}

// NewPatternExtractor creates a PatternExtractor.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// position is a (line, word) cell inside the text, carrying the line's
// raw text so later stages need not re-split the document.
type position struct {
	line     int
	word     int
	lineText string
}

// Extract evaluates one pattern against the text. The second return
// value is false when the keyword is absent, the target cell falls
// outside the text, or the target holds no content of the requested
// type. Those are expected outcomes, not errors.
func (e *PatternExtractor) Extract(text string, pattern Pattern) (string, bool) {
	anchor, ok := e.findKeyword(text, pattern.Keyword)
	if !ok {
		return "", false
	}

	target, ok := e.targetPosition(text, anchor, pattern.Direction, pattern.Distance)
	if !ok {
		return "", false
	}

	return e.extractContent(target, pattern.ExtractType)
}

// ExtractAll evaluates several patterns against the same text. Each
// result slot carries its own found flag; one absent pattern does not
// affect the others.
func (e *PatternExtractor) ExtractAll(text string, patterns []Pattern) []Result {
	results := make([]Result, len(patterns))
	for i, p := range patterns {
		value, found := e.Extract(text, p)
		results[i] = Result{Value: value, Found: found}
	}
	return results
}

// Result is the outcome of evaluating one pattern.
type Result struct {
	Value string
	Found bool
}

// findKeyword scans lines top to bottom for a case-insensitive
// substring hit, then maps the hit back to a word index. A word claims
// the match when it contains the final matched character, so a
// multi-word keyword anchors at its last token and "right of the
// keyword" means right of the whole phrase. The containment condition
// catches keywords with embedded punctuation ("Invoice #:") whose
// offsets the single-space arithmetic can miss. First match wins.
func (e *PatternExtractor) findKeyword(text, keyword string) (position, bool) {
	lowerKeyword := strings.ToLower(keyword)
	lines := strings.Split(text, "\n")

	for lineIdx, line := range lines {
		matchStart := strings.Index(strings.ToLower(line), lowerKeyword)
		if matchStart < 0 {
			continue
		}
		matchLast := matchStart + len(lowerKeyword) - 1

		words := strings.Fields(line)
		charPos := 0
		for wordIdx, word := range words {
			wordStart := charPos
			wordEnd := charPos + len(word)

			if (wordStart <= matchLast && matchLast < wordEnd) ||
				strings.Contains(strings.ToLower(word), lowerKeyword) {
				return position{line: lineIdx, word: wordIdx, lineText: line}, true
			}

			charPos = wordEnd + 1 // +1 for the separating space
		}
	}

	return position{}, false
}

// targetPosition applies direction and distance to the anchor. For
// left/right the unit is a word on the anchor's line; the +1 on right
// skips the keyword token itself. For above/below the unit is a whole
// line and the word index is pinned to 0.
func (e *PatternExtractor) targetPosition(text string, anchor position, direction Direction, distance int) (position, bool) {
	lines := strings.Split(text, "\n")

	switch direction {
	case DirectionLeft:
		target := anchor.word - distance
		if target < 0 {
			return position{}, false
		}
		return position{line: anchor.line, word: target, lineText: lines[anchor.line]}, true

	case DirectionRight:
		wordsInLine := len(strings.Fields(lines[anchor.line]))
		target := anchor.word + distance + 1
		if target >= wordsInLine {
			return position{}, false
		}
		return position{line: anchor.line, word: target, lineText: lines[anchor.line]}, true

	case DirectionAbove:
		target := anchor.line - distance
		if target < 0 {
			return position{}, false
		}
		return position{line: target, word: 0, lineText: lines[target]}, true

	case DirectionBelow:
		target := anchor.line + distance
		if target >= len(lines) {
			return position{}, false
		}
		return position{line: target, word: 0, lineText: lines[target]}, true
	}

	return position{}, false
}

// extractContent pulls the requested content type out of the target
// cell's line.
func (e *PatternExtractor) extractContent(target position, extractType ExtractType) (string, bool) {
	words := strings.Fields(target.lineText)
	if len(words) == 0 {
		return "", false
	}

	switch extractType {
	case ExtractLine:
		return strings.TrimSpace(target.lineText), true

	case ExtractWord:
		if target.word < len(words) {
			return words[target.word], true
		}
		return "", false

	case ExtractNumber:
		// Scan a short window of words starting at the target; labels
		// like "$" or "USD" often sit between the cell and its number.
		end := target.word + 3
		if end > len(words) {
			end = len(words)
		}
		for i := target.word; i < end; i++ {
			if match := numberPattern.FindString(words[i]); match != "" {
				return match, true
			}
		}
		return "", false

	case ExtractText:
		if target.word < len(words) {
			return strings.Join(words[target.word:], " "), true
		}
		return "", false
	}

	return "", false
}

// Match is one occurrence of a keyword inside the text.
type Match struct {
	Line     int
	Word     int
	Token    string
	LineText string
}

// FindAllKeywordMatches returns every word token containing the
// keyword, case-insensitively. Useful when diagnosing why a pattern
// anchored somewhere unexpected.
func (e *PatternExtractor) FindAllKeywordMatches(text, keyword string) []Match {
	lowerKeyword := strings.ToLower(keyword)

	var matches []Match
	for lineIdx, line := range strings.Split(text, "\n") {
		for wordIdx, word := range strings.Fields(line) {
			if strings.Contains(strings.ToLower(word), lowerKeyword) {
				matches = append(matches, Match{
					Line:     lineIdx,
					Word:     wordIdx,
					Token:    word,
					LineText: line,
				})
			}
		}
	}
	return matches
}
