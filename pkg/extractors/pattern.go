// Package extractors locates values relative to a known keyword inside
// line-structured text: "the word two tokens right of 'Invoice #'",
// "the line one below 'Total'". It operates on any newline-joined
// string and has no dependency on how the text was reconstructed.
package extractors

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Direction is the side of the keyword the target lies on.
type Direction string

// Directions accepted by a Pattern.
const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

// ExtractType selects what is pulled out of the target cell.
type ExtractType string

// Extract types accepted by a Pattern.
const (
	ExtractWord   ExtractType = "word"
	ExtractNumber ExtractType = "number"
	ExtractLine   ExtractType = "line"
	ExtractText   ExtractType = "text"
)

// Pattern is a keyword-relative extraction rule. Construct one through
// NewPattern or ParsePattern so that invalid values are rejected up
// front; extraction itself never fails on a well-formed Pattern, it
// only reports not-found. A Pattern is immutable and may be evaluated
// concurrently against many texts.
type Pattern struct {
	Keyword     string
	Direction   Direction
	Distance    int
	ExtractType ExtractType
}

// NewPattern validates the fields and returns a Pattern.
func NewPattern(keyword string, direction Direction, distance int, extractType ExtractType) (Pattern, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return Pattern{}, fmt.Errorf("pattern keyword must not be empty")
	}

	switch direction {
	case DirectionLeft, DirectionRight, DirectionAbove, DirectionBelow:
	default:
		return Pattern{}, fmt.Errorf("direction must be one of: left, right, above, below, got: %s", direction)
	}

	if distance < 0 {
		return Pattern{}, fmt.Errorf("distance must be non-negative, got: %d", distance)
	}

	switch extractType {
	case ExtractWord, ExtractNumber, ExtractLine, ExtractText:
	default:
		return Pattern{}, fmt.Errorf("extract type must be one of: word, number, line, text, got: %s", extractType)
	}

	return Pattern{
		Keyword:     keyword,
		Direction:   direction,
		Distance:    distance,
		ExtractType: extractType,
	}, nil
}

// ParsePattern parses the textual encoding
// "keyword:direction:distance:extract_type" (colon-delimited, exactly
// four fields).
//
// Examples:
//
//	"Invoice Number:right:2:number"  number 2 words right of "Invoice Number"
//	"Total:below:1:line"             entire line 1 below "Total"
//	"Date:left:3:word"               single word 3 words left of "Date"
func ParsePattern(s string) (Pattern, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return Pattern{}, fmt.Errorf("pattern must have format 'keyword:direction:distance:extract_type', got: %s", s)
	}

	distance, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Pattern{}, fmt.Errorf("distance must be a number, got: %s", parts[2])
	}

	return NewPattern(parts[0], Direction(parts[1]), distance, ExtractType(parts[3]))
}

// ParsePatterns reads patterns from r, one per line. Blank lines and
// lines starting with '#' are skipped. The first malformed pattern
// aborts the parse with its line number.
func ParsePatterns(r io.Reader) ([]Pattern, error) {
	var patterns []Pattern

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParsePattern(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		patterns = append(patterns, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}

	return patterns, nil
}

// String returns the textual encoding of the pattern.
func (p Pattern) String() string {
	return fmt.Sprintf("%s:%s:%d:%s", p.Keyword, p.Direction, p.Distance, p.ExtractType)
}
