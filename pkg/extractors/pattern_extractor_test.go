package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPattern(t *testing.T, keyword string, direction Direction, distance int, extractType ExtractType) Pattern {
	t.Helper()
	p, err := NewPattern(keyword, direction, distance, extractType)
	require.NoError(t, err)
	return p
}

func TestExtractWordRightOfKeyword(t *testing.T) {
	e := NewPatternExtractor()
	text := "Invoice Number: 12345 ABC"

	value, found := e.Extract(text, mustPattern(t, "Invoice Number:", DirectionRight, 0, ExtractWord))
	require.True(t, found)
	assert.Equal(t, "12345", value)
}

func TestExtractWordLeftOfKeyword(t *testing.T) {
	e := NewPatternExtractor()
	text := "ABC 12345 Total Amount"

	value, found := e.Extract(text, mustPattern(t, "Total", DirectionLeft, 1, ExtractWord))
	require.True(t, found)
	assert.Equal(t, "12345", value)
}

func TestExtractLineBelowKeyword(t *testing.T) {
	e := NewPatternExtractor()
	text := "Invoice Details\nTotal: $100.50\nPayment Due"

	value, found := e.Extract(text, mustPattern(t, "Invoice Details", DirectionBelow, 1, ExtractLine))
	require.True(t, found)
	assert.Equal(t, "Total: $100.50", value)
}

func TestExtractLineAboveKeyword(t *testing.T) {
	e := NewPatternExtractor()
	text := "Invoice Details\nTotal: $100.50\nPayment Due"

	value, found := e.Extract(text, mustPattern(t, "Payment Due", DirectionAbove, 1, ExtractLine))
	require.True(t, found)
	assert.Equal(t, "Total: $100.50", value)
}

func TestExtractNumberSkipsCurrencyNoise(t *testing.T) {
	e := NewPatternExtractor()
	text := "Total Amount: $1,234.56 USD"

	value, found := e.Extract(text, mustPattern(t, "Total Amount:", DirectionRight, 0, ExtractNumber))
	require.True(t, found)
	assert.Equal(t, "1,234.56", value)
}

func TestExtractNumberAbsentInWindow(t *testing.T) {
	e := NewPatternExtractor()

	// The number scan window is three words wide
	text := "Items: alpha beta gamma delta 42"
	_, found := e.Extract(text, mustPattern(t, "Items:", DirectionRight, 0, ExtractNumber))
	assert.False(t, found)
}

func TestExtractTextToEndOfLine(t *testing.T) {
	e := NewPatternExtractor()
	text := "Bill To: Acme Corp Ltd\nNext line"

	value, found := e.Extract(text, mustPattern(t, "Bill To:", DirectionRight, 0, ExtractText))
	require.True(t, found)
	assert.Equal(t, "Acme Corp Ltd", value)
}

func TestKeywordAbsentIsNotAnError(t *testing.T) {
	e := NewPatternExtractor()

	value, found := e.Extract("nothing relevant here", mustPattern(t, "Invoice", DirectionRight, 0, ExtractWord))
	assert.False(t, found)
	assert.Equal(t, "", value)

	_, found = e.Extract("", mustPattern(t, "Invoice", DirectionRight, 0, ExtractWord))
	assert.False(t, found)
}

func TestTargetOutOfRangeIsAbsent(t *testing.T) {
	e := NewPatternExtractor()
	text := "Invoice Number: 12345"

	// Past the end of the line
	_, found := e.Extract(text, mustPattern(t, "Invoice Number:", DirectionRight, 5, ExtractWord))
	assert.False(t, found)

	// Before the start of the line
	_, found = e.Extract(text, mustPattern(t, "Invoice", DirectionLeft, 3, ExtractWord))
	assert.False(t, found)

	// Above the first line
	_, found = e.Extract(text, mustPattern(t, "Invoice", DirectionAbove, 1, ExtractLine))
	assert.False(t, found)

	// Below the last line
	_, found = e.Extract(text, mustPattern(t, "12345", DirectionBelow, 1, ExtractLine))
	assert.False(t, found)
}

func TestKeywordSearchIsCaseInsensitive(t *testing.T) {
	e := NewPatternExtractor()
	text := "TOTAL AMOUNT: $567.89"

	value, found := e.Extract(text, mustPattern(t, "total amount:", DirectionRight, 0, ExtractNumber))
	require.True(t, found)
	assert.Equal(t, "567.89", value)
}

func TestKeywordWithPunctuationInDriftedLine(t *testing.T) {
	e := NewPatternExtractor()

	// The double space breaks the single-space offset arithmetic; the
	// token-containment rule still anchors the keyword.
	text := "Ref  Invoice#: 12345"
	value, found := e.Extract(text, mustPattern(t, "Invoice#:", DirectionRight, 0, ExtractWord))
	require.True(t, found)
	assert.Equal(t, "12345", value)
}

func TestMultiWordKeywordAnchorsAtLastToken(t *testing.T) {
	e := NewPatternExtractor()
	text := "Grand Total Due 987.65"

	value, found := e.Extract(text, mustPattern(t, "Grand Total Due", DirectionRight, 0, ExtractWord))
	require.True(t, found)
	assert.Equal(t, "987.65", value)
}

func TestSubstringKeywordTakesFirstScanHit(t *testing.T) {
	e := NewPatternExtractor()

	// "Total" is a substring of "Totals" on an earlier line; the scan
	// anchors there. Imprecise, but the defined behavior.
	text := "Totals report\nTotal: 5"
	value, found := e.Extract(text, mustPattern(t, "Total", DirectionRight, 0, ExtractWord))
	require.True(t, found)
	assert.Equal(t, "report", value)
}

func TestExtractAllKeepsIndependentResults(t *testing.T) {
	e := NewPatternExtractor()
	text := "Invoice Number: 12345\nTotal Amount: $567.89"

	results := e.ExtractAll(text, []Pattern{
		mustPattern(t, "Invoice Number:", DirectionRight, 0, ExtractNumber),
		mustPattern(t, "Missing Keyword", DirectionRight, 0, ExtractWord),
		mustPattern(t, "Total Amount:", DirectionRight, 0, ExtractNumber),
	})

	require.Len(t, results, 3)
	assert.Equal(t, Result{Value: "12345", Found: true}, results[0])
	assert.Equal(t, Result{Found: false}, results[1])
	assert.Equal(t, Result{Value: "567.89", Found: true}, results[2])
}

func TestFindAllKeywordMatches(t *testing.T) {
	e := NewPatternExtractor()
	text := "Totals report\nTotal: 5\nsubtotal 9"

	matches := e.FindAllKeywordMatches(text, "total")
	require.Len(t, matches, 3)
	assert.Equal(t, "Totals", matches[0].Token)
	assert.Equal(t, 1, matches[1].Line)
	assert.Equal(t, "subtotal", matches[2].Token)
}

func TestExtractNegativeNumber(t *testing.T) {
	e := NewPatternExtractor()
	text := "Balance: -42.10"

	value, found := e.Extract(text, mustPattern(t, "Balance:", DirectionRight, 0, ExtractNumber))
	require.True(t, found)
	assert.Equal(t, "-42.10", value)
}
