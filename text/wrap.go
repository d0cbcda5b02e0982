package text

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a paragraph.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// BaseDirection resolves the base direction of the text using the
// Unicode bidirectional algorithm. Mixed or neutral paragraphs resolve
// to LTR.
func BaseDirection(text string) Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}
	if ordering.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// LineSpan is one measured line of broken text.
// Offsets are byte indices into the original string; End includes
// trailing whitespace and the line terminator.
type LineSpan struct {
	Start              int
	End                int
	TrailingWhitespace int
	Width              float64
}

// Trimmed returns the span's text without trailing whitespace.
func (s LineSpan) Trimmed(text string) string {
	return text[s.Start : s.End-s.TrailingWhitespace]
}

// MeasureFunc returns the advance width of a string in pixels.
type MeasureFunc func(s string) float64

// FaceMeasure returns a MeasureFunc for the face. Widths are measured
// with the shaper when one is provided, falling back to unshaped face
// advances otherwise.
func FaceMeasure(face *Face, shaper *Shaper) MeasureFunc {
	return func(s string) float64 {
		if s == "" {
			return 0
		}
		if shaper != nil {
			return shaper.Advance(s, face)
		}
		return face.Advance(s)
	}
}

// BreakLines splits text into measured lines. Hard breaks ('\n') always
// end a line; if maxWidth > 0, lines are additionally broken greedily at
// word boundaries so that the trimmed width of each line does not exceed
// maxWidth. A single word longer than maxWidth overflows rather than
// being split.
//
// Empty text yields one empty span so that a layout always has at least
// one line.
func BreakLines(text string, maxWidth float64, measure MeasureFunc) []LineSpan {
	var spans []LineSpan
	start := 0
	for {
		rel := strings.IndexByte(text[start:], '\n')
		if rel < 0 {
			spans = appendParagraph(spans, text, start, len(text), false, maxWidth, measure)
			break
		}
		end := start + rel + 1
		spans = appendParagraph(spans, text, start, end, true, maxWidth, measure)
		start = end
	}

	// A trailing newline (or empty text) produces a final empty line.
	if len(spans) == 0 || (len(text) > 0 && text[len(text)-1] == '\n') {
		spans = append(spans, LineSpan{Start: len(text), End: len(text)})
	}
	return spans
}

// appendParagraph breaks one paragraph [start, end) into spans.
// hasTerminator reports whether the paragraph ends with '\n'.
func appendParagraph(spans []LineSpan, text string, start, end int, hasTerminator bool, maxWidth float64, measure func(string) float64) []LineSpan {
	if start == end {
		return spans
	}

	content := end
	if hasTerminator {
		content = end - 1
	}
	if start == content && hasTerminator {
		return append(spans, LineSpan{Start: start, End: end, TrailingWhitespace: 1})
	}

	if maxWidth <= 0 {
		return append(spans, makeSpan(text, start, content, end, measure))
	}

	lineStart := start
	lineEnd := start // end of the last word placed on the current line
	i := start
	for i < content {
		// Scan one word and the whitespace that follows it.
		wordStart := i
		for wordStart < content && isSpaceByte(text[wordStart]) {
			wordStart++
		}
		wordEnd := wordStart
		for wordEnd < content && !isSpaceByte(text[wordEnd]) {
			wordEnd++
		}
		if wordStart == wordEnd {
			break
		}

		if lineEnd > lineStart && measure(text[lineStart:wordEnd]) > maxWidth {
			// The word doesn't fit; break before it. Whitespace between
			// the last placed word and this one trails the broken line.
			spans = append(spans, LineSpan{
				Start:              lineStart,
				End:                wordStart,
				TrailingWhitespace: wordStart - lineEnd,
				Width:              measure(text[lineStart:lineEnd]),
			})
			lineStart = wordStart
		}
		lineEnd = wordEnd
		i = wordEnd
	}

	return append(spans, makeSpan(text, lineStart, content, end, measure))
}

// makeSpan builds a span for [start, end) whose content (before trailing
// whitespace) ends at most at content.
func makeSpan(text string, start, content, end int, measure func(string) float64) LineSpan {
	trimmedEnd := trimRightOffset(text, start, content)
	return LineSpan{
		Start:              start,
		End:                end,
		TrailingWhitespace: end - trimmedEnd,
		Width:              measure(text[start:trimmedEnd]),
	}
}

// trimRightOffset returns the byte offset after the last non-space
// character in text[start:end].
func trimRightOffset(text string, start, end int) int {
	for end > start && isSpaceByte(text[end-1]) {
		end--
	}
	return end
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}
