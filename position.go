package ezpc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Position is a byte offset rendered into something a human can act on:
// a 1-indexed line and column (columns count Unicode scalar values, not
// bytes) and the source text of the offending line.
type Position struct {
	Line        int
	Column      int
	LineExcerpt string
}

// renderPosition converts a raw byte offset within src into a Position.
// offset must be a valid index into src (0 <= offset <= len(src)).
func renderPosition(src string, offset int) Position {
	line := 1 + strings.Count(src[:offset], "\n")

	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1

	lineEnd := len(src)
	if idx := strings.IndexByte(src[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}

	column := 1 + utf8.RuneCountInString(src[lineStart:offset])

	return Position{
		Line:        line,
		Column:      column,
		LineExcerpt: src[lineStart:lineEnd],
	}
}

// Render produces a caret diagnostic block in the form:
//
//	 --> line <L>, column <C>
//	 <pad> |
//	 <L> | <line_excerpt>
//	 <pad> | <column-1 spaces>^
func (p Position) Render() string {
	gutter := strconv.Itoa(p.Line)
	pad := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	fmt.Fprintf(&b, " --> line %d, column %d\n", p.Line, p.Column)
	fmt.Fprintf(&b, " %s |\n", pad)
	fmt.Fprintf(&b, " %s | %s\n", gutter, p.LineExcerpt)
	fmt.Fprintf(&b, " %s | %s^", pad, strings.Repeat(" ", p.Column-1))

	return b.String()
}
