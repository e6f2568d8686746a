package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX heading line found in a Markdown document.
//
// Start is the byte offset of the line holding the heading, so source[Start:]
// begins with the heading's '#' marker.
type Heading struct {
	Level int
	Text  string
	Start int
}

// Line is one line of a Markdown document, without its terminator.
type Line struct {
	Start int
	Text  string
}

// ProseLines returns the lines of source that lie outside fenced code blocks.
// goldmark decides where those blocks are.
func ProseLines(source []byte) []Line {
	code := fencedCodeRanges(source)

	var out []Line
	for start := 0; start < len(source); {
		end := bytes.IndexByte(source[start:], '\n')
		if end < 0 {
			end = len(source)
		} else {
			end += start
		}

		if !inRanges(code, start) {
			out = append(out, Line{Start: start, Text: string(source[start:end])})
		}
		start = end + 1
	}
	return out
}

// Headings returns the ATX headings of source in document order.
//
// Headings are recognised line by line: a line starting with one to six '#'
// followed by whitespace or end of line. Lines inside fenced code blocks are
// skipped.
func Headings(source []byte) []Heading {
	var out []Heading
	for _, line := range ProseLines(source) {
		if level, title, ok := atxHeading([]byte(line.Text)); ok {
			out = append(out, Heading{Level: level, Text: title, Start: line.Start})
		}
	}
	return out
}

func atxHeading(line []byte) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := line[level:]
	if len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\r' {
		return 0, "", false
	}
	return level, string(bytes.TrimSpace(rest)), true
}

type byteRange struct{ start, end int }

func inRanges(ranges []byteRange, pos int) bool {
	for _, r := range ranges {
		if pos >= r.start && pos < r.end {
			return true
		}
	}
	return false
}

// fencedCodeRanges returns the byte ranges covered by fenced code block content.
func fencedCodeRanges(source []byte) []byteRange {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var ranges []byteRange
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		block, ok := n.(*gmast.FencedCodeBlock)
		if !ok {
			return gmast.WalkContinue, nil
		}
		lines := block.Lines()
		if lines.Len() > 0 {
			ranges = append(ranges, byteRange{start: lines.At(0).Start, end: lines.At(lines.Len() - 1).Stop})
		}
		return gmast.WalkSkipChildren, nil
	})
	return ranges
}
