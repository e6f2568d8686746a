package requirements

import (
	"strings"

	"github.com/benjaminjackson/exa-skills/internal/markdown"
)

const (
	// Heading is the heading text of the section that receives the inlined block.
	Heading      = "Shared Requirements"
	headingLevel = 3
	openTag      = "<shared-requirements>"
	closeTag     = "</shared-requirements>"
)

// Block is a rendered replacement block.
type Block struct {
	Text string
	// Inlined lists the titles written into the block, in order.
	Inlined []string
	// Missing lists resolved titles absent from the SectionMap; they are left out.
	Missing []string
}

// BuildBlock renders the Shared Requirements block for refs using sections.
func BuildBlock(refs []string, sections SectionMap) Block {
	lines := []string{"### " + Heading, "", openTag, ""}

	var b Block
	for _, ref := range refs {
		title := TitleForReference(ref)
		body, ok := sections.Get(title)
		if !ok {
			b.Missing = append(b.Missing, title)
			continue
		}
		lines = append(lines, "#### "+title, "", body, "")
		b.Inlined = append(b.Inlined, title)
	}
	lines = append(lines, closeTag)

	b.Text = strings.Join(lines, "\n")
	return b
}

// Substitute replaces the Shared Requirements section of doc with block.
//
// The section starts at the first "### Shared Requirements" line and ends
// before the next line outside fenced code that starts with "##" but not
// "####", or at the end of doc. A "# " heading does not end it. Lines inside
// the <shared-requirements> wrapper never end the section.
// The whitespace that trailed the old section is kept after the new block.
// When doc has no such section it is returned unchanged.
func Substitute(doc, block string) (string, error) {
	start, end, ok := sectionRange(doc)
	if !ok {
		return doc, nil
	}

	region := doc[start:end]
	tail := region[len(strings.TrimRight(region, " \t\r\n")):]

	out, err := markdown.Apply([]byte(doc), markdown.Edit{
		Start:       start,
		End:         end,
		Replacement: []byte(block + tail),
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func sectionRange(doc string) (int, int, bool) {
	headings := markdown.Headings([]byte(doc))

	idx := -1
	for i, h := range headings {
		if h.Level == headingLevel && h.Text == Heading {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, 0, false
	}
	start := headings[idx].Start

	wrapStart, wrapEnd := -1, -1
	if open := strings.Index(doc[start:], openTag); open >= 0 {
		wrapStart = start + open
		if closing := strings.Index(doc[wrapStart:], closeTag); closing >= 0 {
			wrapEnd = wrapStart + closing
		}
	}

	for _, line := range markdown.ProseLines([]byte(doc)) {
		if line.Start <= start || !endsSection(line.Text) {
			continue
		}
		if wrapEnd >= 0 && line.Start > wrapStart && line.Start < wrapEnd {
			continue
		}
		return start, line.Start, true
	}
	return start, len(doc), true
}

// endsSection reports whether line closes the section: it opens with "##" or
// "###" but not with the "####" used for inlined titles.
func endsSection(line string) bool {
	return strings.HasPrefix(line, "##") && !strings.HasPrefix(line, "####")
}
