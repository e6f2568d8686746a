package requirements

import (
	"regexp"
	"strings"
)

// SectionMap maps canonical titles to their trimmed body text.
//
// Only titles found in the source document are present; a SectionMap is never
// modified after Extract returns it.
type SectionMap map[string]string

// Get returns the body for title.
func (m SectionMap) Get(title string) (string, bool) {
	body, ok := m[title]
	return body, ok
}

// Titles returns the titles present in the map in canonical order.
func (m SectionMap) Titles() []string {
	titles := make([]string, 0, len(m))
	for _, s := range canonical {
		if _, ok := m[s.Title]; ok {
			titles = append(titles, s.Title)
		}
	}
	return titles
}

// Extract parses the common requirements document into a SectionMap.
//
// Each canonical section is read from the first <tag>...</tag> region named
// after its kebab-case title. Sections without a marker pair, or with an empty
// body, are left out.
func Extract(source string) SectionMap {
	sections := make(SectionMap, len(canonical))
	for _, s := range canonical {
		tag := regexp.QuoteMeta(s.Tag())
		re := regexp.MustCompile(`(?s)<` + tag + `>(.*?)</` + tag + `>`)
		m := re.FindStringSubmatch(source)
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[1])
		if body == "" {
			continue
		}
		sections[s.Title] = body
	}
	return sections
}
