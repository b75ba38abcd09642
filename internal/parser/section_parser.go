package parser

import (
	"strings"

	"investmentanalyzer/internal/domain"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SectionParser turns free-form model output into labelled sections
type SectionParser interface {
	Parse(text string) domain.SectionedText
}

// KeywordSectionParser treats any line containing one of its keywords as a
// heading, including body lines that merely mention a keyword.
type KeywordSectionParser struct {
	keywords []string
}

func NewKeywordSectionParser(keywords ...string) KeywordSectionParser {
	upper := make([]string, 0, len(keywords))
	for _, k := range keywords {
		upper = append(upper, strings.ToUpper(k))
	}
	return KeywordSectionParser{keywords: upper}
}

func (p KeywordSectionParser) isHeading(line string) bool {
	upperLine := strings.ToUpper(line)
	for _, k := range p.keywords {
		if strings.Contains(upperLine, k) {
			return true
		}
	}
	return false
}

func (p KeywordSectionParser) Parse(text string) domain.SectionedText {
	sections := orderedmap.New[string, string]()

	currentSection := ""
	content := []string{}
	flush := func() {
		if currentSection != "" && len(content) > 0 {
			sections.Set(currentSection, strings.Join(content, "\n"))
		}
		content = []string{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if p.isHeading(line) {
			flush()
			label, rest, _ := strings.Cut(line, ":")
			currentSection = strings.TrimSpace(label)
			if rest = strings.TrimSpace(rest); rest != "" {
				content = append(content, rest)
			}
			continue
		}

		// anything before the first heading is dropped
		if currentSection != "" {
			content = append(content, line)
		}
	}
	flush()

	return domain.SectionedText{
		Sections: sections,
		Raw:      text,
	}
}
