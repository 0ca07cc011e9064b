package subtitle

import (
	"fmt"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// DetectLanguage returns the most common language across entry texts, or
// language.Und when nothing is recognised.
func DetectLanguage(entries []Entry) language.Tag {
	if len(entries) == 0 {
		return language.Und
	}

	counts := make(map[string]int)
	for _, e := range entries {
		code := whatlanggo.DetectLang(e.Text).Iso6391()
		if code == "" {
			continue
		}
		counts[code]++
	}

	var (
		top      string
		topCount int
	)
	for code, count := range counts {
		// ties resolve alphabetically so output stays deterministic
		if count > topCount || (count == topCount && code < top) {
			top = code
			topCount = count
		}
	}
	if top == "" {
		return language.Und
	}

	tag, err := language.Parse(top)
	if err != nil {
		return language.Und
	}
	return tag
}

// LanguageHeader renders the LRC [la:xx] tag, or "" for an undetermined language.
func LanguageHeader(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	base, _ := tag.Base()
	return fmt.Sprintf("[la:%s]", base.String())
}
