// Package skills provides the deterministic, embedding-free skill-match
// scorer used by the ranking engine.
package skills

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of word characters (letters, digits,
// underscore). Job description text is tokenized with it before matching.
var wordPattern = regexp.MustCompile(`\w+`)

// ParseSkills splits a comma-separated skills string into a deduplicated set
// of lower-cased word tokens. A multi-word entry like "machine learning"
// contributes its words independently; there are no phrase tokens. Empty
// entries are discarded. Returns an empty set for an empty input.
func ParseSkills(userSkills string) map[string]bool {
	set := make(map[string]bool)
	for _, raw := range strings.Split(userSkills, ",") {
		for _, token := range wordPattern.FindAllString(strings.ToLower(raw), -1) {
			set[token] = true
		}
	}
	return set
}

// MatchPercent returns the percentage (0-100) of the user's declared skills
// that appear verbatim, case-insensitively, among the word tokens of jobText.
//
// Matching is exact token equality: no stemming, no substring matching, and
// no multi-word phrases. A skill entered as "machine learning" counts as the
// two tokens "machine" and "learning", each matched on its own. An empty
// skills string matches nothing and returns 0.
func MatchPercent(userSkills, jobText string) float64 {
	skillSet := ParseSkills(userSkills)
	if len(skillSet) == 0 {
		return 0
	}

	jobTokens := make(map[string]bool)
	for _, word := range wordPattern.FindAllString(strings.ToLower(jobText), -1) {
		jobTokens[word] = true
	}

	matched := 0
	for skill := range skillSet {
		if jobTokens[skill] {
			matched++
		}
	}

	return float64(matched) / float64(len(skillSet)) * 100
}
