package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkills_SplitsTrimsAndLowercases(t *testing.T) {
	set := ParseSkills(" Python ,  SQL, python,,  ")

	assert.Len(t, set, 2)
	assert.True(t, set["python"])
	assert.True(t, set["sql"])
}

func TestParseSkills_Empty(t *testing.T) {
	assert.Empty(t, ParseSkills(""))
	assert.Empty(t, ParseSkills(" , , "))
}

func TestMatchPercent_FullAndPartialMatch(t *testing.T) {
	jobText := "We need Python and SQL for data analysis"

	assert.InDelta(t, 100.0, MatchPercent("python, sql", jobText), 1e-9)
	assert.InDelta(t, 50.0, MatchPercent("python, rust", jobText), 1e-9)
	assert.InDelta(t, 0.0, MatchPercent("rust, haskell", jobText), 1e-9)
}

func TestMatchPercent_EmptySkillsIsZero(t *testing.T) {
	assert.Zero(t, MatchPercent("", "python sql"))
	assert.Zero(t, MatchPercent("  ,  ", "python sql"))
}

func TestMatchPercent_CaseWhitespaceAndOrderInvariant(t *testing.T) {
	jobText := "Looking for PYTHON, sql and Go engineers"

	a := MatchPercent("python, sql", jobText)
	b := MatchPercent("  SQL  ,  Python  ", jobText)

	assert.Equal(t, a, b)
	assert.InDelta(t, 100.0, a, 1e-9)
}

func TestMatchPercent_ExactTokensOnly(t *testing.T) {
	// "java" must not match "javascript": tokens compare whole, not by prefix.
	assert.Zero(t, MatchPercent("java", "we use javascript daily"))

	// Multi-word skills split into independent tokens; each token is matched
	// and counted on its own.
	assert.InDelta(t, 50.0, MatchPercent("machine learning", "deep learning role"), 1e-9)
	assert.InDelta(t, 100.0, MatchPercent("machine learning", "machine learning role"), 1e-9)
}

func TestMatchPercent_DuplicatesDoNotInflate(t *testing.T) {
	// Duplicated skill tokens collapse before the ratio is computed.
	assert.InDelta(t, 50.0, MatchPercent("python, python, rust", "python shop"), 1e-9)
}

func TestMatchPercent_RangeBounds(t *testing.T) {
	inputs := []string{"", "python", "python, sql, go, rust", "a, b, c"}
	for _, in := range inputs {
		got := MatchPercent(in, "python sql baking")
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}
