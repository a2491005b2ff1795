package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/job-recommender/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(types.Profile{Skills: "python, sql", Location: "Hyderabad"})

	out := buf.String()
	assert.Contains(t, out, "QUERY PROFILE")
	assert.Contains(t, out, "python, sql")
	assert.Contains(t, out, "(none)") // experience not set
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResults([]types.Result{
		{Title: "Data Analyst", Location: "Hyderabad", Similarity: 0.707, SkillMatch: 66.67},
	})

	out := buf.String()
	assert.Contains(t, out, "RECOMMENDATIONS (1)")
	assert.Contains(t, out, "Data Analyst")
	assert.Contains(t, out, "0.707")
}

func TestPrintResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResults(nil)

	assert.Contains(t, buf.String(), "no matching jobs")
}
