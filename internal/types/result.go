package types

// Result is one recommended job as returned to the caller.
//
// Similarity carries the raw cosine similarity rounded to 3 decimals and
// SkillMatch the skill-match percentage rounded to 2 decimals. Rounding is
// display precision only; the ordering of a result list is decided on the
// unrounded adjusted score before projection.
type Result struct {
	JobID      int     `json:"job_id"`
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	Skills     string  `json:"skills"` // echo of the profile's skills input
	Similarity float64 `json:"similarity"`
	SkillMatch float64 `json:"skill_match"`
}
