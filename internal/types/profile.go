// Package types defines the shared data structures exchanged between the
// catalog, ranking engine, server, and CLI.
package types

// Profile is a normalized job-seeker profile as supplied by the caller.
// All fields are free text and may be empty; empty fields are valid inputs,
// not errors (an empty location disables the location adjustment, empty
// skills score a 0% skill match).
type Profile struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
}

// QueryText builds the text that is embedded for this profile.
//
// The concatenation order (skills, experience, location) and the single-space
// separators are fixed: the string feeds a deterministic embedding call, so
// any change here silently changes every ranking. Empty components are kept
// in place, leaving doubled spaces, to stay byte-for-byte reproducible.
func (p Profile) QueryText() string {
	return p.Skills + " " + p.Experience + " " + p.Location
}
