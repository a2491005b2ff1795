package ranking

import "fmt"

// Policy selects how a failed location or skill criterion is treated.
type Policy string

const (
	// PolicyPenalize shrinks a job's score when a criterion fails but keeps
	// the job in consideration. A profile with no declared location or
	// skills still receives a full ranked list.
	PolicyPenalize Policy = "penalize"
	// PolicyExclude removes a job from consideration entirely when a
	// criterion fails. Used by the offline batch mode; may return fewer
	// than TopN results, including none.
	PolicyExclude Policy = "exclude"
)

// Defaults per policy, matching the online and offline recommenders they
// came from.
const (
	DefaultTopN = 10

	DefaultPenalizeMinSkillMatch = 10
	DefaultExcludeMinSkillMatch  = 30
)

// Options configures one ranking request.
//
// TopN bounds the result list; TopN <= 0 is not an error and yields an empty
// list, TopN beyond the catalog size yields the whole catalog. MinSkillMatch
// is the percentage threshold below which the policy's skill consequence
// applies.
type Options struct {
	TopN          int
	MinSkillMatch float64
	Policy        Policy
}

// DefaultOptions returns the default options for a policy.
func DefaultOptions(policy Policy) Options {
	opts := Options{
		TopN:          DefaultTopN,
		MinSkillMatch: DefaultPenalizeMinSkillMatch,
		Policy:        PolicyPenalize,
	}
	if policy == PolicyExclude {
		opts.MinSkillMatch = DefaultExcludeMinSkillMatch
		opts.Policy = PolicyExclude
	}
	return opts
}

// ParsePolicy validates a policy string, defaulting empty input to
// PolicyPenalize.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "":
		return PolicyPenalize, nil
	case PolicyPenalize, PolicyExclude:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown policy %q (want %q or %q)", s, PolicyPenalize, PolicyExclude)
	}
}

func (o Options) validate() error {
	if o.Policy != "" && o.Policy != PolicyPenalize && o.Policy != PolicyExclude {
		return fmt.Errorf("unknown policy %q", o.Policy)
	}
	if o.MinSkillMatch < 0 || o.MinSkillMatch > 100 {
		return fmt.Errorf("min skill match %v out of range [0,100]", o.MinSkillMatch)
	}
	return nil
}
