package domain

import (
	"fmt"
	"regexp"
)

var typeTokenPattern = regexp.MustCompile(`^[a-z]+$`)

// Policy holds the tunable parts of the title convention. The structural
// grammar itself is fixed; a policy only adjusts the recognized types and
// the summary length bounds.
type Policy struct {
	Types         []string `yaml:"types"           json:"types,omitempty"`
	SummaryMinLen int      `yaml:"summary_min_len" json:"summary_min_len,omitempty"`
	SummaryMaxLen int      `yaml:"summary_max_len" json:"summary_max_len,omitempty"`
}

// DefaultPolicy returns the standard convention: the conventional-commit
// type set and a 10-100 character summary.
func DefaultPolicy() Policy {
	return Policy{
		Types: []string{
			"feat", "fix", "docs", "style", "refactor",
			"perf", "test", "chore", "build", "ci", "revert",
		},
		SummaryMinLen: 10,
		SummaryMaxLen: 100,
	}
}

// HasType reports whether t (already lower-cased) is a recognized type.
func (p Policy) HasType(t string) bool {
	for _, v := range p.Types {
		if v == t {
			return true
		}
	}
	return false
}

// Validate catches typos in a user-supplied policy before merging.
// Zero values are allowed; they mean "use the default".
func (p Policy) Validate() error {
	for _, t := range p.Types {
		if !typeTokenPattern.MatchString(t) {
			return fmt.Errorf("invalid type %q: types must be lowercase alphabetic", t)
		}
	}
	if p.SummaryMinLen < 0 || p.SummaryMaxLen < 0 {
		return fmt.Errorf("summary length bounds must not be negative")
	}
	if p.SummaryMinLen > 0 && p.SummaryMaxLen > 0 && p.SummaryMinLen > p.SummaryMaxLen {
		return fmt.Errorf("summary_min_len %d exceeds summary_max_len %d", p.SummaryMinLen, p.SummaryMaxLen)
	}
	return nil
}

// MergePolicy overlays explicit override values on top of base.
// Explicit (non-zero) values always win.
func MergePolicy(base, override Policy) Policy {
	result := base
	if len(override.Types) > 0 {
		result.Types = override.Types
	}
	if override.SummaryMinLen > 0 {
		result.SummaryMinLen = override.SummaryMinLen
	}
	if override.SummaryMaxLen > 0 {
		result.SummaryMaxLen = override.SummaryMaxLen
	}
	return result
}
