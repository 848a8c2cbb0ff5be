// Package models defines domain value objects and configuration types.
package models

import "fmt"

// ProblemIdentifier identifies a specific Codeforces problem.
// Contest IDs are numeric strings; ProblemID is a single uppercase letter,
// optionally with a trailing digit (e.g. "B1").
type ProblemIdentifier struct {
	ContestID string `json:"contest_id" yaml:"contest_id"`
	ProblemID string `json:"problem_id" yaml:"problem_id"`
	IsGym     bool   `json:"is_gym,omitempty" yaml:"is_gym,omitempty"`
}

func (p ProblemIdentifier) String() string {
	if p.IsGym {
		return fmt.Sprintf("gym/%s/%s", p.ContestID, p.ProblemID)
	}
	return fmt.Sprintf("%s/%s", p.ContestID, p.ProblemID)
}

// ContestIdentifier identifies a specific Codeforces contest.
type ContestIdentifier struct {
	ContestID string `json:"contest_id" yaml:"contest_id"`
	IsGym     bool   `json:"is_gym,omitempty" yaml:"is_gym,omitempty"`
}

func (c ContestIdentifier) String() string {
	if c.IsGym {
		return "gym/" + c.ContestID
	}
	return c.ContestID
}
