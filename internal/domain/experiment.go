package domain

import "time"

// ExperimentResult holds the scored outcome of a combination analysis.
// Scores are conventionally 0-100 but are not validated here; the XP
// calculation reads them as-is. Synergies and Warnings are presentation
// strings with no effect on XP.
type ExperimentResult struct {
	SafetyScore        float64  `json:"safety_score"`
	EffectivenessScore float64  `json:"effectiveness_score"`
	NoveltyScore       float64  `json:"novelty_score"`
	OverallScore       float64  `json:"overall_score"`
	Synergies          []string `json:"synergies,omitempty"`
	Warnings           []string `json:"warnings,omitempty"`
}

// Experiment represents one combination run. Results holds the analysis
// outcome; only the first entry drives XP, trailing entries are kept for
// display history.
type Experiment struct {
	ID          string             `json:"experiment_id"`
	UserID      string             `json:"user_id"`
	Consumables []Consumable       `json:"consumables"`
	Results     []ExperimentResult `json:"results"`
	Success     bool               `json:"success"`
	XPAwarded   int                `json:"xp_awarded"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// PrimaryResult returns the first result and whether one exists.
func (e Experiment) PrimaryResult() (ExperimentResult, bool) {
	if len(e.Results) == 0 {
		return ExperimentResult{}, false
	}
	return e.Results[0], true
}
