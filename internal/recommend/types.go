// Package recommend matches extracted contract clauses against candidate
// service-plan definitions and produces a ranked recommendation per clause.
package recommend

// PlanClause is one named requirement of a candidate plan.
type PlanClause struct {
	Category    string `json:"category,omitempty"`
	ClauseItem  string `json:"clauseItem"`
	Requirement string `json:"requirement"`
	Notes       string `json:"notes,omitempty"`
}

// PlanCandidate is one service plan the clauses are ranked against.
type PlanCandidate struct {
	PlanID      string       `json:"planId"`
	PlanName    string       `json:"planName"`
	Description string       `json:"description,omitempty"`
	Clauses     []PlanClause `json:"clauses"`
}

// Clause is one extracted contract clause to be matched. ClauseType is a tag
// such as onsite_sla, yearly_maintenance, remote_maintenance, training_support
// or key_spare_parts.
type Clause struct {
	ClauseID        string            `json:"clauseId"`
	ClauseType      string            `json:"clauseType"`
	ClauseText      string            `json:"clauseText"`
	Attributes      map[string]string `json:"structuredAttributes,omitempty"`
	OriginalSnippet string            `json:"originalSnippet,omitempty"`
}

// Request pairs the clauses with the candidate catalog.
type Request struct {
	Clauses    []Clause        `json:"clauses"`
	Candidates []PlanCandidate `json:"candidates"`
}

// ClauseRecommendation is the per-clause verdict. The alternative lists are
// always arrays, possibly empty, never null.
type ClauseRecommendation struct {
	ClauseID             string   `json:"clauseId"`
	ClauseType           string   `json:"clauseType"`
	RecommendedPlanID    *string  `json:"recommendedPlanId"`
	RecommendedPlanName  *string  `json:"recommendedPlanName"`
	Rationale            string   `json:"rationale"`
	AlternativePlanIDs   []string `json:"alternativePlanIds"`
	AlternativePlanNames []string `json:"alternativePlanNames"`
}

// Result is the matcher's validated output: one document-level overall
// recommendation plus exactly one entry per input clause.
type Result struct {
	Summary                string                 `json:"summary"`
	OverallPlanID          *string                `json:"overallPlanId"`
	OverallPlanName        *string                `json:"overallPlanName"`
	OverallAdjustmentNotes *string                `json:"overallAdjustmentNotes"`
	Matches                []ClauseRecommendation `json:"matches"`
}
