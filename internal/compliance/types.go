// Package compliance matches contract text against a catalog of standard
// clauses and flags deviations with a risk assessment.
package compliance

// Compliance verdict enum. Matching is exact and case-sensitive.
const (
	VerdictConform    = "conform"
	VerdictNonConform = "non-conform"
	VerdictNotCovered = "not-covered"
)

// Risk level enum.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
	RiskNone   = "none"
)

// StandardClause is one entry of the standard-terms catalog supplied by the
// caller.
type StandardClause struct {
	Category     string `json:"category"`
	Item         string `json:"item"`
	StandardText string `json:"standardText"`
	RiskLevel    string `json:"riskLevel,omitempty"`
}

// Risk is the assessment attached to an extracted clause.
type Risk struct {
	Level          string `json:"level"`
	Opinion        string `json:"opinion"`
	Recommendation string `json:"recommendation"`
}

// StandardReference points back to the catalog entry a clause was judged
// against.
type StandardReference struct {
	StandardText   string `json:"standard_text"`
	ClauseCategory string `json:"clause_category"`
	ClauseItem     string `json:"clause_item"`
}

// ExtractedClause is one clause found in the contract, with its verdict.
type ExtractedClause struct {
	ClauseCategory    string            `json:"clause_category"`
	ClauseItem        string            `json:"clause_item"`
	ContractSnippet   string            `json:"contract_snippet"`
	StandardReference StandardReference `json:"standard_reference"`
	Compliance        string            `json:"compliance"`
	Risk              Risk              `json:"risk"`
}

// AnalysisResult is the detector's validated output.
type AnalysisResult struct {
	ExtractedClauses []ExtractedClause `json:"extracted_clauses"`
}
