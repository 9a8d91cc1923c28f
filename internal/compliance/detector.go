package compliance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/schema"
)

var analysisSchema = schema.MustObject("clause_analysis", map[string]any{
	"extracted_clauses": schema.List("every contract clause matched against the standard catalog",
		schema.Object("one extracted clause", map[string]any{
			"clause_category": schema.Str("clause category, e.g. delivery and transport"),
			"clause_item":     schema.Str("specific clause item, e.g. delivery period"),
			"contract_snippet": schema.Str("the contract excerpt that best captures the obligation; " +
				"quote verbatim"),
			"standard_reference": schema.Object("the catalog entry this clause was judged against", map[string]any{
				"standard_text":   schema.Str("standard wording from the catalog"),
				"clause_category": schema.Str("catalog category"),
				"clause_item":     schema.Str("catalog item"),
			}, "standard_text", "clause_category", "clause_item"),
			"compliance": schema.StrEnum("compliance verdict",
				VerdictConform, VerdictNonConform, VerdictNotCovered),
			"risk": schema.Object("risk assessment", map[string]any{
				"level": schema.StrEnum("risk level", RiskHigh, RiskMedium, RiskLow, RiskNone),
				"opinion": schema.Str("why this level: the key deviation, the legal/commercial " +
					"exposure, the potential loss or uncertainty"),
				"recommendation": schema.Str("suggested wording, alternative phrasing, supplementary " +
					"clause, or a fallback to the standard text"),
			}, "level", "opinion", "recommendation"),
		},
			"clause_category", "clause_item", "contract_snippet",
			"standard_reference", "compliance", "risk",
		)),
}, "extracted_clauses")

const detectPromptFmt = "You are a contract compliance reviewer for equipment service contracts. " +
	"The user message contains the standard clause catalog followed by the contract text. " +
	"Compare each relevant passage of the contract against the catalog and report every clause " +
	"you can match, judging whether it conforms to the standard wording. " +
	"Only use clause categories from this list: %s. " +
	"Quote contract snippets verbatim, without any change to punctuation, whitespace or formatting."

// Detector runs non-standard clause analysis over one Engine.
type Detector struct {
	engine *extract.Engine
}

func NewDetector(engine *extract.Engine) *Detector {
	return &Detector{engine: engine}
}

// Detect analyses the contract content against the supplied standard clause
// catalog. An empty catalog is an input error, rejected before any generation
// call.
func (d *Detector) Detect(ctx context.Context, content string, standards []StandardClause) (*AnalysisResult, error) {
	if len(standards) == 0 {
		return nil, extract.NewInputError("standard clause catalog is empty; nothing to compare against")
	}
	if strings.TrimSpace(content) == "" {
		return nil, extract.NewInputError("contract content is empty")
	}

	out, err := extract.RunAs[AnalysisResult](ctx, d.engine, extract.Task{
		Instructions: fmt.Sprintf(detectPromptFmt, strings.Join(categories(standards), ", ")),
		Schema:       analysisSchema,
		Content:      buildUserContent(content, standards),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// categories derives the allowed category list from the catalog, first
// occurrence order preserved.
func categories(standards []StandardClause) []string {
	seen := make(map[string]struct{}, len(standards))
	var out []string
	for _, s := range standards {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

func buildUserContent(content string, standards []StandardClause) string {
	var b strings.Builder
	b.WriteString("Standard clauses:\n")
	for _, s := range standards {
		entry, _ := json.Marshal(s)
		b.Write(entry)
		b.WriteByte('\n')
	}
	b.WriteString("\nContract text:\n")
	b.WriteString(content)
	return b.String()
}
