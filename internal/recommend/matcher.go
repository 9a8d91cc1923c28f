package recommend

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/schema"
)

// rationale is bounded so downstream tables stay readable.
const rationaleMaxLen = 60

var resultSchema = schema.MustObject("service_plan_recommendation", map[string]any{
	"summary":         schema.Str("overall recommendation summary for the whole document"),
	"overallPlanId":   schema.NullableStr("overall recommended plan id; null when no plan fits"),
	"overallPlanName": schema.NullableStr("overall recommended plan name; null when no plan fits"),
	"overallAdjustmentNotes": schema.NullableStr("adjustments needed on top of the standard plan; " +
		"null when none"),
	"matches": schema.List("one entry per input clause",
		schema.Object("one per-clause recommendation", map[string]any{
			"clauseId":            schema.Str("input clause id, copied unchanged"),
			"clauseType":          schema.Str("input clause type, copied unchanged"),
			"recommendedPlanId":   schema.NullableStr("recommended plan id; null when no plan fits"),
			"recommendedPlanName": schema.NullableStr("recommended plan name; null when no plan fits"),
			"rationale": schema.MaxLen(schema.Str("why this plan matches, kept short"),
				rationaleMaxLen),
			"alternativePlanIds":   schema.List("alternative plan ids, best first; may be empty", schema.Str("")),
			"alternativePlanNames": schema.List("alternative plan names, best first; may be empty", schema.Str("")),
		},
			"clauseId", "clauseType", "recommendedPlanId", "recommendedPlanName",
			"rationale", "alternativePlanIds", "alternativePlanNames",
		)),
}, "summary", "overallPlanId", "overallPlanName", "overallAdjustmentNotes", "matches")

const matcherPrompt = "You are a service-plan advisor for equipment service contracts. " +
	"The user message lists the candidate service plans and then the contract clauses to match. " +
	"For every clause pick the plan whose requirements best satisfy it, or null when none fits, " +
	"and close with one overall recommendation for the whole contract. " +
	"Every input clause must appear exactly once in the matches list, identified by its clauseId."

// Matcher specializes the extraction engine for clause-to-plan ranking.
type Matcher struct {
	engine *extract.Engine
}

func NewMatcher(engine *extract.Engine) *Matcher {
	return &Matcher{engine: engine}
}

// Recommend ranks each clause against the candidate plans. Empty inputs are
// rejected before any generation call; the validated result is additionally
// gated on per-clause completeness, checked by clause id rather than position.
func (m *Matcher) Recommend(ctx context.Context, req Request) (*Result, error) {
	if len(req.Candidates) == 0 {
		return nil, extract.NewInputError("candidate plan list is empty; nothing to match against")
	}
	if len(req.Clauses) == 0 {
		return nil, extract.NewInputError("clause list is empty; nothing to match")
	}

	out, err := extract.RunAs[Result](ctx, m.engine, extract.Task{
		Instructions: matcherPrompt,
		Schema:       resultSchema,
		Content:      buildUserPrompt(req.Candidates, req.Clauses),
	})
	if err != nil {
		return nil, err
	}
	if err := checkCompleteness(req.Clauses, out.Matches); err != nil {
		return nil, &extract.OutputError{Schema: resultSchema.Name(), Raw: "", Err: err}
	}
	return &out, nil
}

// buildUserPrompt renders the two ordered inputs deterministically: numbered
// candidate blocks, then numbered clause blocks, then the fixed closing
// instruction naming the ranking factors.
func buildUserPrompt(candidates []PlanCandidate, clauses []Clause) string {
	var b strings.Builder

	b.WriteString("Candidate service plans:\n")
	for i, plan := range candidates {
		fmt.Fprintf(&b, "%d. %s (ID: %s)\n", i+1, plan.PlanName, plan.PlanID)
		if plan.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", plan.Description)
		}
		b.WriteString("   Key clauses:\n")
		for _, c := range plan.Clauses {
			category := c.Category
			if category == "" {
				category = "uncategorized"
			}
			fmt.Fprintf(&b, "   - [%s] %s: %s\n", category, c.ClauseItem, c.Requirement)
			if c.Notes != "" {
				fmt.Fprintf(&b, "     Notes: %s\n", c.Notes)
			}
		}
	}

	b.WriteString("\nContract clauses to match:\n")
	for i, c := range clauses {
		fmt.Fprintf(&b, "%d. Clause ID %s | type %s\n", i+1, c.ClauseID, c.ClauseType)
		fmt.Fprintf(&b, "   Description: %s\n", c.ClauseText)
		if len(c.Attributes) > 0 {
			pairs := make([]string, 0, len(c.Attributes))
			for _, k := range sortedKeys(c.Attributes) {
				pairs = append(pairs, k+": "+c.Attributes[k])
			}
			fmt.Fprintf(&b, "   Key fields: %s\n", strings.Join(pairs, "; "))
		}
		if c.OriginalSnippet != "" {
			fmt.Fprintf(&b, "   Contract snippet: %s\n", c.OriginalSnippet)
		}
	}

	b.WriteString("\nWeigh the SLA terms, maintenance frequency, remote monitoring, training and " +
		"spare-part coverage of each plan to pick the best match for every clause.")
	return b.String()
}

// checkCompleteness verifies every input clause received exactly one
// recommendation, matched by id: no omissions, no duplicates, no strays.
func checkCompleteness(clauses []Clause, matches []ClauseRecommendation) error {
	want := make(map[string]bool, len(clauses))
	for _, c := range clauses {
		want[c.ClauseID] = false
	}
	for _, m := range matches {
		seen, ok := want[m.ClauseID]
		if !ok {
			return fmt.Errorf("recommendation for unknown clause id %q", m.ClauseID)
		}
		if seen {
			return fmt.Errorf("duplicate recommendation for clause id %q", m.ClauseID)
		}
		want[m.ClauseID] = true
	}
	for _, c := range clauses {
		if !want[c.ClauseID] {
			return fmt.Errorf("no recommendation for clause id %q", c.ClauseID)
		}
	}
	return nil
}

// sortedKeys keeps prompt assembly deterministic regardless of map order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
