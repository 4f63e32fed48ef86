// Package evidence writes the demonstration-only plan and policy documents
// for the later phases. Nothing here evaluates real infrastructure.
package evidence

import (
	"path"

	"github.com/starford/tfphases/internal/models"
	"github.com/starford/tfphases/internal/storage"
)

// Dir is the evidence subtree relative to the output root.
const Dir = "EVIDENCE"

const (
	PlanFile   = "plan.json"
	PolicyFile = "policy_report.json"

	StatusPass = "pass"

	planNote   = "EVAL stub evidence. Not a real terraform plan."
	policyNote = "EVAL stub policy report (OPA/Conftest hook demo)."
)

// RequiredTags lists the tags the demo tagging check claims to enforce.
var RequiredTags = []string{"owner", "purpose", "risk", "cost_center"}

// Plan builds the plan stub for bc.
func Plan(bc models.BuildContext) models.PlanStub {
	return models.PlanStub{
		Demo:           true,
		Note:           planNote,
		Phase:          bc.Phase,
		Cloud:          bc.Cloud,
		Region:         bc.Region,
		GeneratedAtUTC: bc.GeneratedAtUTC(),
		Checks: []models.PlanCheck{
			{ID: "tags_required", Status: StatusPass, Required: append([]string(nil), RequiredTags...)},
			{ID: "region_guardrails", Status: StatusPass, Mode: "allowlist"},
		},
	}
}

// Policy builds the policy report for bc.
func Policy(bc models.BuildContext) models.PolicyReport {
	return models.PolicyReport{
		Demo:   true,
		Note:   policyNote,
		Phase:  bc.Phase,
		Result: StatusPass,
		Policies: []models.PolicyResult{
			{Policy: "deny_missing_tags", Result: StatusPass},
			{Policy: "deny_disallowed_regions", Result: StatusPass},
		},
	}
}

// Synthesize writes the evidence documents for bc.Phase and returns the
// paths written. Phases without evidence leave the tree untouched.
func Synthesize(store storage.Provider, bc models.BuildContext) ([]string, error) {
	var written []string

	if bc.Phase.HasPlanEvidence() {
		p := path.Join(Dir, PlanFile)
		if err := storage.WriteJSON(store, p, Plan(bc)); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	if bc.Phase.HasPolicyEvidence() {
		p := path.Join(Dir, PolicyFile)
		if err := storage.WriteJSON(store, p, Policy(bc)); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	return written, nil
}
