package models

// FileRecord binds a path relative to the output root to its content digest.
type FileRecord struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// Manifest describes the complete output tree of one generation run.
type Manifest struct {
	Name           string       `json:"name"`
	Profile        string       `json:"profile"`
	Phase          Phase        `json:"phase"`
	Cloud          string       `json:"cloud"`
	Region         string       `json:"region"`
	GeneratedAtUTC string       `json:"generated_at_utc"`
	Files          []FileRecord `json:"files"`
}

// PlanCheck is a single demonstration check result.
type PlanCheck struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	Required []string `json:"required,omitempty"`
	Mode     string   `json:"mode,omitempty"`
}

// PlanStub is demonstration-only plan evidence. It is not a real plan.
type PlanStub struct {
	Demo           bool        `json:"demo"`
	Note           string      `json:"note"`
	Phase          Phase       `json:"phase"`
	Cloud          string      `json:"cloud"`
	Region         string      `json:"region"`
	GeneratedAtUTC string      `json:"generated_at_utc"`
	Checks         []PlanCheck `json:"checks"`
}

// PolicyResult is a single demonstration policy outcome.
type PolicyResult struct {
	Policy string `json:"policy"`
	Result string `json:"result"`
}

// PolicyReport is demonstration-only policy evidence.
type PolicyReport struct {
	Demo     bool           `json:"demo"`
	Note     string         `json:"note"`
	Phase    Phase          `json:"phase"`
	Result   string         `json:"result"`
	Policies []PolicyResult `json:"policies"`
}
