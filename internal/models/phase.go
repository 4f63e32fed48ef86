// Package models defines the domain types for phase bundle generation.
package models

import "time"

// Phase is a named delivery stage selecting a template set and evidence.
type Phase string

const (
	PhasePreseed Phase = "preseed"
	PhaseSeed    Phase = "seed"
	PhaseSeriesA Phase = "series-a"
	PhaseSeriesB Phase = "series-b"
)

// CloudAWS is the only cloud accepted for generation.
const CloudAWS = "aws"

// Generation instants render as ISO-8601 UTC. The fraction is microseconds
// and is omitted entirely when zero.
const (
	TimestampLayout       = "2006-01-02T15:04:05.000000Z"
	TimestampLayoutSecond = "2006-01-02T15:04:05Z"
)

// Phases returns every supported phase in canonical order.
func Phases() []Phase {
	return []Phase{PhasePreseed, PhaseSeed, PhaseSeriesA, PhaseSeriesB}
}

// PhaseNames returns the supported phase names as strings.
func PhaseNames() []string {
	phases := Phases()
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = string(p)
	}
	return out
}

// HasPlanEvidence reports whether the phase produces a plan stub.
func (p Phase) HasPlanEvidence() bool {
	return p == PhaseSeriesA || p == PhaseSeriesB
}

// HasPolicyEvidence reports whether the phase produces a policy report.
func (p Phase) HasPolicyEvidence() bool {
	return p == PhaseSeriesB
}

// BuildContext is the identity of one generation run. GeneratedAt is
// captured once and reused for every timestamp the run writes.
type BuildContext struct {
	Phase       Phase
	Cloud       string
	Region      string
	GeneratedAt time.Time
}

// NewBuildContext pins now to UTC.
func NewBuildContext(phase Phase, cloud, region string, now time.Time) BuildContext {
	return BuildContext{
		Phase:       phase,
		Cloud:       cloud,
		Region:      region,
		GeneratedAt: now.UTC(),
	}
}

// GeneratedAtUTC formats the generation instant.
func (bc BuildContext) GeneratedAtUTC() string {
	t := bc.GeneratedAt.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(TimestampLayoutSecond)
	}
	return t.Format(TimestampLayout)
}
