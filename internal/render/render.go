// Package render substitutes build placeholders into template text.
package render

import (
	"strings"

	"github.com/starford/tfphases/internal/models"
)

// Placeholder pairs a literal token with the BuildContext value it expands to.
type Placeholder struct {
	Token   string
	Resolve func(bc models.BuildContext) string
}

// Placeholders is the fixed token table. Tokens are syntactically disjoint,
// so their order never changes the output.
var Placeholders = []Placeholder{
	{Token: "{{PHASE}}", Resolve: func(bc models.BuildContext) string { return string(bc.Phase) }},
	{Token: "{{CLOUD}}", Resolve: func(bc models.BuildContext) string { return bc.Cloud }},
	{Token: "{{REGION}}", Resolve: func(bc models.BuildContext) string { return bc.Region }},
	{Token: "{{GENERATED_AT}}", Resolve: func(bc models.BuildContext) string { return bc.GeneratedAtUTC() }},
}

// Renderer expands placeholders for a single BuildContext.
type Renderer struct {
	replacer *strings.Replacer
}

// New resolves every placeholder against bc once.
func New(bc models.BuildContext) *Renderer {
	pairs := make([]string, 0, len(Placeholders)*2)
	for _, p := range Placeholders {
		pairs = append(pairs, p.Token, p.Resolve(bc))
	}
	return &Renderer{replacer: strings.NewReplacer(pairs...)}
}

// Render replaces every token occurrence in text. Replacement values are
// never rescanned, and there is no escape syntax.
func (r *Renderer) Render(text string) string {
	return r.replacer.Replace(text)
}
