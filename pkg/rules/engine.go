package rules

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/relink/pkg/logging"
)

// Engine applies a compiled rule sequence to text. Rules run strictly in
// order, each rule's output feeding the next rule's input, so later rules
// may match text introduced by earlier replacements.
//
// The engine holds no mutable state: Apply may be called repeatedly and
// from multiple callers over the same Engine.
type Engine struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewEngine creates an engine over an already-compiled rule sequence.
func NewEngine(rules []Rule) *Engine {
	return &Engine{
		rules:  rules,
		logger: logging.GetLogger("rules.engine"),
	}
}

// Len returns the number of rules the engine holds.
func (e *Engine) Len() int { return len(e.rules) }

// Rules returns the compiled sequence in application order.
func (e *Engine) Rules() []Rule { return e.rules }

// Apply runs every rule in order over input and returns the rewritten
// string. Apply cannot fail: malformed patterns are rejected earlier, by
// Compile, and a rule whose pattern matches nowhere is a no-op.
func (e *Engine) Apply(input string) string {
	result := input
	for i, rule := range e.rules {
		next := rule.replaceAll(result)
		if next != result {
			e.logger.Trace().
				Int("rule", i).
				Str("pattern", rule.pattern).
				Msg("Rule rewrote text")
		}
		result = next
	}
	return result
}

// ApplyOptional is the absent-input path: nil input (nothing pasted,
// nothing piped) yields the empty string. This is a defined no-op, not an
// error.
func (e *Engine) ApplyOptional(input *string) string {
	if input == nil {
		return ""
	}
	return e.Apply(*input)
}
