package rules

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/relink/pkg/logging"
)

// InvalidPatternError reports a pattern string that failed to compile,
// identifying the offending index in the pattern list and the underlying
// syntax problem.
type InvalidPatternError struct {
	Index   int
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern at index %d (%q): %v", e.Index, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// Compile builds the ordered rule sequence from parallel pattern and
// replacer lists. Only the first min(len(patterns), len(replacers)) pairs
// are compiled; trailing entries in the longer list are inert. Compilation
// is atomic: the first invalid pattern aborts with an *InvalidPatternError
// and no rule sequence is returned.
func Compile(patterns, replacers []string) ([]Rule, error) {
	logger := logging.GetLogger("rules.compiler")

	count := min(len(patterns), len(replacers))
	compiled := make([]Rule, 0, count)
	for i := 0; i < count; i++ {
		re, err := regexp.Compile(patterns[i])
		if err != nil {
			logger.Debug().
				Int("index", i).
				Err(err).
				Msg("Pattern failed to compile")
			return nil, &InvalidPatternError{Index: i, Pattern: patterns[i], Err: err}
		}
		compiled = append(compiled, Rule{
			re:       re,
			segments: parseTemplate(replacers[i], re.NumSubexp()),
			pattern:  patterns[i],
			replacer: replacers[i],
		})
	}

	logger.Debug().Int("ruleCount", count).Msg("Compiled rule sequence")
	return compiled, nil
}
