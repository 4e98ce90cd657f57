package planner

import (
	"github.com/arthur-debert/ren/pkg/errors"
	"github.com/arthur-debert/ren/pkg/logging"
	"github.com/arthur-debert/ren/pkg/pattern"
	"github.com/arthur-debert/ren/pkg/template"
)

// RenamePair is a single old name to new name mapping.
type RenamePair struct {
	Old string
	New string
}

// Unchanged reports whether the pair is an identity rename.
func (p RenamePair) Unchanged() bool {
	return p.Old == p.New
}

// Plan is a fully validated set of rename pairs. A plan only exists in
// an accepted state: every target name maps to exactly one source, and
// no target would overwrite an unrelated existing file. Validation
// failures discard the plan entirely, so no partial plan ever reaches
// an executor.
type Plan struct {
	pairs   []RenamePair
	targets map[string]string // new name -> old name
}

// Pairs returns the rename pairs in planning order.
func (p *Plan) Pairs() []RenamePair {
	return p.pairs
}

// Len returns the number of pairs in the plan.
func (p *Plan) Len() int {
	return len(p.pairs)
}

// Source returns the old name mapped to the given target, if any.
func (p *Plan) Source(target string) (string, bool) {
	old, ok := p.targets[target]
	return old, ok
}

// Build matches every candidate name against the compiled pattern,
// expands tmpl for each match, and validates the resulting mapping.
//
// Candidates are the deduplicated regular-file names of the working
// directory, in the order the caller wants them processed. They are
// passed in rather than read from the environment so planning can be
// tested against synthetic name sets.
//
// Validation is all-or-nothing: the first target claimed by two sources
// fails with a collision error, and the first target that already
// exists without being renamed away itself fails with an overwrite
// error. Identity pairs (old == new) are legal no-ops.
func Build(candidates []string, cp *pattern.Compiled, tmpl string) (*Plan, error) {
	logger := logging.GetLogger("planner")

	present := make(map[string]struct{}, len(candidates))
	for _, name := range candidates {
		present[name] = struct{}{}
	}

	// Collect every pair up front: the overwrite exemption below needs
	// to know all sources in the plan, including ones appearing after
	// the pair under validation.
	var pairs []RenamePair
	sources := make(map[string]struct{})
	for _, name := range candidates {
		captures, ok := cp.Match(name)
		if !ok {
			continue
		}
		newName := template.Expand(tmpl, captures)
		logger.Debug().
			Str("old", name).
			Str("new", newName).
			Msg("candidate matched")
		pairs = append(pairs, RenamePair{Old: name, New: newName})
		sources[name] = struct{}{}
	}

	targets := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if prev, dup := targets[pair.New]; dup {
			return nil, errors.Newf(errors.ErrCollision,
				"both %q and %q would be renamed to %q", prev, pair.Old, pair.New).
				WithDetail("target", pair.New)
		}

		if !pair.Unchanged() {
			_, exists := present[pair.New]
			_, renamedAway := sources[pair.New]
			if exists && !renamedAway {
				return nil, errors.Newf(errors.ErrOverwrite,
					"renaming %q to %q would overwrite an existing file", pair.Old, pair.New).
					WithDetail("target", pair.New)
			}
		}

		targets[pair.New] = pair.Old
	}

	logger.Debug().Int("pairs", len(pairs)).Msg("plan validated")

	return &Plan{pairs: pairs, targets: targets}, nil
}
