package localepack

import (
	"slices"

	"github.com/dmitrymomot/localepack/pkg/feature"
	"github.com/dmitrymomot/localepack/pkg/locale"
)

// allScripts is the pseudo-script selecting a form's aggregated table,
// which is a superset of every per-script fragment.
const allScripts = "all"

// formRequest accumulates the script tokens a normalization form was
// requested with across the feature set.
type formRequest struct {
	form     string
	all      bool
	explicit []string // explicit non-empty script tokens, first-seen order
}

// resolveNorms emits Unicode normalization data. Per form:
//
//   - any "all" token wins: only the aggregated fragment is emitted, since
//     it is a superset of every per-script fragment;
//   - explicit non-empty scripts are used exactly as given, without union
//     with the inferred required-scripts set (a form requested both bare
//     and with an explicit script resolves to the explicit script only);
//   - otherwise — no script token, or an explicitly empty one — the form
//     fans out over every script the requested locales were inferred to
//     need.
//
// Each fragment is emitted as an additive merge against the form's shared
// runtime table, not a flat assignment, because several forms accumulate
// into one in-memory table.
func (s *Session) resolveNorms(a *aggregator, feats []feature.Feature, requiredScripts []string) {
	reqs := groupForms(feats)

	for _, r := range reqs {
		if r.all {
			s.emitNorm(a, r.form, allScripts)
			continue
		}

		scripts := r.explicit
		if len(scripts) == 0 {
			scripts = requiredScripts
		}
		for _, script := range scripts {
			s.emitNorm(a, r.form, script)
		}
	}
}

// groupForms merges the normalization features into one request per form,
// preserving first-seen form order.
func groupForms(feats []feature.Feature) []*formRequest {
	var order []*formRequest
	byForm := make(map[string]*formRequest)

	for _, f := range feats {
		r, ok := byForm[f.Form]
		if !ok {
			r = &formRequest{form: f.Form}
			byForm[f.Form] = r
			order = append(order, r)
		}

		switch {
		case f.Script == allScripts:
			r.all = true
		case f.ScriptExplicit && f.Script != "":
			if !slices.Contains(r.explicit, f.Script) {
				r.explicit = append(r.explicit, f.Script)
			}
		}
	}

	return order
}

func (s *Session) emitNorm(a *aggregator, form, script string) {
	rel := form + "/" + script + ".json"
	a.recordFile(rel)

	key := "norm." + form + "." + script
	if a.has(locale.RootName, key) {
		return
	}
	if payload, ok := s.readFragment(rel); ok {
		a.add(locale.RootName, key, mergeStatement(form, payload))
	}
}

// mergeStatement builds an additive merge against the form's already
// loaded table.
func mergeStatement(form string, payload []byte) string {
	target := "root.data.norm." + form
	return target + " = Object.assign(" + target + " || {}, " + string(payload) + ");"
}
