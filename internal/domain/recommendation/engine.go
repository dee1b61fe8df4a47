package recommendation

import (
	"math"
	"sort"

	"careercraft/internal/domain/skill"
)

const (
	DefaultTopN = 3

	FallbackURL   = "https://example.com"
	fallbackTitle = "Learn "
)

type Career struct {
	Name           string
	RequiredSkills []string
}

type NextStep struct {
	Skill string
	Title string
	URL   string
}

type Result struct {
	Career        string
	Score         float64
	MatchedSkills []string
	MissingSkills []string
	NextSteps     []NextStep
}

// ResourceLookup returns the stored learning resource for a normalized skill.
type ResourceLookup func(name string) (skill.Resource, bool)

// Recommend scores every career against userSkills and returns the best topN.
//
// Careers are expected in name order; results tying on (score, matched count)
// keep that order. Scores are rounded to three decimals before ranking.
func Recommend(userSkills []string, careers []Career, lookup ResourceLookup, topN int) []Result {
	if topN <= 0 {
		topN = DefaultTopN
	}

	have := toSet(userSkills)

	out := make([]Result, 0, len(careers))
	for _, c := range careers {
		out = append(out, score(have, c, lookup))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return len(out[i].MatchedSkills) > len(out[j].MatchedSkills)
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func score(have map[string]struct{}, c Career, lookup ResourceLookup) Result {
	required := toSet(c.RequiredSkills)

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for s := range required {
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var ratio float64
	if len(required) > 0 {
		ratio = float64(len(matched)) / float64(len(required))
	}

	steps := make([]NextStep, 0, len(missing))
	for _, s := range missing {
		steps = append(steps, nextStep(s, lookup))
	}

	return Result{
		Career:        c.Name,
		Score:         Round3(ratio),
		MatchedSkills: matched,
		MissingSkills: missing,
		NextSteps:     steps,
	}
}

func nextStep(s string, lookup ResourceLookup) NextStep {
	if lookup != nil {
		if r, ok := lookup(s); ok {
			return NextStep{Skill: s, Title: r.Title, URL: r.URL}
		}
	}
	return NextStep{Skill: s, Title: fallbackTitle + s, URL: FallbackURL}
}

// Round3 rounds half away from zero to three decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func toSet(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
