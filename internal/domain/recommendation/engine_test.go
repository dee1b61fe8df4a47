package recommendation

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"careercraft/internal/domain/skill"
)

func seedCareers() []Career {
	return []Career{
		{Name: "Biomedical Equipment Technician", RequiredSkills: []string{"Troubleshooting", "Schematics", "Hardware", "Organization", "Adaptability", "Magnets"}},
		{Name: "Penguin Counter", RequiredSkills: []string{"Basic Statistics", "Patience", "Attention To Detail", "Resistance To Cold", "Computer"}},
		{Name: "ServiceNow Developer", RequiredSkills: []string{"Troubleshooting", "Creativity", "Scripting", "Configuration", "Integration", "Flexibility"}},
	}
}

func lookupFrom(m map[string]skill.Resource) ResourceLookup {
	return func(s string) (skill.Resource, bool) {
		r, ok := m[s]
		return r, ok
	}
}

func findResult(t *testing.T, res []Result, name string) Result {
	t.Helper()
	for _, r := range res {
		if r.Career == name {
			return r
		}
	}
	t.Fatalf("career %q not in results", name)
	return Result{}
}

func TestRecommend_ServiceNowScenario(t *testing.T) {
	lookup := lookupFrom(map[string]skill.Resource{
		"Scripting": {Skill: "Scripting", Title: "Intro to Scripting Concepts", URL: "https://example.com/scripting-intro"},
	})

	res := Recommend([]string{"Troubleshooting", "Creativity"}, seedCareers(), lookup, 3)
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}

	sn := findResult(t, res, "ServiceNow Developer")
	if sn.Score != 0.333 {
		t.Fatalf("expected score 0.333, got %v", sn.Score)
	}
	if !reflect.DeepEqual(sn.MatchedSkills, []string{"Creativity", "Troubleshooting"}) {
		t.Fatalf("unexpected matched skills: %v", sn.MatchedSkills)
	}
	if !reflect.DeepEqual(sn.MissingSkills, []string{"Configuration", "Flexibility", "Integration", "Scripting"}) {
		t.Fatalf("unexpected missing skills: %v", sn.MissingSkills)
	}
	if len(sn.NextSteps) != len(sn.MissingSkills) {
		t.Fatalf("expected one next step per missing skill, got %d", len(sn.NextSteps))
	}
	for i, st := range sn.NextSteps {
		if st.Skill != sn.MissingSkills[i] {
			t.Fatalf("next step %d: expected skill %q, got %q", i, sn.MissingSkills[i], st.Skill)
		}
		if st.URL == "" {
			t.Fatalf("next step %d: empty url", i)
		}
	}
	if sn.NextSteps[3].Title != "Intro to Scripting Concepts" {
		t.Fatalf("expected stored resource for Scripting, got %q", sn.NextSteps[3].Title)
	}
	if sn.NextSteps[0].Title != "Learn Configuration" || sn.NextSteps[0].URL != FallbackURL {
		t.Fatalf("expected fallback next step, got %+v", sn.NextSteps[0])
	}
}

func TestRecommend_RankingAndTieBreak(t *testing.T) {
	res := Recommend([]string{"Troubleshooting", "Creativity"}, seedCareers(), nil, 3)

	names := []string{res[0].Career, res[1].Career, res[2].Career}
	want := []string{"ServiceNow Developer", "Biomedical Equipment Technician", "Penguin Counter"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected order %v, got %v", want, names)
	}

	// no skills: every career scores zero and input order is kept
	res = Recommend(nil, seedCareers(), nil, 3)
	for i, c := range seedCareers() {
		if res[i].Career != c.Name {
			t.Fatalf("expected stable order at %d: %q, got %q", i, c.Name, res[i].Career)
		}
		if res[i].Score != 0 {
			t.Fatalf("expected zero score, got %v", res[i].Score)
		}
		if len(res[i].MatchedSkills) != 0 {
			t.Fatalf("expected no matched skills, got %v", res[i].MatchedSkills)
		}
	}
}

func TestRecommend_MatchedCountBreaksScoreTie(t *testing.T) {
	careers := []Career{
		{Name: "A", RequiredSkills: []string{"X", "Y"}},
		{Name: "B", RequiredSkills: []string{"X", "Y", "Z", "W"}},
	}
	res := Recommend([]string{"X", "Y", "Z"}, careers, nil, 3)
	// A = 1.0, B = 0.75
	if res[0].Career != "A" {
		t.Fatalf("expected A first, got %q", res[0].Career)
	}

	careers = []Career{
		{Name: "A", RequiredSkills: []string{"X", "Q"}},
		{Name: "B", RequiredSkills: []string{"X", "Y", "Q", "R"}},
	}
	res = Recommend([]string{"X", "Y"}, careers, nil, 3)
	// both 0.5, B has more matches
	if res[0].Career != "B" || res[1].Career != "A" {
		t.Fatalf("expected B then A, got %q then %q", res[0].Career, res[1].Career)
	}
}

func TestRecommend_RanksOnRoundedScore(t *testing.T) {
	names := func(prefix string, from, to int) []string {
		out := make([]string, 0, to-from)
		for i := from; i < to; i++ {
			out = append(out, fmt.Sprintf("%s%05d", prefix, i))
		}
		return out
	}

	user := names("S", 0, 2000)
	// A: 1667/5000 = 0.3334, B: 2000/6000 = 0.3333..., both 0.333 once rounded
	careers := []Career{
		{Name: "A", RequiredSkills: append(names("S", 0, 1667), names("X", 0, 3333)...)},
		{Name: "B", RequiredSkills: append(names("S", 0, 2000), names("Y", 0, 4000)...)},
	}

	res := Recommend(user, careers, nil, 2)
	if res[0].Score != 0.333 || res[1].Score != 0.333 {
		t.Fatalf("expected both scores 0.333, got %v and %v", res[0].Score, res[1].Score)
	}
	if res[0].Career != "B" {
		t.Fatalf("expected B first on matched count, got %q", res[0].Career)
	}
}

func TestRecommend_EmptyRequirements(t *testing.T) {
	res := Recommend([]string{"Go"}, []Career{{Name: "Empty"}}, nil, 3)
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if res[0].Score != 0 {
		t.Fatalf("expected score 0, got %v", res[0].Score)
	}
	if len(res[0].MatchedSkills) != 0 || len(res[0].MissingSkills) != 0 || len(res[0].NextSteps) != 0 {
		t.Fatalf("expected empty skill lists, got %+v", res[0])
	}
}

func TestRecommend_MatchedAndMissingPartitionRequired(t *testing.T) {
	userSets := [][]string{
		nil,
		{"Troubleshooting"},
		{"Troubleshooting", "Hardware", "Patience", "Computer"},
		{"Unrelated"},
	}
	for _, us := range userSets {
		for _, r := range Recommend(us, seedCareers(), nil, 10) {
			seen := map[string]int{}
			for _, s := range r.MatchedSkills {
				seen[s]++
			}
			for _, s := range r.MissingSkills {
				seen[s]++
			}
			var req []string
			for _, c := range seedCareers() {
				if c.Name == r.Career {
					req = c.RequiredSkills
				}
			}
			if len(seen) != len(req) {
				t.Fatalf("%s: union size %d, required %d", r.Career, len(seen), len(req))
			}
			for _, s := range req {
				if seen[s] != 1 {
					t.Fatalf("%s: skill %q appears %d times across matched/missing", r.Career, s, seen[s])
				}
			}
			if !sort.StringsAreSorted(r.MatchedSkills) || !sort.StringsAreSorted(r.MissingSkills) {
				t.Fatalf("%s: expected sorted skill lists", r.Career)
			}
		}
	}
}

func TestRecommend_TopN(t *testing.T) {
	if got := len(Recommend(nil, seedCareers(), nil, 1)); got != 1 {
		t.Fatalf("expected 1 result, got %d", got)
	}
	if got := len(Recommend(nil, seedCareers(), nil, 0)); got != DefaultTopN {
		t.Fatalf("expected default %d results, got %d", DefaultTopN, got)
	}
	if got := len(Recommend(nil, seedCareers()[:2], nil, 3)); got != 2 {
		t.Fatalf("expected 2 results, got %d", got)
	}
}

func TestRecommend_DoesNotMutateInputs(t *testing.T) {
	user := []string{"Troubleshooting", "Creativity"}
	careers := seedCareers()
	Recommend(user, careers, nil, 3)

	if !reflect.DeepEqual(user, []string{"Troubleshooting", "Creativity"}) {
		t.Fatalf("user skills mutated: %v", user)
	}
	if !reflect.DeepEqual(careers, seedCareers()) {
		t.Fatalf("careers mutated")
	}
}

func TestRound3(t *testing.T) {
	cases := map[float64]float64{
		1.0 / 3.0: 0.333,
		2.0 / 3.0: 0.667,
		0.0:       0,
		1.0:       1,
	}
	for in, want := range cases {
		if got := Round3(in); got != want {
			t.Fatalf("Round3(%v): expected %v, got %v", in, want, got)
		}
	}
}
