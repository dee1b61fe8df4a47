package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/domain/career"
	"careercraft/internal/domain/recommendation"
	"careercraft/internal/domain/skill"
	"careercraft/internal/domain/user"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type fakeAuth struct {
	users map[string]user.User
}

func (f *fakeAuth) Register(_ context.Context, username string) (user.User, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return user.User{}, usecase.ErrInvalidInput
	}
	if _, ok := f.users[name]; ok {
		return user.User{}, usecase.ErrConflict
	}
	u := user.User{ID: int64(len(f.users) + 1), Username: name}
	f.users[name] = u
	return u, nil
}

func (f *fakeAuth) Login(_ context.Context, username string) (user.User, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return user.User{}, usecase.ErrInvalidInput
	}
	u, ok := f.users[name]
	if !ok {
		return user.User{}, usecase.ErrNotFound
	}
	return u, nil
}

type fakeUserSkills struct {
	skills    map[int64][]string
	removed   []string
	listErr   error
	knownUser int64
}

func (f *fakeUserSkills) ListUserSkills(_ context.Context, userID int64) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.skills[userID], nil
}

func (f *fakeUserSkills) AddUserSkill(_ context.Context, userID int64, raw string) (string, error) {
	s := skill.Normalize(raw)
	if s == "" {
		return "", usecase.ErrInvalidInput
	}
	if userID != f.knownUser {
		return "", usecase.ErrNotFound
	}
	f.skills[userID] = append(f.skills[userID], s)
	return s, nil
}

func (f *fakeUserSkills) RemoveUserSkill(_ context.Context, _ int64, raw string) (string, error) {
	f.removed = append(f.removed, raw)
	return skill.Normalize(raw), nil
}

type fakeRecommendations struct {
	report    usecase.RecommendationReport
	err       error
	lastTopN  int
	lastUser  int64
	lastInput []string
}

func (f *fakeRecommendations) GetForUser(_ context.Context, userID int64, topN int) (usecase.RecommendationReport, error) {
	f.lastUser = userID
	f.lastTopN = topN
	return f.report, f.err
}

func (f *fakeRecommendations) GetForSkills(_ context.Context, raw []string, topN int) (usecase.RecommendationReport, error) {
	f.lastInput = raw
	f.lastTopN = topN
	return f.report, f.err
}

type fakeCatalog struct {
	items []career.WithSkills
	err   error
}

func (f *fakeCatalog) ListCareers(context.Context) ([]career.WithSkills, error) {
	return f.items, f.err
}

type testDeps struct {
	auth   *fakeAuth
	skills *fakeUserSkills
	recs   *fakeRecommendations
	cat    *fakeCatalog
}

func newTestApp(t *testing.T) (*fiber.App, *testDeps) {
	t.Helper()

	d := &testDeps{
		auth:   &fakeAuth{users: map[string]user.User{}},
		skills: &fakeUserSkills{skills: map[int64][]string{}, knownUser: 1},
		recs:   &fakeRecommendations{},
		cat:    &fakeCatalog{},
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())

	api := app.Group("/api")
	NewHealthHandler(nil).RegisterRoutes(api)
	NewAuthHandler(d.auth).RegisterRoutes(api)
	NewUserSkillHandler(d.skills).RegisterRoutes(api)
	NewRecommendationHandler(d.recs).RegisterRoutes(api)
	NewCareerHandler(d.cat).RegisterRoutes(api)

	return app, d
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	out := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/health", "")
	if status != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected health reply: %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodGet, "/api/ready", "")
	if status != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected ready reply: %d %v", status, body)
	}
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func TestReady_DatabaseDown(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(failingPinger{}).RegisterRoutes(app)

	status, body := doJSON(t, app, http.MethodGet, "/ready", "")
	if status != http.StatusServiceUnavailable || body["status"] != "unavailable" {
		t.Fatalf("unexpected ready reply: %d %v", status, body)
	}
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/users", `{"username":"alice"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, body)
	}
	if body["username"] != "alice" || body["id"] != float64(1) {
		t.Fatalf("unexpected user: %v", body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/users", `{"username":"alice"}`)
	if status != http.StatusConflict || body["error"] != "username already exists" {
		t.Fatalf("expected 409, got %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/users", `{"username":"   "}`)
	if status != http.StatusBadRequest || body["error"] != "username is required" {
		t.Fatalf("expected 400, got %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/login", `{"username":"alice"}`)
	if status != http.StatusOK || body["id"] != float64(1) {
		t.Fatalf("expected login to succeed, got %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/login", `{"username":"bob"}`)
	if status != http.StatusNotFound || body["error"] != "user not found" {
		t.Fatalf("expected 404, got %d %v", status, body)
	}
}

func TestAuth_MalformedBody(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/users", `{"username":`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %v", status, body)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestUserSkills_InvalidUserID(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/api/users/abc/skills", "/api/users/abc/recommendations"} {
		status, body := doJSON(t, app, http.MethodGet, target, "")
		if status != http.StatusBadRequest || body["error"] != "invalid user id" {
			t.Fatalf("%s: expected 400 invalid user id, got %d %v", target, status, body)
		}
	}
}

func TestUserSkills_AddListRemove(t *testing.T) {
	app, d := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/users/1/skills", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, body)
	}
	if skills, ok := body["skills"].([]any); !ok || len(skills) != 0 {
		t.Fatalf("expected empty skills array, got %v", body["skills"])
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/users/1/skills", `{"skill":"  data   ANALYSIS "}`)
	if status != http.StatusOK || body["message"] != "skill added" || body["skill"] != "Data Analysis" {
		t.Fatalf("unexpected add reply: %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/users/1/skills", `{"skill":" "}`)
	if status != http.StatusBadRequest || body["error"] != "skill is required" {
		t.Fatalf("expected 400, got %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/users/99/skills", `{"skill":"Go"}`)
	if status != http.StatusNotFound || body["error"] != "user not found" {
		t.Fatalf("expected 404, got %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodGet, "/api/users/1/skills", "")
	if status != http.StatusOK || body["user_id"] != float64(1) {
		t.Fatalf("unexpected list reply: %d %v", status, body)
	}
	skills, _ := body["skills"].([]any)
	if len(skills) != 1 || skills[0] != "Data Analysis" {
		t.Fatalf("unexpected skills: %v", body["skills"])
	}

	status, body = doJSON(t, app, http.MethodDelete, "/api/users/1/skills/data%20analysis", "")
	if status != http.StatusOK || body["message"] != "skill removed" || body["skill"] != "Data Analysis" {
		t.Fatalf("unexpected remove reply: %d %v", status, body)
	}
	if len(d.skills.removed) != 1 || d.skills.removed[0] != "data analysis" {
		t.Fatalf("expected decoded skill passed through, got %v", d.skills.removed)
	}
}

func TestUserSkills_RemoveSkillWithSlash(t *testing.T) {
	app, d := newTestApp(t)

	status, body := doJSON(t, app, http.MethodDelete, "/api/users/1/skills/ci/cd", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, body)
	}
	if len(d.skills.removed) != 1 || d.skills.removed[0] != "ci/cd" {
		t.Fatalf("expected wildcard to keep the slash, got %v", d.skills.removed)
	}
}

func TestUserSkills_StoreFailureIsMasked(t *testing.T) {
	app, d := newTestApp(t)
	d.skills.listErr = errors.New("internal error: list user skills: connection refused")

	status, body := doJSON(t, app, http.MethodGet, "/api/users/1/skills", "")
	if status != http.StatusInternalServerError || body["error"] != "internal server error" {
		t.Fatalf("expected masked 500, got %d %v", status, body)
	}
}

func TestRecommendations_ForUser(t *testing.T) {
	app, d := newTestApp(t)
	d.recs.report = usecase.RecommendationReport{
		UserSkills: []string{"Creativity"},
		Recommendations: []recommendation.Result{
			{
				Career:        "Penguin Counter",
				Score:         0.2,
				MatchedSkills: []string{"Creativity"},
				MissingSkills: []string{"Counting"},
				NextSteps:     []recommendation.NextStep{{Skill: "Counting", Title: "Learn Counting", URL: recommendation.FallbackURL}},
			},
			{Career: "Empty", Score: 0},
		},
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/users/7/recommendations?top_n=2", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, body)
	}
	if d.recs.lastUser != 7 || d.recs.lastTopN != 2 {
		t.Fatalf("unexpected call: user=%d topN=%d", d.recs.lastUser, d.recs.lastTopN)
	}
	if body["user_id"] != float64(7) {
		t.Fatalf("unexpected user_id: %v", body["user_id"])
	}

	recs, _ := body["recommendations"].([]any)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", body["recommendations"])
	}
	first, _ := recs[0].(map[string]any)
	if first["career"] != "Penguin Counter" || first["score"] != 0.2 {
		t.Fatalf("unexpected first recommendation: %v", first)
	}
	steps, _ := first["next_steps"].([]any)
	step, _ := steps[0].(map[string]any)
	if step["title"] != "Learn Counting" || step["url"] != recommendation.FallbackURL {
		t.Fatalf("unexpected next step: %v", step)
	}

	second, _ := recs[1].(map[string]any)
	for _, key := range []string{"matched_skills", "missing_skills", "next_steps"} {
		if arr, ok := second[key].([]any); !ok || len(arr) != 0 {
			t.Fatalf("expected %s to be an empty array, got %v", key, second[key])
		}
	}
}

func TestRecommendations_TopNDefaultsWhenInvalid(t *testing.T) {
	app, d := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/users/1/recommendations?top_n=lots", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if d.recs.lastTopN != 0 {
		t.Fatalf("expected topN to fall back to the default, got %d", d.recs.lastTopN)
	}
}

func TestRecommendations_ForSkills(t *testing.T) {
	app, d := newTestApp(t)
	d.recs.report = usecase.RecommendationReport{UserSkills: []string{"Go"}}

	status, body := doJSON(t, app, http.MethodPost, "/api/recommendations", `{"skills":["go"," "],"top_n":5}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, body)
	}
	if d.recs.lastTopN != 5 || len(d.recs.lastInput) != 2 {
		t.Fatalf("unexpected call: topN=%d input=%v", d.recs.lastTopN, d.recs.lastInput)
	}
	if _, ok := body["user_id"]; ok {
		t.Fatalf("ad-hoc reply must not carry user_id: %v", body)
	}
	if recs, ok := body["recommendations"].([]any); !ok || len(recs) != 0 {
		t.Fatalf("expected empty recommendations array, got %v", body["recommendations"])
	}
}

func TestRecommendations_Failure(t *testing.T) {
	app, d := newTestApp(t)
	d.recs.err = usecase.ErrInternal

	status, body := doJSON(t, app, http.MethodGet, "/api/users/1/recommendations", "")
	if status != http.StatusInternalServerError || body["error"] != "internal server error" {
		t.Fatalf("expected masked 500, got %d %v", status, body)
	}
}

func TestCareers_List(t *testing.T) {
	app, d := newTestApp(t)
	d.cat.items = []career.WithSkills{
		{Career: career.Career{ID: 2, Name: "Penguin Counter"}, Skills: []string{"Counting"}},
		{Career: career.Career{ID: 3, Name: "Unstaffed"}},
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/careers", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", status, body)
	}
	items, _ := body["careers"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 careers, got %v", body["careers"])
	}
	first, _ := items[0].(map[string]any)
	if first["name"] != "Penguin Counter" || first["id"] != float64(2) {
		t.Fatalf("unexpected career: %v", first)
	}
	second, _ := items[1].(map[string]any)
	if arr, ok := second["skills"].([]any); !ok || len(arr) != 0 {
		t.Fatalf("expected empty skills array, got %v", second["skills"])
	}
}
