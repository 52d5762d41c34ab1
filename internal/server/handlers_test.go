package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Jeff9497/Job8earch/internal/catalog"
	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/Jeff9497/Job8earch/internal/services"
	"github.com/Jeff9497/Job8earch/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubChat struct {
	reply services.ChatReply
	calls int
}

func (s *stubChat) Chat(_ context.Context, _, _, _ string) services.ChatReply {
	s.calls++
	return s.reply
}

func (s *stubChat) Models() []entities.ModelInfo {
	return []entities.ModelInfo{{ID: "free/model", Name: "Free Model"}}
}

type stubSkills struct {
	analysis services.SkillsAnalysis
}

func (s *stubSkills) Analyze(_ context.Context, _, _ string) services.SkillsAnalysis {
	return s.analysis
}

type stubAnalyst struct {
	analysis services.JobAnalysis
	posting  entities.JobPosting
}

func (s *stubAnalyst) Analyze(_ context.Context, posting entities.JobPosting) services.JobAnalysis {
	s.posting = posting
	return s.analysis
}

type stubCoach struct {
	guidance services.InterviewGuidance
}

func (s *stubCoach) Prepare(_ context.Context, _, _, _ string) services.InterviewGuidance {
	return s.guidance
}

type stubAvailability struct {
	report services.AvailabilityReport
}

func (s *stubAvailability) Report(_ context.Context) services.AvailabilityReport {
	return s.report
}

type testEnv struct {
	router   *gin.Engine
	chat     *stubChat
	analyst  *stubAnalyst
	sessions *session.Store
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		chat:     &stubChat{reply: services.ChatReply{Success: true, Response: "reply", Model: "m", Timestamp: time.Now().UTC()}},
		analyst:  &stubAnalyst{analysis: services.JobAnalysis{Success: true, Analysis: "analysis", JobID: "1"}},
		sessions: session.NewStore(time.Hour),
	}

	handler := NewHandler(
		catalog.New(catalog.NewMockSource()),
		env.chat,
		&stubSkills{analysis: services.SkillsAnalysis{Success: true, Analysis: "skills"}},
		env.analyst,
		&stubCoach{guidance: services.InterviewGuidance{Success: true, Guidance: "guidance"}},
		&stubAvailability{report: services.AvailabilityReport{Success: true, TotalModels: 3, FreeModels: 1}},
		env.sessions,
	)
	env.router = NewRouter(handler, nil)
	return env
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	var payload map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func Test_Health_ShouldReportOk(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", decode(t, recorder)["status"])
}

func Test_SearchJobs_WithoutFilters_ShouldReturnWholeCatalog(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/jobs", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(5), payload["totalResults"])
}

func Test_SearchJobs_ShouldHonorQueryParameters(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/jobs?keywords=developer&resultsToTake=1&resultsToSkip=0", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	jobs := payload["jobs"].([]any)
	assert.Len(t, jobs, 1)
	first := jobs[0].(map[string]any)
	assert.Equal(t, "Senior Software Developer", first["jobTitle"])
}

func Test_Categories_ShouldReturnFixedList(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/jobs/categories", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	categories := decode(t, recorder)["categories"].([]any)
	assert.Len(t, categories, len(catalog.Categories))
}

func Test_JobDetails_ShouldReturnProjection(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/jobs/2", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	job := payload["job"].(map[string]any)
	assert.Equal(t, "Product Manager", job["jobTitle"])
	assert.Equal(t, "Manchester, UK", job["locationName"])
}

func Test_JobDetails_WithUnknownId_ShouldReturn404(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/jobs/999", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Job not found", decode(t, recorder)["error"])
}

func Test_AnalyzeJob_ShouldPassPostingToAnalyst(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/jobs/3/analyze", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "UX Designer", env.analyst.posting.Title)
}

func Test_AnalyzeJob_WithUnknownId_ShouldReturn404(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/jobs/999/analyze", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_AnalyzeSkills_WithoutJobTitle_ShouldReturn400(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/skills/analyze", `{"jobDescription": "stuff"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "jobTitle is required", decode(t, recorder)["error"])
}

func Test_AnalyzeSkills_ShouldReturnAnalysis(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/skills/analyze", `{"jobTitle": "Software Developer"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "skills", decode(t, recorder)["analysis"])
}

func Test_PrepareInterview_ShouldReturnGuidance(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/interview/prepare", `{"jobTitle": "Data Scientist"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "guidance", decode(t, recorder)["guidance"])
}

func Test_SendChat_WithoutMessage_ShouldReturn400(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/chat", `{"model": "m"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, env.chat.calls)
}

func Test_SendChat_WithoutSession_ShouldCreateOneAndLogBothSides(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodPost, "/api/v1/chat", `{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	sessionID := payload["sessionId"].(string)
	assert.NotEmpty(t, sessionID)
	assert.Equal(t, "reply", payload["response"])

	history, found := env.sessions.History(sessionID)
	assert.True(t, found)
	assert.Len(t, history, 3)
	assert.Equal(t, "hello", history[1].Content)
	assert.Equal(t, "reply", history[2].Content)
	assert.False(t, history[2].IsError)
}

func Test_SendChat_WhenChatFails_ShouldLogErrorMessageAsAssistantTurn(t *testing.T) {

	env := newTestEnv()
	env.chat.reply = services.ChatReply{Error: "Rate limit exceeded. Please wait a moment before trying again.", Timestamp: time.Now().UTC()}

	recorder := env.do(http.MethodPost, "/api/v1/chat", `{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	assert.Equal(t, false, payload["success"])

	history, _ := env.sessions.History(payload["sessionId"].(string))
	assert.Len(t, history, 3)
	assert.True(t, history[2].IsError)
	assert.Contains(t, history[2].Content, "Rate limit exceeded")
}

func Test_ResetChat_ShouldReturnGreetingOnlyHistory(t *testing.T) {

	env := newTestEnv()
	id := env.sessions.Create()
	env.sessions.Append(id, entities.ChatMessage{Role: entities.RoleUser, Content: "hello"})

	recorder := env.do(http.MethodPost, "/api/v1/chat/reset", `{"sessionId": "`+id+`"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	messages := decode(t, recorder)["messages"].([]any)
	assert.Len(t, messages, 1)
}

func Test_ChatHistory_WithUnknownSession_ShouldReturn404(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/chat/history?sessionId=nope", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_ListModels_ShouldReturnAllowList(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/models", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	models := decode(t, recorder)["models"].([]any)
	assert.Len(t, models, 1)
}

func Test_ModelAvailability_ShouldReturnReport(t *testing.T) {

	env := newTestEnv()

	recorder := env.do(http.MethodGet, "/api/v1/models/availability", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	payload := decode(t, recorder)
	assert.Equal(t, float64(3), payload["totalModels"])
}
