package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SEOSiri-Official/yalla-habibi/internal/chat"
	"github.com/SEOSiri-Official/yalla-habibi/internal/locale"
	"github.com/SEOSiri-Official/yalla-habibi/internal/model"
	"github.com/SEOSiri-Official/yalla-habibi/internal/web"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, instruction, prompt string) (string, error) {
	return f.reply, f.err
}

func newTestHandler(t *testing.T, gen chat.Generator) *Handler {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer init failed: %v", err)
	}
	return New(chat.NewService(gen, time.Second), "models/gemini-1.5-flash", renderer)
}

func decodeChat(t *testing.T, rec *httptest.ResponseRecorder) model.ChatResponse {
	t.Helper()
	var resp model.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestChatEndpointSuccess(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "Hello"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat?user_input=find+the+museum&pref=en-US", nil)
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeChat(t, rec)
	if resp.Reply != "Hello" {
		t.Errorf("expected reply Hello, got %q", resp.Reply)
	}
	if !strings.Contains(resp.MapLink, "q=find+the+museum") {
		t.Errorf("expected map link, got %q", resp.MapLink)
	}
}

func TestChatEndpointFailureStillOK(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{err: errors.New("upstream exploded")})

	req := httptest.NewRequest(http.MethodGet, "/api/chat?user_input=hello&pref=ar-SA", nil)
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("chat endpoint must answer 200 on failure, got %d", rec.Code)
	}
	resp := decodeChat(t, rec)
	if !resp.ErrorOccurred {
		t.Error("expected error flag in envelope")
	}
	if resp.Reply == "" {
		t.Error("expected a canned reply")
	}
}

func TestChatEndpointParamAliases(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat?user_input=hello&preferredLocale=auto&input_lang=bn-BD", nil)
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	resp := decodeChat(t, rec)
	if resp.VoiceLang != "bn-BD" {
		t.Errorf("expected detected locale bn-BD via aliases, got %q", resp.VoiceLang)
	}
}

func TestChatEndpointMissingInput(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "should not be used"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeChat(t, rec)
	if resp.Reply == "" {
		t.Error("expected prompt-for-input reply")
	}
	if resp.MapLink != "" {
		t.Errorf("expected no map link, got %q", resp.MapLink)
	}
}

func TestLanguagesEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	rec := httptest.NewRecorder()
	h.HandleLanguages(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var langs []model.LanguageInfo
	if err := json.NewDecoder(rec.Body).Decode(&langs); err != nil {
		t.Fatalf("decode languages: %v", err)
	}
	if len(langs) != len(locale.All) {
		t.Errorf("expected %d languages, got %d", len(locale.All), len(langs))
	}
	if langs[0].Code != locale.DefaultCode {
		t.Errorf("expected first entry %q, got %q", locale.DefaultCode, langs[0].Code)
	}
	for _, l := range langs {
		if l.Code == "" || l.Name == "" {
			t.Errorf("incomplete language entry: %+v", l)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp model.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %q", resp.Status)
	}
	if resp.Model != "models/gemini-1.5-flash" {
		t.Errorf("expected model identifier, got %q", resp.Model)
	}
}

func TestPageHandler(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "ok"})

	tests := []struct {
		name       string
		slug       string
		lang       string
		acceptLang string
		wantStatus int
		wantLang   string
	}{
		{"home default", "", "", "", http.StatusOK, `lang="en"`},
		{"home negotiated arabic", "", "", "ar-SA,en;q=0.5", http.StatusOK, `lang="ar"`},
		{"about pinned bengali", "about", "bn", "", http.StatusOK, `lang="bn"`},
		{"unknown slug", "nope", "en", "", http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			rec := httptest.NewRecorder()
			h.Page(tt.slug, tt.lang)(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantLang != "" && !strings.Contains(rec.Body.String(), tt.wantLang) {
				t.Errorf("expected body to contain %q", tt.wantLang)
			}
		})
	}
}

func TestRobotsHandler(t *testing.T) {
	h := newTestHandler(t, &fakeGenerator{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rec := httptest.NewRecorder()
	h.HandleRobots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User-agent") {
		t.Errorf("unexpected robots.txt body: %q", rec.Body.String())
	}
}
