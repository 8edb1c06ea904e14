// Package handler contains the HTTP handlers.
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/SEOSiri-Official/yalla-habibi/internal/chat"
	"github.com/SEOSiri-Official/yalla-habibi/internal/locale"
	"github.com/SEOSiri-Official/yalla-habibi/internal/logger"
	"github.com/SEOSiri-Official/yalla-habibi/internal/model"
	"github.com/SEOSiri-Official/yalla-habibi/internal/web"
)

type Handler struct {
	chat      *chat.Service
	modelName string
	renderer  *web.Renderer
}

func New(chatSvc *chat.Service, modelName string, renderer *web.Renderer) *Handler {
	return &Handler{chat: chatSvc, modelName: modelName, renderer: renderer}
}

// HandleChat serves GET /api/chat. It always answers 200 with a structured
// envelope; failures surface through the envelope's error flag only.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.ChatRequest{
		UserInput:       q.Get("user_input"),
		PreferredLocale: firstNonEmpty(q.Get("pref"), q.Get("preferredLocale")),
		DetectedLocale:  firstNonEmpty(q.Get("detected_lang"), q.Get("input_lang")),
	}
	writeJSON(w, http.StatusOK, h.chat.Handle(r.Context(), req))
}

// HandleLanguages serves GET /api/languages with the full locale table.
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	out := make([]model.LanguageInfo, 0, len(locale.All))
	for _, l := range locale.All {
		out = append(out, model.LanguageInfo{
			Code:       l.Code,
			Name:       l.Name,
			NativeName: l.NativeName,
			Support:    string(l.Support),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleHealth serves GET /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "healthy", Model: h.modelName})
}

// HandleRobots serves the embedded robots.txt.
func (h *Handler) HandleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(web.Robots)
}

// Page returns the handler for one static page. slug "" means the home
// page; lang "" means the page language comes from Accept-Language.
func (h *Handler) Page(slug, lang string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageLang := lang
		if pageLang == "" {
			pageLang = locale.FromAcceptLanguage(r.Header.Get("Accept-Language"))
		}
		greeting := locale.Greeting(locale.PageLocale(pageLang))

		// Render to a buffer so template failures can still become a clean 500.
		var buf bytes.Buffer
		var err error
		if slug == "" {
			err = h.renderer.RenderIndex(&buf, pageLang, greeting)
		} else {
			err = h.renderer.RenderPage(&buf, slug, pageLang, greeting)
		}
		if err != nil {
			logger.Log.Error().Err(err).Str("page", slug).Msg("page render failed")
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
