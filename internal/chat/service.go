// Package chat implements the request pipeline behind /api/chat: input
// validation, locale normalization, prompt assembly, the external model
// call, and response shaping.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SEOSiri-Official/yalla-habibi/internal/gemini"
	"github.com/SEOSiri-Official/yalla-habibi/internal/locale"
	"github.com/SEOSiri-Official/yalla-habibi/internal/logger"
	"github.com/SEOSiri-Official/yalla-habibi/internal/model"
)

// Generator is the external text-generation collaborator. The production
// implementation is *gemini.Client.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Service handles chat turns. Stateless; safe for concurrent use.
type Service struct {
	gen     Generator
	timeout time.Duration
}

func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

// Handle processes one chat turn. It never returns an error: every failure
// is converted into a canned reply inside the response envelope.
func (s *Service) Handle(ctx context.Context, req model.ChatRequest) model.ChatResponse {
	voice := responseLocale(req)

	if strings.TrimSpace(req.UserInput) == "" {
		return model.ChatResponse{Reply: locale.Greeting(voice), VoiceLang: voice}
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	instruction := buildInstruction(voice, req.DetectedLocale)
	reply, err := s.gen.Generate(callCtx, instruction, strings.TrimSpace(req.UserInput))
	if err != nil {
		switch {
		case errors.Is(err, gemini.ErrBlocked):
			return model.ChatResponse{Reply: locale.RespectfulReply, VoiceLang: voice}
		case errors.Is(err, gemini.ErrEmptyReply):
			return model.ChatResponse{Reply: locale.EmptyReply, VoiceLang: voice}
		default:
			logger.Log.Error().Err(err).Str("voice_lang", voice).Msg("chat generation failed")
			return model.ChatResponse{Reply: locale.Apology(voice), VoiceLang: voice, ErrorOccurred: true}
		}
	}

	return model.ChatResponse{
		Reply:     reply,
		VoiceLang: voice,
		MapLink:   MapLink(req.UserInput),
	}
}

// responseLocale picks the locale the reply is produced in. An absent or
// "auto" preference defers to the detected input language when that is a
// known locale; everything else resolves against the locale table.
func responseLocale(req model.ChatRequest) string {
	pref := strings.TrimSpace(req.PreferredLocale)
	if (pref == "" || pref == locale.Auto) && locale.Known(req.DetectedLocale) {
		return req.DetectedLocale
	}
	return locale.Resolve(pref)
}

// buildInstruction assembles the system prompt for one turn. When the
// detected input language differs from the response locale the prompt asks
// for a translation framing instead of a same-language reply.
func buildInstruction(voice, detected string) string {
	var b strings.Builder
	b.WriteString("You are Yalla Habibi, a warm Arabic AI host. ")
	b.WriteString("Always greet briefly in Arabic, ")
	if detected != "" && detected != voice && locale.Known(detected) {
		fmt.Fprintf(&b, "translate the user's %s message and answer in %s, ",
			locale.DisplayName(detected), locale.DisplayName(voice))
	} else {
		fmt.Fprintf(&b, "reply in %s, ", locale.DisplayName(voice))
	}
	b.WriteString("and end with '--- Wisdom:' followed by a helpful tip.")
	return b.String()
}
