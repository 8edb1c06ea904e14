// Package gemini wraps the Google genai SDK behind the one call surface the
// chat service needs: a single-shot, safety-configured text generation.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/SEOSiri-Official/yalla-habibi/internal/logger"
)

// Failure modes the chat service matches on explicitly instead of parsing
// provider errors.
var (
	// ErrBlocked means the prompt or the response was stopped by the
	// content-safety filters.
	ErrBlocked = errors.New("gemini: blocked by safety filters")

	// ErrEmptyReply means the call succeeded but produced no usable text.
	ErrEmptyReply = errors.New("gemini: empty reply")
)

const fallbackModel = "models/gemini-1.5-flash"

// preferredModels in probe order. First available wins.
var preferredModels = []string{
	"models/gemini-1.5-flash",
	"models/gemini-1.5-pro",
}

var safetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
}

// Client is a thin wrapper over the genai client bound to one model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds the genai client and selects the model to use. An
// explicit modelOverride skips discovery.
func NewClient(ctx context.Context, apiKey, modelOverride string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := modelOverride
	if model == "" {
		model = selectModel(ctx, client)
	}
	logger.Log.Info().Str("model", model).Msg("gemini client configured")

	return &Client{client: client, model: model}, nil
}

// Model returns the selected model identifier, as reported by /health.
func (c *Client) Model() string { return c.model }

// selectModel probes the API for generateContent-capable models, preferring
// the flash tier. Any probe failure falls back to the default model name
// rather than failing startup.
func selectModel(ctx context.Context, client *genai.Client) string {
	var available []string
	for m, err := range client.Models.All(ctx) {
		if err != nil {
			logger.Log.Warn().Err(err).Str("fallback", fallbackModel).Msg("model discovery failed")
			return fallbackModel
		}
		if supportsGenerate(m) {
			available = append(available, m.Name)
		}
	}

	for _, preferred := range preferredModels {
		for _, name := range available {
			if name == preferred {
				return preferred
			}
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return fallbackModel
}

func supportsGenerate(m *genai.Model) bool {
	for _, action := range m.SupportedActions {
		if action == "generateContent" {
			return true
		}
	}
	return false
}

// Generate performs one text-generation call with the fixed safety and
// sampling configuration. Safety blocks and empty results are reported as
// ErrBlocked / ErrEmptyReply so callers can downgrade them explicitly.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		SafetySettings:    safetySettings,
		Temperature:       genai.Ptr[float32](0.7),
		TopP:              genai.Ptr[float32](0.95),
		TopK:              genai.Ptr[float32](40),
		MaxOutputTokens:   1024,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", ErrBlocked
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", ErrBlocked
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
