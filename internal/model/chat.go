package model

// ChatRequest carries one chat turn. PreferredLocale may be empty or the
// sentinel "auto", in which case DetectedLocale (when known) wins.
type ChatRequest struct {
	UserInput       string `json:"user_input"`
	PreferredLocale string `json:"pref,omitempty"`
	DetectedLocale  string `json:"detected_lang,omitempty"`
}

// ChatResponse is the envelope returned by the chat endpoint. It is always
// returned with HTTP 200; failures are expressed through ErrorOccurred and
// a canned Reply rather than an error status.
type ChatResponse struct {
	Reply         string `json:"reply"`
	VoiceLang     string `json:"voice_lang"`
	MapLink       string `json:"map_link,omitempty"`
	ErrorOccurred bool   `json:"error"`
}

// LanguageInfo is one row of the /api/languages listing.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name,omitempty"`
	Support    string `json:"support,omitempty"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
