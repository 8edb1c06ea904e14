// Package locale holds the static language tables and the resolver used by
// the chat service and the localized page routes. Everything here is
// read-only after process start.
package locale

import "strings"

// Support describes how well the host persona performs in a language.
type Support string

const (
	SupportExcellent Support = "excellent"
	SupportGood      Support = "good"
	SupportLimited   Support = "limited"
)

// Locale is one entry of the supported-language table.
type Locale struct {
	Code       string
	Name       string
	NativeName string
	Support    Support
}

const (
	// DefaultCode is the canonical fallback locale. Earlier revisions of the
	// service flip-flopped between "en" and "en-US"; the table is keyed by
	// full codes, so the full form is authoritative.
	DefaultCode = "en-US"

	// DefaultPageLanguage is the fallback for the short page-language codes.
	DefaultPageLanguage = "en"

	// Auto asks the service to respond in the detected input language.
	Auto = "auto"
)

// All lists every supported locale in the order /api/languages reports them.
var All = []Locale{
	{"en-US", "English", "English", SupportExcellent},
	{"en-GB", "English (UK)", "English", SupportExcellent},
	{"ar-SA", "Arabic", "العربية", SupportExcellent},
	{"ar-EG", "Arabic (Egypt)", "العربية المصرية", SupportExcellent},
	{"bn-BD", "Bengali", "বাংলা", SupportGood},
	{"hi-IN", "Hindi", "हिन्दी", SupportExcellent},
	{"ur-PK", "Urdu", "اردو", SupportGood},
	{"es-ES", "Spanish", "Español", SupportExcellent},
	{"pt-BR", "Portuguese", "Português", SupportExcellent},
	{"fr-FR", "French", "Français", SupportExcellent},
	{"de-DE", "German", "Deutsch", SupportExcellent},
	{"it-IT", "Italian", "Italiano", SupportExcellent},
	{"ru-RU", "Russian", "Русский", SupportExcellent},
	{"uk-UA", "Ukrainian", "Українська", SupportGood},
	{"ja-JP", "Japanese", "日本語", SupportExcellent},
	{"ko-KR", "Korean", "한국어", SupportExcellent},
	{"zh-CN", "Chinese (Simplified)", "简体中文", SupportExcellent},
	{"zh-TW", "Chinese (Traditional)", "繁體中文", SupportGood},
	{"tr-TR", "Turkish", "Türkçe", SupportExcellent},
	{"fa-IR", "Persian", "فارسی", SupportGood},
	{"id-ID", "Indonesian", "Bahasa Indonesia", SupportGood},
	{"ms-MY", "Malay", "Bahasa Melayu", SupportGood},
	{"th-TH", "Thai", "ไทย", SupportGood},
	{"vi-VN", "Vietnamese", "Tiếng Việt", SupportGood},
	{"tl-PH", "Filipino", "Filipino", SupportGood},
	{"nl-NL", "Dutch", "Nederlands", SupportGood},
	{"sv-SE", "Swedish", "Svenska", SupportGood},
	{"no-NO", "Norwegian", "Norsk", SupportGood},
	{"da-DK", "Danish", "Dansk", SupportGood},
	{"fi-FI", "Finnish", "Suomi", SupportGood},
	{"pl-PL", "Polish", "Polski", SupportGood},
	{"cs-CZ", "Czech", "Čeština", SupportGood},
	{"sk-SK", "Slovak", "Slovenčina", SupportLimited},
	{"hu-HU", "Hungarian", "Magyar", SupportGood},
	{"ro-RO", "Romanian", "Română", SupportGood},
	{"el-GR", "Greek", "Ελληνικά", SupportGood},
	{"he-IL", "Hebrew", "עברית", SupportGood},
	{"sw-KE", "Swahili", "Kiswahili", SupportLimited},
	{"am-ET", "Amharic", "አማርኛ", SupportLimited},
	{"ta-IN", "Tamil", "தமிழ்", SupportGood},
	{"te-IN", "Telugu", "తెలుగు", SupportLimited},
	{"ml-IN", "Malayalam", "മലയാളം", SupportLimited},
	{"mr-IN", "Marathi", "मराठी", SupportLimited},
	{"pa-IN", "Punjabi", "ਪੰਜਾਬੀ", SupportLimited},
	{"ne-NP", "Nepali", "नेपाली", SupportLimited},
	{"si-LK", "Sinhala", "සිංහල", SupportLimited},
	{"my-MM", "Burmese", "မြန်မာ", SupportLimited},
	{"km-KH", "Khmer", "ខ្មែរ", SupportLimited},
}

var byCode = func() map[string]Locale {
	m := make(map[string]Locale, len(All))
	for _, l := range All {
		m[l.Code] = l
	}
	return m
}()

// Known reports whether code is a supported locale code.
func Known(code string) bool {
	_, ok := byCode[code]
	return ok
}

// Resolve maps any caller-supplied locale code onto a supported one.
// Unknown or empty codes are silently corrected to the default.
func Resolve(code string) string {
	if Known(code) {
		return code
	}
	return DefaultCode
}

// DisplayName returns the English display name for a supported code, or the
// default locale's name for anything else.
func DisplayName(code string) string {
	if l, ok := byCode[code]; ok {
		return l.Name
	}
	return byCode[DefaultCode].Name
}

// pageLanguage binds a short URL-prefix code to its full locale form and the
// Accept-Language prefixes it claims. Order is the header-resolution
// priority.
type pageLanguage struct {
	Short    string
	Full     string
	Prefixes []string
}

var pageLanguages = []pageLanguage{
	{"ar", "ar-SA", []string{"ar"}},
	{"bn", "bn-BD", []string{"bn"}},
	{"hi", "hi-IN", []string{"hi"}},
	{"es", "es-ES", []string{"es"}},
	{"fr", "fr-FR", []string{"fr"}},
	{"ru", "ru-RU", []string{"ru"}},
	{"zh", "zh-CN", []string{"zh"}},
	{"en", "en-US", []string{"en"}},
}

// PageLanguages returns the short codes usable as URL prefixes, in priority
// order.
func PageLanguages() []string {
	out := make([]string, 0, len(pageLanguages))
	for _, p := range pageLanguages {
		out = append(out, p.Short)
	}
	return out
}

// ResolvePageLanguage validates a short page-language code, falling back to
// the default page language.
func ResolvePageLanguage(short string) string {
	for _, p := range pageLanguages {
		if p.Short == short {
			return short
		}
	}
	return DefaultPageLanguage
}

// PageLocale maps a short page-language code to its full locale code.
func PageLocale(short string) string {
	for _, p := range pageLanguages {
		if p.Short == short {
			return p.Full
		}
	}
	return DefaultCode
}

// FromAcceptLanguage resolves an Accept-Language style header to a short
// page-language code. The header is lower-cased and split on commas; each
// entry has its quality value stripped and is prefix-matched against the
// page languages, first hit wins. No match yields the default.
func FromAcceptLanguage(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return DefaultPageLanguage
	}
	for _, part := range strings.Split(h, ",") {
		if idx := strings.Index(part, ";"); idx >= 0 {
			part = part[:idx]
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, p := range pageLanguages {
			for _, prefix := range p.Prefixes {
				if strings.HasPrefix(part, prefix) {
					return p.Short
				}
			}
		}
	}
	return DefaultPageLanguage
}
