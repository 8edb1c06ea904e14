package locale

import "testing"

func TestResolveSupportedCodesUnchanged(t *testing.T) {
	for _, l := range All {
		if got := Resolve(l.Code); got != l.Code {
			t.Errorf("Resolve(%q) = %q, want unchanged", l.Code, got)
		}
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	tests := []string{"", "xx-XX", "en", "english", "ar", "EN-US", "zz"}
	for _, code := range tests {
		if got := Resolve(code); got != DefaultCode {
			t.Errorf("Resolve(%q) = %q, want %q", code, got, DefaultCode)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bengali with quality", "bn-BD,en;q=0.8", "bn"},
		{"unknown language", "xx-XX", "en"},
		{"empty header", "", "en"},
		{"uppercase arabic", "AR-SA,en;q=0.5", "ar"},
		{"plain english", "en-GB,en;q=0.9", "en"},
		{"chinese region variant", "zh-TW", "zh"},
		{"russian", "ru", "ru"},
		{"unsupported first entry", "de-DE,ar;q=0.9", "ar"},
		{"match in third entry", "it-IT,fr;q=0.8,en;q=0.5", "fr"},
		{"unknown then bengali", "xx-XX,bn;q=0.7", "bn"},
		{"spaces between entries", "de-DE, hi-IN;q=0.6", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAcceptLanguage(tt.header); got != tt.want {
				t.Errorf("FromAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestResolvePageLanguage(t *testing.T) {
	tests := []struct {
		short string
		want  string
	}{
		{"ar", "ar"},
		{"bn", "bn"},
		{"en", "en"},
		{"de", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		if got := ResolvePageLanguage(tt.short); got != tt.want {
			t.Errorf("ResolvePageLanguage(%q) = %q, want %q", tt.short, got, tt.want)
		}
	}
}

func TestPageLocale(t *testing.T) {
	tests := []struct {
		short string
		want  string
	}{
		{"ar", "ar-SA"},
		{"zh", "zh-CN"},
		{"en", "en-US"},
		{"unknown", "en-US"},
	}
	for _, tt := range tests {
		if got := PageLocale(tt.short); got != tt.want {
			t.Errorf("PageLocale(%q) = %q, want %q", tt.short, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("ar-SA"); got != "Arabic" {
		t.Errorf("DisplayName(ar-SA) = %q, want Arabic", got)
	}
	if got := DisplayName("nope"); got != "English" {
		t.Errorf("DisplayName(nope) = %q, want English fallback", got)
	}
}

func TestCannedStringsNeverEmpty(t *testing.T) {
	codes := append([]string{"", "xx-XX"}, DefaultCode, "ar-SA", "km-KH")
	for _, code := range codes {
		if Greeting(code) == "" {
			t.Errorf("Greeting(%q) is empty", code)
		}
		if Apology(code) == "" {
			t.Errorf("Apology(%q) is empty", code)
		}
	}
}

func TestPageLanguagesAreKnownLocales(t *testing.T) {
	for _, short := range PageLanguages() {
		full := PageLocale(short)
		if !Known(full) {
			t.Errorf("page language %q maps to unknown locale %q", short, full)
		}
	}
}
