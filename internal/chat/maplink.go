package chat

import (
	"net/url"
	"strings"
)

// triggerWords flag map/location intent. Matching is a case-insensitive
// substring test against the raw input, so multi-script entries work
// without tokenization.
var triggerWords = []string{
	"find", "where", "map", "location", "direction", "navigate", "near", "address",
	"কোথায়", "মানচিত্র", "ঠিকানা", // Bengali
	"أين", "خريطة", "عنوان", // Arabic
	"कहाँ", "नक्शा", // Hindi
	"dónde", "mapa", // Spanish
	"où", "carte", // French
	"где", "карта", // Russian
	"どこ", "地図", // Japanese
	"哪里", "地图", // Chinese
	"nerede", "harita", // Turkish
}

// MapLink returns an embeddable Google Maps URL for the input when it
// contains a trigger word, or the empty string otherwise. QueryEscape keeps
// spaces as "+" and stops reserved characters in the input from breaking
// out of the q parameter.
func MapLink(input string) string {
	lowered := strings.ToLower(input)
	for _, word := range triggerWords {
		if strings.Contains(lowered, word) {
			return "https://maps.google.com/maps?q=" + url.QueryEscape(input) + "&output=embed"
		}
	}
	return ""
}
