package locale

// Canned replies used when the chat pipeline short-circuits. Keyed by full
// locale code; missing locales fall back to the English string, so callers
// always get a non-empty reply.

const (
	fallbackGreeting = "Please say something, Habibi! I'm listening."
	fallbackApology  = "Marhaba! Something went wrong. Please try again, Habibi."

	// RespectfulReply is used when the model refuses the input on safety
	// grounds.
	RespectfulReply = "Marhaba! Let's keep our conversation respectful, Habibi."

	// EmptyReply is used when the model answered but produced no usable text.
	EmptyReply = "Marhaba! I had trouble forming a response. Could you say that another way, Habibi?"
)

var greetings = map[string]string{
	"en-US": fallbackGreeting,
	"ar-SA": "تفضل يا حبيبي! أنا أستمع إليك.",
	"bn-BD": "কিছু বলুন, হাবিবি! আমি শুনছি।",
	"hi-IN": "कुछ कहिए, हबीबी! मैं सुन रहा हूँ।",
	"es-ES": "¡Dime algo, Habibi! Te escucho.",
	"fr-FR": "Dis quelque chose, Habibi ! Je t'écoute.",
	"ru-RU": "Скажи что-нибудь, хабиби! Я слушаю.",
	"zh-CN": "说点什么吧，哈比比！我在听。",
	"tr-TR": "Bir şeyler söyle, Habibi! Dinliyorum.",
}

var apologies = map[string]string{
	"en-US": fallbackApology,
	"ar-SA": "مرحبا! حدث خطأ ما. حاول مرة أخرى يا حبيبي.",
	"bn-BD": "মারহাবা! কিছু একটা সমস্যা হয়েছে। আবার চেষ্টা করুন, হাবিবি।",
	"hi-IN": "मरहबा! कुछ गड़बड़ हो गई। फिर से कोशिश कीजिए, हबीबी।",
	"es-ES": "¡Marhaba! Algo salió mal. Inténtalo de nuevo, Habibi.",
	"fr-FR": "Marhaba ! Quelque chose a mal tourné. Réessaie, Habibi.",
	"ru-RU": "Мархаба! Что-то пошло не так. Попробуй ещё раз, хабиби.",
	"zh-CN": "马哈巴！出了点问题。请再试一次，哈比比。",
	"tr-TR": "Merhaba! Bir şeyler ters gitti. Tekrar dene, Habibi.",
}

// Greeting returns the prompt-for-input reply for a locale.
func Greeting(code string) string {
	if s, ok := greetings[code]; ok {
		return s
	}
	return fallbackGreeting
}

// Apology returns the generic failure reply for a locale.
func Apology(code string) string {
	if s, ok := apologies[code]; ok {
		return s
	}
	return fallbackApology
}
