package heuristics

import "strings"

// Intent labels keyed into the response templates.
const (
	IntentGreeting     = "greeting"
	IntentIntroduction = "introduction"
	IntentWeather      = "weather"
	IntentFood         = "food"
	IntentCulture      = "culture"
	IntentUnknown      = "unknown"
)

// Keyword lists are checked in a fixed order; the first category with a
// substring hit wins. Both Hinglish and Kumaoni forms appear so intent
// detection works regardless of the input language.
var (
	greetingWords = []string{"namaste", "namaskar", "hello", "hi", "hey", "good morning", "good evening", "kaise ho", "kas cha"}
	weatherWords  = []string{"mausam", "barish", "dhoop", "garmi", "sardi", "barf"}
	foodWords     = []string{"khana", "khano", "bhojan", "vyanjan", "pakwan", "recipe", "swad"}
	cultureWords  = []string{"sanskriti", "tyohar", "parv", "lok", "geet", "nritya", "parampara"}

	introWhatWords = []string{"kaun", "kya", "ke"}
	introYouWords  = []string{"tum", "aap", "tu"}
)

// DetectIntent classifies text into one of the intent labels.
// Introduction needs both a what-word ("kaun", "kya", "ke") and a
// you-word ("tum", "aap", "tu"); everything else is a flat keyword scan.
func DetectIntent(text string) string {
	lower := strings.ToLower(text)

	if containsAny(lower, greetingWords) {
		return IntentGreeting
	}
	if containsAny(lower, introWhatWords) && containsAny(lower, introYouWords) {
		return IntentIntroduction
	}
	if containsAny(lower, weatherWords) {
		return IntentWeather
	}
	if containsAny(lower, foodWords) {
		return IntentFood
	}
	if containsAny(lower, cultureWords) {
		return IntentCulture
	}
	return IntentUnknown
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
