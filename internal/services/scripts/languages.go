package scripts

// DefaultLanguage is the fallback for unrecognized language codes.
const DefaultLanguage = "en"

// languageInstructions maps supported language codes to the instruction
// fragment embedded in every system prompt. The mapping is closed: codes
// outside it degrade to the default language instead of failing.
var languageInstructions = map[string]string{
	"en": "Write everything in English.",
	"es": "Write everything in Spanish (Español).",
	"fr": "Write everything in French (Français).",
	"de": "Write everything in German (Deutsch).",
	"it": "Write everything in Italian (Italiano).",
	"pt": "Write everything in Portuguese (Português).",
	"ru": "Write everything in Russian (Русский).",
	"he": "Write everything in Hebrew (עברית).",
}

// LanguageInstruction resolves a language code to its prompt fragment,
// falling back to the default language for unknown codes.
func LanguageInstruction(code string) string {
	if instruction, ok := languageInstructions[code]; ok {
		return instruction
	}
	return languageInstructions[DefaultLanguage]
}

// IsSupported reports whether the code resolves without falling back.
func IsSupported(code string) bool {
	_, ok := languageInstructions[code]
	return ok
}
