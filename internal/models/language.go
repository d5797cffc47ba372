package models

import "fmt"

// Language selects the system prompt used for prompt generation.
type Language string

const (
	LanguageChinese Language = "chinese"
	LanguageEnglish Language = "english"
)

// LanguageError reports a language outside the supported set.
type LanguageError struct {
	Value string
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q: must be chinese or english", e.Value)
}

// ParseLanguage maps an empty value to Chinese and rejects anything outside
// the closed set.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "":
		return LanguageChinese, nil
	case LanguageChinese, LanguageEnglish:
		return Language(s), nil
	}
	return "", &LanguageError{Value: s}
}
