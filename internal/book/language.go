package book

import "fmt"

// Language is the language a book is written in.
type Language int

const (
	German Language = iota
	Dutch
	English
)

var languageTokens = [...]string{
	German:  "GERMAN",
	Dutch:   "DUTCH",
	English: "ENGLISH",
}

// Languages returns every known language in declaration order.
func Languages() []Language {
	return []Language{German, Dutch, English}
}

// ParseLanguage matches token exactly against the known language tokens.
// Matching is case-sensitive: "english" is not a language.
func ParseLanguage(token string) (Language, error) {
	for i, t := range languageTokens {
		if t == token {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("unknown language token %q", token)
}

// String returns the language token, or Language(n) for unknown values.
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageTokens) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageTokens[l]
}

// MarshalText encodes the language as its token, e.g. "ENGLISH".
func (l Language) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(languageTokens) {
		return nil, fmt.Errorf("invalid language %d", int(l))
	}
	return []byte(languageTokens[l]), nil
}

// UnmarshalText decodes a language token.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
