package domain

// Language pairs a language code with its user-facing display name
type Language struct {
	Code string
	Name string
}

// LanguageSet is the ordered set of languages the bot can answer in
type LanguageSet struct {
	langs       []Language
	defaultCode string
}

// NewLanguageSet creates a language set with a default code.
// If the default is not in the set, the first language becomes the default.
func NewLanguageSet(defaultCode string, langs []Language) *LanguageSet {
	s := &LanguageSet{langs: langs, defaultCode: defaultCode}
	if !s.Contains(defaultCode) && len(langs) > 0 {
		s.defaultCode = langs[0].Code
	}
	return s
}

// Default returns the fallback language code
func (s *LanguageSet) Default() string {
	return s.defaultCode
}

// Contains checks if code is a supported language
func (s *LanguageSet) Contains(code string) bool {
	for _, l := range s.langs {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Normalize returns code if supported, otherwise the default code
func (s *LanguageSet) Normalize(code string) string {
	if s.Contains(code) {
		return code
	}
	return s.defaultCode
}

// CodeForName resolves a display name back to its language code
func (s *LanguageSet) CodeForName(name string) (string, bool) {
	for _, l := range s.langs {
		if l.Name == name {
			return l.Code, true
		}
	}
	return "", false
}

// NameOf returns the display name for a code, or the code itself if unknown
func (s *LanguageSet) NameOf(code string) string {
	for _, l := range s.langs {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// Names returns display names in menu order
func (s *LanguageSet) Names() []string {
	names := make([]string, 0, len(s.langs))
	for _, l := range s.langs {
		names = append(names, l.Name)
	}
	return names
}
