package localization

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/sdkaudit/sdkaudit/internal/platform"
)

const localeEncodingSeparatorConstant = "."

// Resolver selects the best MessageCatalog for a requested language tag.
type Resolver struct {
	matcher language.Matcher
}

// NewResolver constructs a Resolver covering all supported languages.
func NewResolver() *Resolver {
	return &Resolver{matcher: language.NewMatcher(supportedLanguageTags)}
}

// Resolve returns the catalog matching the requested tag, falling back to
// English when the tag is undefined or unsupported.
func (resolver *Resolver) Resolve(requestedTag language.Tag) MessageCatalog {
	if requestedTag == language.Und {
		return englishCatalog
	}

	_, matchedIndex, _ := resolver.matcher.Match(requestedTag)
	return catalogsByLanguage[supportedLanguageTags[matchedIndex]]
}

// DetectTag derives the active locale's language tag from the host: the
// Windows UI language on the audit target, the LANG environment variable
// elsewhere. Undetectable or malformed locales yield language.Und.
func DetectTag() language.Tag {
	return parseLocale(platform.UILanguage())
}

// parseLocale converts a raw locale string, optionally carrying an encoding
// suffix such as ".UTF-8", into a language tag.
func parseLocale(rawLocale string) language.Tag {
	if encodingIndex := strings.Index(rawLocale, localeEncodingSeparatorConstant); encodingIndex >= 0 {
		rawLocale = rawLocale[:encodingIndex]
	}

	rawLocale = strings.TrimSpace(rawLocale)
	if len(rawLocale) == 0 {
		return language.Und
	}

	parsedTag, parseError := language.Parse(rawLocale)
	if parseError != nil {
		return language.Und
	}
	return parsedTag
}
