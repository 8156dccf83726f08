package language

import "golang.org/x/text/language"

// DefaultName is the language every unrecognized locale resolves to. It is
// also the native language of the joke corpus.
const DefaultName = "English"

// The supported locale set. Order matters: the matcher falls back to the
// first entry when nothing matches, which keeps the English default implicit.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.MustParse("hi-IN"),
	language.MustParse("mr-IN"),
	language.MustParse("te-IN"),
}

var names = []string{
	"English",
	"Hindi",
	"Marathi",
	"Telugu",
}

var matcher = language.NewMatcher(supported)

// Resolve maps a BCP-47 locale code to the display name used inside prompts.
// Matching is tolerant ("hi" and "hi-IN" both resolve to Hindi); anything
// outside the supported set resolves to DefaultName.
func Resolve(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultName
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultName
	}
	return names[idx]
}
