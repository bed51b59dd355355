package locale

import (
	"errors"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/npillmayer/clusters/internal/tracing"
)

// ErrMalformedTag is returned by Parse for identifiers that are not
// well-formed BCP-47 tags.
var ErrMalformedTag = errors.New("locale: malformed identifier")

// Locale describes a user's language environment: the raw IETF
// identifier, its canonicalized tag, and the script the tag implies.
type Locale struct {
	IETF   string
	Tag    language.Tag
	Script language.Script
}

// Make parses an IETF locale identifier. It never fails: unparseable
// input yields the undetermined language und.
func Make(ietf string) Locale {
	tag := language.Make(ietf)
	script, _ := tag.Script()
	return Locale{
		IETF:   ietf,
		Tag:    tag,
		Script: script,
	}
}

// Parse is the validating counterpart of Make: it returns
// ErrMalformedTag if ietf is not a well-formed identifier, i.e. if the
// subtag iterator cannot consume it completely.
func Parse(ietf string) (Locale, error) {
	it := NewSubtags(ietf)
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	if n == 0 || it.Remainder() != "" {
		return Locale{}, ErrMalformedTag
	}
	return Make(ietf), nil
}

// FromEnvironment detects the user's locale from the process
// environment, falling back to en-US if detection fails.
func FromEnvironment() Locale {
	ietf, err := jj.DetectIETF()
	if err != nil {
		ietf = "en-US"
		tracing.P("locale", ietf).Infof("locale detection failed (%v), using default", err)
	} else {
		tracing.P("locale", ietf).Infof("detected user locale")
	}
	return Make(ietf)
}

// Language returns the primary language subtag of the locale, e.g.
// "en" for en-US.
func (loc Locale) Language() string {
	base, _ := loc.Tag.Base()
	return base.String()
}
