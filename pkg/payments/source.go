package payments

import (
	"fmt"
	"strings"
)

// SchemePrefix is the optional prefix of deep-link sources.
const SchemePrefix = "pocketpay://"

// Source is where a journey was launched from. The set is closed:
// SourceHome, SourceDeepLink and SourceContact.
type Source interface {
	fmt.Stringer
	isSource()
}

// SourceHome is a launch from the home menu.
type SourceHome struct{}

// SourceDeepLink opens an existing payment link.
type SourceDeepLink struct {
	LinkID string
}

// SourceContact starts a quickpay to a known handle.
type SourceContact struct {
	Handle string
}

func (SourceHome) isSource()     {}
func (SourceDeepLink) isSource() {}
func (SourceContact) isSource()  {}

func (SourceHome) String() string       { return "home" }
func (s SourceDeepLink) String() string { return "link/" + s.LinkID }
func (s SourceContact) String() string  { return "pay/" + s.Handle }

// ParseSource parses "home", "link/<id>" or "pay/<handle>", with or
// without the pocketpay:// prefix. An empty string is home.
func ParseSource(raw string) (Source, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), SchemePrefix)
	s = strings.Trim(s, "/")
	if s == "" || s == "home" {
		return SourceHome{}, nil
	}

	kind, arg, ok := strings.Cut(s, "/")
	if !ok || arg == "" {
		return nil, fmt.Errorf("source %q: expected home, link/<id> or pay/<handle>", raw)
	}
	switch kind {
	case "link":
		if err := ValidateLinkSlug(arg); err != nil {
			return nil, fmt.Errorf("source %q: %w", raw, err)
		}
		return SourceDeepLink{LinkID: arg}, nil
	case "pay":
		handle := strings.ToLower(strings.TrimPrefix(arg, "@"))
		if err := ValidateHandle(handle); err != nil {
			return nil, fmt.Errorf("source %q: %w", raw, err)
		}
		return SourceContact{Handle: handle}, nil
	default:
		return nil, fmt.Errorf("source %q: unknown kind %q", raw, kind)
	}
}
