// Package extract recovers structured screens and features from generated
// markdown. The UI/UX screen format (a "### <Name> Screen" heading followed
// by five bold bullet fields) is a wire format between the generator and
// the later pipeline phases, not a display convention.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Screen is one conceptual UI view recovered from the UI/UX document.
// Fields are never nil: missing bullets come back as empty values.
type Screen struct {
	Name         string
	Purpose      string
	Roles        []string
	Components   []string
	Interactions []string
	States       []string
}

// DefaultScreenName is synthesized when a document yields no screens.
const DefaultScreenName = "Dashboard"

var (
	purposeRe      = regexp.MustCompile(`- \*\*Purpose\*\*: (.*)`)
	rolesRe        = regexp.MustCompile(`- \*\*Roles\*\*: (.*)`)
	componentsRe   = regexp.MustCompile(`- \*\*Components\*\*: (.*)`)
	interactionsRe = regexp.MustCompile(`- \*\*Interactions\*\*: (.*)`)
	statesRe       = regexp.MustCompile(`- \*\*States\*\*: (.*)`)
	boldBulletRe   = regexp.MustCompile(`- \*\*(.*?)\*\*`)
)

// Screens parses the UI/UX document leniently: chunks with missing or
// malformed bullets still yield a screen with empty metadata, and an
// input with no screens at all yields exactly one default screen.
func Screens(content string) []Screen {
	screens := parseChunks(content)
	if len(screens) == 0 {
		screens = append(screens, Screen{
			Name:         DefaultScreenName,
			Roles:        []string{},
			Components:   []string{},
			Interactions: []string{},
			States:       []string{},
		})
	}
	return screens
}

// PartialParseError reports which screens were missing which bullet
// fields, or that no screens were found at all.
type PartialParseError struct {
	Missing map[string][]string // screen name -> missing field names
}

func (e *PartialParseError) Error() string {
	if len(e.Missing) == 0 {
		return "no screens found"
	}
	parts := make([]string, 0, len(e.Missing))
	for name, fields := range e.Missing {
		parts = append(parts, fmt.Sprintf("%s (missing %s)", name, strings.Join(fields, ", ")))
	}
	return "partial screen parse: " + strings.Join(parts, "; ")
}

// ScreensStrict parses the same format but returns a *PartialParseError
// when any screen lacks one of the five fields or when no screens exist.
// The successfully parsed screens are returned either way.
func ScreensStrict(content string) ([]Screen, error) {
	screens := parseChunks(content)
	if len(screens) == 0 {
		return nil, &PartialParseError{}
	}

	missing := make(map[string][]string)
	for _, s := range screens {
		var fields []string
		if s.Purpose == "" {
			fields = append(fields, "Purpose")
		}
		if len(s.Roles) == 0 {
			fields = append(fields, "Roles")
		}
		if len(s.Components) == 0 {
			fields = append(fields, "Components")
		}
		if len(s.Interactions) == 0 {
			fields = append(fields, "Interactions")
		}
		if len(s.States) == 0 {
			fields = append(fields, "States")
		}
		if len(fields) > 0 {
			missing[s.Name] = fields
		}
	}
	if len(missing) > 0 {
		return screens, &PartialParseError{Missing: missing}
	}
	return screens, nil
}

func parseChunks(content string) []Screen {
	chunks := strings.Split(content, "### ")
	if len(chunks) < 2 {
		return nil
	}

	var screens []Screen
	for _, chunk := range chunks[1:] {
		name := chunk
		if idx := strings.IndexByte(chunk, '\n'); idx >= 0 {
			name = chunk[:idx]
		}
		name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), " Screen"))
		if name == "" {
			continue
		}

		screens = append(screens, Screen{
			Name:         name,
			Purpose:      matchField(purposeRe, chunk),
			Roles:        matchList(rolesRe, chunk),
			Components:   matchList(componentsRe, chunk),
			Interactions: matchList(interactionsRe, chunk),
			States:       matchList(statesRe, chunk),
		})
	}
	return screens
}

// Features extracts every bold-bullet span from a document. It defaults to
// a minimal feature pair when nothing matches.
func Features(content string) []string {
	matches := boldBulletRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return []string{"Auth", "Profile"}
	}
	features := make([]string, 0, len(matches))
	for _, m := range matches {
		features = append(features, m[1])
	}
	return features
}

func matchField(re *regexp.Regexp, chunk string) string {
	m := re.FindStringSubmatch(chunk)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func matchList(re *regexp.Regexp, chunk string) []string {
	raw := matchField(re, chunk)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
