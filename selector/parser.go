package selector

import (
	"strings"

	domerrors "github.com/go-webdom/webdom/errors"
)

// parseSimple classifies a single whitespace-delimited token as #id,
// .class, or tag. An empty token is a syntax error; anything else falls
// through to KindTag, matching §4.4's "anything outside this grammar
// behaves as a tag lookup" rule for the dispatch-by-prefix functions
// (Parse reuses the same classification for chain steps).
func parseSimple(token string) (Simple, error) {
	if token == "" {
		return Simple{}, &domerrors.DOMSyntaxError{Op: "selector", Message: "empty selector token"}
	}
	switch token[0] {
	case '#':
		return Simple{Kind: KindID, Name: token[1:]}, nil
	case '.':
		return Simple{Kind: KindClass, Name: token[1:]}, nil
	default:
		return Simple{Kind: KindTag, Name: token}, nil
	}
}

// Parse parses a whitespace-separated ancestor chain for use with
// Matches/Closest. Each token must be #id, .class, or a bare tag name.
func Parse(sel string) (*Chain, error) {
	fields := strings.Fields(sel)
	if len(fields) == 0 {
		return nil, &domerrors.DOMSyntaxError{Op: "selector", Message: "empty selector"}
	}
	chain := &Chain{Steps: make([]Simple, 0, len(fields))}
	for _, tok := range fields {
		s, err := parseSimple(tok)
		if err != nil {
			return nil, err
		}
		chain.Steps = append(chain.Steps, s)
	}
	return chain, nil
}
