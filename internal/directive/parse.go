package directive

import (
	"fmt"
	"strings"
)

// isSpace mirrors the whitespace class used to split a directive name from
// its payload.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v' || r == '\f' || r == '\r' || r == '\n'
}

// ParseLine classifies one physical line (line terminator already
// stripped). Rules, in priority order:
//
//  1. blank line                     -> Empty
//  2. "#-" prefix                    -> directive invocation
//  3. "##" prefix                    -> Text with the first '#' removed
//  4. "#" prefix                     -> Comment of the trimmed remainder
//  5. anything else                  -> Text of the whole line
func ParseLine(text string) Directive {
	text = strings.TrimRightFunc(text, isSpace)
	switch {
	case text == "":
		return Directive{Kind: Empty}
	case strings.HasPrefix(text, "#-"):
		return parseDirective(text[2:])
	case strings.HasPrefix(text, "##"):
		return NewText(text[1:])
	case strings.HasPrefix(text, "#"):
		return Directive{Kind: Comment, Text: strings.TrimLeftFunc(text[1:], isSpace)}
	default:
		return NewText(text)
	}
}

// parseDirective interprets the remainder of a "#-" line. Unknown names and
// missing required payloads degrade to Warning; this is the sole error
// channel for malformed directives.
func parseDirective(text string) Directive {
	d, err := parseDirectiveErr(text)
	if err != "" {
		return NewWarning(err)
	}
	return d
}

func parseDirectiveErr(text string) (Directive, string) {
	name, payload, hasPayload := splitDirective(text)

	// requires returns the trimmed, unquoted payload or an error message
	// when the directive demands one and none was given.
	requires := func() (string, string) {
		if !hasPayload {
			return "", fmt.Sprintf("directive %s requires an argument", name)
		}
		return unquote(strings.TrimFunc(payload, isSpace)), ""
	}

	payloadKind := func(kind Kind) (Directive, string) {
		p, errMsg := requires()
		if errMsg != "" {
			return Directive{}, errMsg
		}
		return Directive{Kind: kind, Text: p}, ""
	}

	includeKind := func(kind IncludeKind) (Directive, string) {
		p, errMsg := requires()
		if errMsg != "" {
			return Directive{}, errMsg
		}
		return NewInclude(kind, p), ""
	}

	switch name {
	case "arg":
		return payloadKind(Arg)
	case "exe":
		return payloadKind(Exe)
	case "clean":
		return Directive{Kind: Clean}, ""
	case "title":
		return payloadKind(Title)
	case "subtitle":
		return payloadKind(Subtitle)
	case "import":
		return includeKind(IncludeImport)
	case "lines":
		return includeKind(IncludeLines)
	case "source":
		return includeKind(IncludeSource)
	case "warning":
		return payloadKind(Warning)
	case "text":
		return payloadKind(Text)
	case "empty":
		return Directive{Kind: Empty}, ""
	case "comment":
		return payloadKind(Comment)
	case "close":
		return Directive{Kind: Close}, ""
	case "end":
		return NewEndMap(false), ""
	case "ignore-warnings":
		return Directive{Kind: IgnoreWarnings}, ""
	case "display-warnings":
		return Directive{Kind: DisplayWarnings}, ""
	case "ignore-text":
		return Directive{Kind: IgnoreText}, ""
	case "then":
		return Directive{Kind: Then}, ""
	case "else":
		return Directive{Kind: Else}, ""
	case "watch":
		return Directive{Kind: Watch}, ""
	case "debug":
		return Directive{Kind: Debug}, ""
	default:
		return Directive{}, fmt.Sprintf("%s is not a directive", name)
	}
}

// splitDirective separates the directive name from its payload on the first
// whitespace run.
func splitDirective(text string) (name, payload string, hasPayload bool) {
	text = strings.TrimLeftFunc(text, isSpace)
	idx := strings.IndexFunc(text, isSpace)
	if idx < 0 {
		return text, "", false
	}
	return text[:idx], text[idx+1:], true
}

// unquote strips a single wrapping pair of double quotes. There is no
// escape processing inside the quotes.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
