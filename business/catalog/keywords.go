package catalog

import (
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// ExtractKeywords turns a serialized keyword list such as
//
//	[{'id': 10, 'name': 'heist'}, {'id': 11, 'name': 'Quentin Tarantino'}]
//
// into "heist QuentinTarantino". Both JSON and Python-literal quoting are accepted.
// Anything that does not parse as a list yields "".
func ExtractKeywords(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		normalized, ok := pythonLiteralToJSON(raw)
		if !ok {
			return ""
		}
		if err := json.Unmarshal([]byte(normalized), &items); err != nil {
			return ""
		}
	}

	tokens := make([]string, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, ok := obj["name"].(string)
		if !ok {
			continue
		}
		if token := stripSpace(name); token != "" {
			tokens = append(tokens, token)
		}
	}

	return strings.Join(tokens, " ")
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// pythonLiteralToJSON rewrites single-quoted strings and the None/True/False
// constants of a Python repr into JSON. It reports false on an unterminated string.
func pythonLiteralToJSON(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			end, ok := writeQuoted(&b, runes, i, r)
			if !ok {
				return "", false
			}
			i = end
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			switch word := string(runes[i:j]); word {
			case "None":
				b.WriteString("null")
			case "True":
				b.WriteString("true")
			case "False":
				b.WriteString("false")
			default:
				b.WriteString(word)
			}
			i = j - 1
		default:
			b.WriteRune(r)
		}
	}

	return b.String(), true
}

// writeQuoted copies the string literal starting at runes[start] as a JSON string
// and returns the index of its closing quote.
func writeQuoted(b *strings.Builder, runes []rune, start int, quote rune) (int, bool) {
	b.WriteByte('"')
	for i := start + 1; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			next := runes[i+1]
			switch next {
			case '\'':
				b.WriteRune('\'')
			case '"':
				b.WriteString(`\"`)
			default:
				b.WriteRune('\\')
				b.WriteRune(next)
			}
			i++
		case r == quote:
			b.WriteByte('"')
			return i, true
		case r == '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return 0, false
}
