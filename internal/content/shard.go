package content

import (
	"fmt"
	"regexp"
	"strings"
)

// A shard marker names the multiline field whose body follows it. The
// marker must be the first line of the file for the file to be treated
// as sharded at all.
var shardMarker = regexp.MustCompile(`(?m)^<!--[ \t]*shard:[ \t]*([\w.]+)[ \t]*-->[ \t]*$`)

// shardsToTOML converts sharded text into a synthetic TOML document.
//
// Sharded content is an alternative way of writing TOML that contains
// only multiline strings. Each marker's body runs to the next marker or
// end of file, trimmed of surrounding whitespace. An identifier used once
// binds a single string; used more than once it binds an array in file
// order. Dotted identifiers denote nested tables, which the TOML parser
// resolves. Returns ok=false when the text is not sharded.
func shardsToTOML(text string) (doc string, ok bool) {
	matches := shardMarker.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 || matches[0][0] != 0 {
		return "", false
	}

	order := make([]string, 0, len(matches))
	groups := make(map[string][]string)
	for i, m := range matches {
		id := text[m[2]:m[3]]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(escapeQuotes(text[m[1]:end]))
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], body)
	}

	var sb strings.Builder
	for _, id := range order {
		bodies := groups[id]
		if len(bodies) > 1 {
			quoted := make([]string, len(bodies))
			for i, b := range bodies {
				quoted[i] = fmt.Sprintf(`"""%s"""`, b)
			}
			fmt.Fprintf(&sb, "%s = [%s]\n", id, strings.Join(quoted, ", "))
		} else {
			fmt.Fprintf(&sb, "%s = \"\"\"%s\"\"\"\n", id, bodies[0])
		}
	}
	return sb.String(), true
}

// escapeQuotes breaks up triple-quote runs so a body can be embedded in a
// TOML multiline basic string without closing it early.
func escapeQuotes(body string) string {
	return strings.ReplaceAll(body, `"""`, `""\"`)
}
