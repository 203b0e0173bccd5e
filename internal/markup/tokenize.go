package markup

import "strings"

// Tokenize splits one line of annotated text into styled runs.
//
// The scan is a single left-to-right pass. At each position ** is tried
// before *, and a marker opens a styled run only if a closing counterpart
// exists later on the line; the span between the pair is the shortest one
// (first closing occurrence wins). An opening marker with no closer is
// literal text, so an unterminated *never* swallows the rest of the line.
// Text inside a matched span is not re-scanned: a lone * inside a **...**
// span stays in the run text verbatim.
//
// A line without markers yields exactly one plain run. An empty line yields
// no runs.
func Tokenize(line string) []Run {
	if line == "" {
		return nil
	}

	var runs []Run
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, Run{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(line) {
		if strings.HasPrefix(line[i:], "**") {
			if j := strings.Index(line[i+2:], "**"); j >= 0 {
				flush()
				runs = append(runs, Run{Text: line[i+2 : i+2+j], Bold: true})
				i += j + 4
				continue
			}
			// No closing **: the first star is literal; the second may
			// still open an italic span on the next iteration.
		} else if line[i] == '*' {
			if j := strings.IndexByte(line[i+1:], '*'); j >= 0 {
				flush()
				runs = append(runs, Run{Text: line[i+1 : i+1+j], Italic: true})
				i += j + 2
				continue
			}
		}
		plain.WriteByte(line[i])
		i++
	}
	flush()

	return runs
}
