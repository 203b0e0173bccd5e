package markup

import "strings"

// Line-level markers of the wire contract.
const (
	centerPrefix = "[CENTER]"
	rightPrefix  = "[RIGHT]"
)

// Classify consumes a full annotated text and emits one Block per line,
// in source order. Blank lines (after trimming) become ParagraphBreak;
// every other line becomes a Heading or Paragraph. Classification never
// fails: unrecognized markers are left to Tokenize, which treats them as
// literal text.
func Classify(annotated string) []Block {
	lines := strings.Split(normalizeLineEndings(annotated), "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classifyLine(line))
	}
	return blocks
}

// classifyLine applies the line-level stages in fixed order: blank check,
// alignment prefix, heading prefix, inline tokenization. Each stage strips
// only its own marker before handing the remainder to the next.
func classifyLine(line string) Block {
	if strings.TrimSpace(line) == "" {
		return ParagraphBreak{}
	}

	alignment := AlignLeft
	if rest, ok := strings.CutPrefix(line, centerPrefix); ok {
		alignment = AlignCenter
		line = strings.TrimSpace(rest)
	} else if rest, ok := strings.CutPrefix(line, rightPrefix); ok {
		alignment = AlignRight
		line = strings.TrimSpace(rest)
	}

	// Longest prefix first: # is a prefix of ## and ###. The prefix is not
	// required to be followed by a space; OCR output is loose and a stray
	// heading beats a dropped line.
	level := 0
	switch {
	case strings.HasPrefix(line, "###"):
		level = 3
		line = strings.TrimSpace(line[3:])
	case strings.HasPrefix(line, "##"):
		level = 2
		line = strings.TrimSpace(line[2:])
	case strings.HasPrefix(line, "#"):
		level = 1
		line = strings.TrimSpace(line[1:])
	}

	runs := Tokenize(line)
	if level > 0 {
		return Heading{Level: level, Alignment: alignment, Runs: runs}
	}
	return Paragraph{Alignment: alignment, Runs: runs}
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
