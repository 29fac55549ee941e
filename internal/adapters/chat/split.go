package chat

import "strings"

// SplitMessage cuts text into chunks of at most limit runes, breaking on
// line boundaries so markup on a line is never split. A single line longer
// than limit is cut by runes.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}
	var chunks []string
	var cur strings.Builder
	curLen := 0
	started := false
	flush := func() {
		if started {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
			started = false
		}
	}
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		need := len(runes)
		if started {
			need++
		}
		if curLen+need > limit {
			flush()
			need = len(runes)
		}
		if started {
			cur.WriteByte('\n')
		}
		cur.WriteString(string(runes))
		curLen += need
		started = true
	}
	flush()
	return chunks
}

// Sendable drops chunks that chat APIs reject as empty, such as a lone
// blank line left at a chunk boundary.
func Sendable(chunks []string) []string {
	out := chunks[:0:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
