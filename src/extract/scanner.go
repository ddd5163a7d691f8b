package extract

import "strings"

// Scan splits raw response text into ordered prose and code segments. Code
// fences open on a line whose first non-space token starts with ``` and close
// on a line that is exactly ``` after trimming. A fence still open at the end
// of input is emitted as an unterminated code segment plus a scan warning so
// callers can salvage the partial block.
func Scan(raw string) ([]Segment, []Warning) {
	var (
		segs  []Segment
		warns []Warning
		prose []string
		code  []string
	)
	inFence := false
	lang, hint := "", ""

	flushProse := func() {
		text := strings.Join(prose, "\n")
		if strings.TrimSpace(text) != "" {
			segs = append(segs, Segment{Kind: KindProse, Text: text, Order: len(segs)})
		}
		prose = prose[:0]
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inFence && strings.HasPrefix(trimmed, "```"):
			flushProse()
			inFence = true
			lang, hint = parseFenceInfo(trimmed[3:])
		case inFence && trimmed == "```":
			segs = append(segs, Segment{
				Kind:     KindCode,
				Text:     strings.Join(code, "\n"),
				Order:    len(segs),
				Lang:     lang,
				PathHint: hint,
			})
			code = code[:0]
			inFence = false
		case inFence:
			code = append(code, line)
		default:
			prose = append(prose, line)
		}
	}

	if inFence {
		// The declared filename is not trusted for a partial block.
		seg := Segment{
			Kind:         KindCode,
			Text:         strings.Join(code, "\n"),
			Order:        len(segs),
			Lang:         lang,
			Unterminated: true,
		}
		segs = append(segs, seg)
		warns = append(warns, Warning{
			Code:    WarnUnterminatedFence,
			Order:   seg.Order,
			Message: "code fence opened but never closed; kept partial block",
		})
	} else {
		flushProse()
	}
	return segs, warns
}

// parseFenceInfo splits a fence info string into a lowercased language token
// and an optional filename token, e.g. "js app.js" or "python".
func parseFenceInfo(info string) (lang, hint string) {
	fields := strings.Fields(info)
	if len(fields) > 0 {
		lang = strings.ToLower(fields[0])
	}
	if len(fields) > 1 {
		hint = fields[1]
	}
	// A lone "main.py" info string is a filename, not a language.
	if hint == "" && strings.ContainsAny(lang, "./") {
		hint = fields[0]
		lang = ""
	}
	return lang, hint
}
