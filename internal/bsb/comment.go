package bsb

import (
	"strings"

	"github.com/beetlebugorg/mapcal/internal/calib"
)

const (
	commandToken = "BSBHDR"
	knpPrefix    = "KNP/"
	bsbPrefix    = "BSB/"
)

// applyComment runs the header commands embedded in the CR field and
// returns the remaining comment lines.
//
// The CR field holds sub-lines separated by tab, CR or LF. A sub-line
// starting with BSBHDR is a command:
//
//	BSBHDR KNP/SC=20000,PP=45.0   appends SC=20000 and PP=45.0 to buf
//	BSBHDR BSB/NU=1234            appends NU=1234 to buf
//	BSBHDR DTM/0.1,0.2            appends ADDn=DTM/0.1,0.2 to buf
//
// Appended lines are found by later lookups only when the record does not
// already define the key. Every other sub-line is returned as a comment.
func applyComment(buf *calib.Buffer) []string {
	cr := buf.Field(calib.KeyComment)
	if cr == "" {
		return nil
	}

	var comments []string
	add := 1
	for _, line := range splitComment(cr) {
		if !strings.HasPrefix(line, commandToken) {
			comments = append(comments, line)
			continue
		}
		cmd := strings.TrimLeft(line[len(commandToken):], " ")
		switch {
		case strings.HasPrefix(cmd, knpPrefix):
			injectParams(buf, cmd[len(knpPrefix):])
		case strings.HasPrefix(cmd, bsbPrefix):
			injectParams(buf, cmd[len(bsbPrefix):])
		default:
			buf.AddLine(calib.AddKey(add) + "=" + cmd)
			add++
		}
	}
	return comments
}

// injectParams appends each KEY=value sub-field of params as its own line,
// stopping at the first empty sub-field.
func injectParams(buf *calib.Buffer, params string) {
	for i := 0; ; i++ {
		p := calib.SubField(params, i)
		if p == "" {
			return
		}
		buf.AddLine(p)
	}
}

// splitComment splits on every tab, CR and LF, keeping empty sub-lines.
func splitComment(s string) []string {
	var out []string
	for {
		i := strings.IndexAny(s, "\t\r\n")
		if i < 0 {
			return append(out, s)
		}
		out = append(out, s[:i])
		s = s[i+1:]
	}
}
