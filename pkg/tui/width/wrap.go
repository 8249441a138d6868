// ABOUTME: Word wrapping on Unicode line-break opportunities, truncation, and padding
// ABOUTME: WrapWords follows UAX #14 via uniseg; Fit cuts and pads to an exact width

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// WrapWords wraps s into lines of at most maxWidth columns, breaking at
// line-break opportunities. Words longer than maxWidth are split. Newlines
// start a new paragraph; an empty paragraph yields one empty line. Spaces at
// the end of a line and at the start of continuation lines are dropped.
func WrapWords(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapParagraph(para, maxWidth)...)
	}
	return out
}

func wrapParagraph(p string, maxWidth int) []string {
	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		lineW = 0
	}

	state := -1
	for len(p) > 0 {
		var seg string
		seg, p, _, state = uniseg.FirstLineSegmentInString(p, state)

		word := strings.TrimRight(seg, " ")
		gap := seg[len(word):]
		wordW := VisibleWidth(word)

		if lineW > 0 && lineW+wordW > maxWidth {
			flush()
		}
		if lineW == 0 && len(lines) > 0 && word == "" {
			continue
		}
		for lineW+wordW > maxWidth {
			head, tail := splitAtWidth(word, maxWidth-lineW)
			line.WriteString(head)
			flush()
			word = tail
			wordW = VisibleWidth(word)
		}
		line.WriteString(word)
		line.WriteString(gap)
		lineW += wordW + len(gap)
	}

	if line.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitAtWidth returns the longest prefix of s fitting in w columns and the
// rest. The prefix always holds at least one cluster so callers progress.
func splitAtWidth(s string, w int) (head, tail string) {
	col := 0
	n := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := graphemeWidth(cluster)
		if col+cw > w && n > 0 {
			break
		}
		col += cw
		n += len(cluster)
	}
	return s[:n], s[n:]
}

// TruncateToWidth truncates s to at most maxWidth columns. If truncation
// occurs, the last visible column becomes an ellipsis.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}
	return Cut(s, maxWidth-1) + ellipsis
}

// Cut returns the longest prefix of s that fits in maxWidth columns.
// A wide cluster that would straddle the limit is left out.
func Cut(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, c := range Cells(s) {
		if col+c.Width > maxWidth {
			break
		}
		b.WriteString(c.Text)
		col += c.Width
	}
	return b.String()
}

// Fit cuts s to w columns and pads it with spaces to exactly w columns.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = Cut(s, w)
	if pad := w - VisibleWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
