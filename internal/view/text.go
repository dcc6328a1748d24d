package view

import (
	"fmt"
	"strings"
)

// Text renders the list as plain text: placeholder lines or one line per
// row, followed by a blank line and the summary.
func (lv ListView) Text() string {
	var sb strings.Builder
	if lv.Placeholder != nil {
		sb.WriteString(strings.Join(lv.Placeholder.Lines, "\n"))
		sb.WriteString("\n")
	}
	for _, r := range lv.Rows {
		sb.WriteString(r.Text())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(lv.Summary)
	sb.WriteString("\n")
	return sb.String()
}

// Text renders a row as "<icon> <title> (<season info>) [<type>]".
func (r Row) Text() string {
	if r.SeasonInfo != "" {
		return fmt.Sprintf("%s %s (%s) [%s]", r.Icon, r.Title, r.SeasonInfo, r.TypeLabel)
	}
	return fmt.Sprintf("%s %s [%s]", r.Icon, r.Title, r.TypeLabel)
}
