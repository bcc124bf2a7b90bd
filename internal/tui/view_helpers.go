package tui

import (
	"fmt"
	"strings"
	"time"
)

const (
	pageIndent = "  "
	pageWidth  = 54
)

var uiDivider = strings.Repeat("─", pageWidth)

// renderPage frames a page body between dividers with its key help below.
// A blank body renders as a single dash.
func renderPage(title, data, hotKeys string) string {
	lines := []string{titleStyle.Render(title), pageIndent + uiDivider, ""}

	if strings.TrimSpace(data) == "" {
		data = "-"
	}
	for _, line := range strings.Split(data, "\n") {
		lines = append(lines, pageIndent+line)
	}

	lines = append(lines, "", pageIndent+uiDivider)
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, pageIndent+helpStyle.Render(hotKeys))
	}
	lines = append(lines, helpStyle.Render(pageIndent+"ctrl+c: quit"))

	return appStyle.Render(strings.Join(lines, "\n"))
}

// statusLines renders the status and error lines shown under every page.
func statusLines(status, errMsg string) string {
	var b strings.Builder
	if status != "" {
		b.WriteString("\n" + statusStyle.Render(status))
	}
	if errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+errMsg))
	}
	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText shortens v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func shortID(id string) string {
	return fitText(id, 8)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02 Jan 2006 15:04")
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func row(format string, args ...any) string {
	return fmt.Sprintf(format, args...) + "\n"
}
