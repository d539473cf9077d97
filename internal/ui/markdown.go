package ui

import "github.com/charmbracelet/glamour"

// RenderMarkdown renders markdown for terminal display. When styling is
// unavailable the raw markdown is returned unchanged, which keeps the
// output pipeable.
func RenderMarkdown(theme *Theme, hm *HeadlessManager, md string) string {
	if hm.IsHeadless() || theme.NoColor {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
