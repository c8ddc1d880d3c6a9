// Package tui styles session messages for a terminal.
package tui

import (
	"github.com/aretw0/guess/pkg/domain"
	"github.com/aretw0/guess/pkg/runner"
	"github.com/muesli/termenv"
)

// Palette colours per message kind.
var palette = map[domain.MessageKind]string{
	domain.KindIntro:   "#a78bfa",
	domain.KindInvalid: "#fb7185",
	domain.KindHint:    "#fbbf24",
	domain.KindVictory: "#34d399",
}

// NewRenderer returns a ContentRenderer styling messages for profile.
// With termenv.Ascii the text passes through untouched.
func NewRenderer(profile termenv.Profile) runner.ContentRenderer {
	return func(msg domain.Message) string {
		if profile == termenv.Ascii {
			return msg.Text
		}

		s := termenv.String(msg.Text)
		if hex, ok := palette[msg.Kind]; ok {
			s = s.Foreground(profile.Color(hex))
		}
		switch msg.Kind {
		case domain.KindIntro, domain.KindVictory:
			s = s.Bold()
		case domain.KindPrompt:
			s = s.Faint()
		}
		return s.String()
	}
}
