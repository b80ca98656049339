package encode

import "github.com/fatih/color"

// Colors maps token classes to sprint functions for terminal display.
type Colors struct {
	Key     func(format string, a ...any) string
	String  func(format string, a ...any) string
	Number  func(format string, a ...any) string
	Literal func(format string, a ...any) string
	Punct   func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Key:     color.New(color.FgYellow).SprintfFunc(),
		String:  color.New(color.FgGreen).SprintfFunc(),
		Number:  color.RGB(128, 216, 236).SprintfFunc(),
		Literal: color.New(color.FgMagenta).SprintfFunc(),
		Punct:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

func (es *EncState) key(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Key("%s", s)
}

func (es *EncState) str(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.String("%s", s)
}

func (es *EncState) number(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Number("%s", s)
}

func (es *EncState) literal(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Literal("%s", s)
}

func (es *EncState) punct(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Punct("%s", s)
}
