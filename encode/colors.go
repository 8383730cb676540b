package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	keyColor ColorAttr = iota
	sepColor
	scalarColor
	hintColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[keyColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[sepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[scalarColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[hintColor] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Get(a)(s)
}
