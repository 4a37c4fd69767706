package render

import (
	"slices"
	"sort"
	"strings"
)

// Style is an immutable set of presentation properties. Zero fields are unset.
type Style struct {
	Width      string
	Align      string
	FontWeight string
	Color      string
	Background string
	Margin     string
	Position   string
	Classes    []string
}

// Merge returns a new Style where every field set in other overrides s.
// Classes accumulate without duplicates.
func (s Style) Merge(other Style) Style {
	out := s
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&out.Width, other.Width)
	pick(&out.Align, other.Align)
	pick(&out.FontWeight, other.FontWeight)
	pick(&out.Color, other.Color)
	pick(&out.Background, other.Background)
	pick(&out.Margin, other.Margin)
	pick(&out.Position, other.Position)

	out.Classes = slices.Clone(s.Classes)
	for _, c := range other.Classes {
		if !slices.Contains(out.Classes, c) {
			out.Classes = append(out.Classes, c)
		}
	}
	return out
}

func (s Style) css() string {
	decls := make([]string, 0, 7)
	add := func(prop, v string) {
		if v != "" {
			decls = append(decls, prop+": "+v)
		}
	}
	add("width", s.Width)
	add("text-align", s.Align)
	add("font-weight", s.FontWeight)
	add("color", s.Color)
	add("background-color", s.Background)
	add("margin", s.Margin)
	add("position", s.Position)
	sort.Strings(decls)
	return strings.Join(decls, "; ")
}
