package reader

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	MinFontSize     = 12
	MaxFontSize     = 24
	FontSizeStep    = 2
	DefaultFontSize = 18

	MinLineHeight     = 1.2
	MaxLineHeight     = 2.4
	LineHeightStep    = 0.1
	DefaultLineHeight = 1.8

	MinMaxWidth     = 600
	MaxMaxWidth     = 1200
	MaxWidthStep    = 50
	DefaultMaxWidth = 800

	DefaultFontFamily = "serif"
)

type FontOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Class string `json:"class"`
}

var FontOptions = []FontOption{
	{Value: "serif", Label: "Serif (Georgia)", Class: "font-playfair"},
	{Value: "sans", Label: "Sans-serif (Inter)", Class: "font-inter"},
	{Value: "mono", Label: "Monospace", Class: "font-mono"},
}

// Typography is the reader's display settings. Every field stays inside its
// slider range after Normalize.
type Typography struct {
	FontSize   int     `json:"font_size" form:"font_size"`
	FontFamily string  `json:"font_family" form:"font_family"`
	LineHeight float64 `json:"line_height" form:"line_height"`
	MaxWidth   int     `json:"max_width" form:"max_width"`
	DarkMode   bool    `json:"dark_mode" form:"dark_mode"`
}

func DefaultTypography() Typography {
	return Typography{
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		LineHeight: DefaultLineHeight,
		MaxWidth:   DefaultMaxWidth,
	}
}

// ParseTypography reads settings from a query string. Missing or malformed
// values keep their defaults.
func ParseTypography(q url.Values) Typography {
	t := DefaultTypography()
	if n, err := strconv.Atoi(q.Get("font_size")); err == nil {
		t.FontSize = n
	}
	if f := q.Get("font_family"); f != "" {
		t.FontFamily = f
	}
	if f, err := strconv.ParseFloat(q.Get("line_height"), 64); err == nil {
		t.LineHeight = f
	}
	if n, err := strconv.Atoi(q.Get("max_width")); err == nil {
		t.MaxWidth = n
	}
	if b, err := strconv.ParseBool(q.Get("dark")); err == nil {
		t.DarkMode = b
	}
	return t.Normalize()
}

// Normalize clamps each setting to its range and snaps it to the step grid.
func (t Typography) Normalize() Typography {
	t.FontSize = snapInt(t.FontSize, MinFontSize, MaxFontSize, FontSizeStep)
	t.MaxWidth = snapInt(t.MaxWidth, MinMaxWidth, MaxMaxWidth, MaxWidthStep)

	lh := t.LineHeight
	if math.IsNaN(lh) {
		lh = DefaultLineHeight
	}
	lh = math.Round(lh/LineHeightStep) * LineHeightStep
	t.LineHeight = math.Round(max(MinLineHeight, min(MaxLineHeight, lh))*10) / 10

	t.FontFamily = strings.ToLower(strings.TrimSpace(t.FontFamily))
	if FontClass(t.FontFamily) == "" {
		t.FontFamily = DefaultFontFamily
	}
	return t
}

func snapInt(v, lo, hi, step int) int {
	v = max(lo, min(hi, v))
	return lo + (v-lo+step/2)/step*step
}

// Adjust applies one settings-panel control and returns the result.
func (t Typography) Adjust(action string) Typography {
	switch action {
	case "font_larger":
		t.FontSize += FontSizeStep
	case "font_smaller":
		t.FontSize -= FontSizeStep
	case "line_taller":
		t.LineHeight += LineHeightStep
	case "line_shorter":
		t.LineHeight -= LineHeightStep
	case "wider":
		t.MaxWidth += MaxWidthStep
	case "narrower":
		t.MaxWidth -= MaxWidthStep
	case "toggle_dark":
		t.DarkMode = !t.DarkMode
	}
	return t.Normalize()
}

func FontClass(family string) string {
	for _, o := range FontOptions {
		if o.Value == family {
			return o.Class
		}
	}
	return ""
}

// ScrollProgress is how far through the chapter the reader has scrolled, in
// percent. A page that cannot scroll reports 0.
func ScrollProgress(scrollTop, scrollHeight, clientHeight float64) float64 {
	height := scrollHeight - clientHeight
	if height <= 0 {
		return 0
	}
	return max(0, min(100, scrollTop/height*100))
}
