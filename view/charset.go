// =======================
// view/charset.go
// =======================

package view

import "daysglobe/config"

// Charset holds the glyphs for one visual style. Wire runs from the faintest
// to the brightest sample.
type Charset struct {
	Wire    []rune
	Point   rune
	Hover   rune
	Clicked rune
}

var charsets = map[string]Charset{
	config.CharsetASCII:  {Wire: []rune{'.', ':', '-', '=', '+', '*'}, Point: 'o', Hover: 'O', Clicked: '@'},
	config.CharsetDots:   {Wire: []rune{'˙', '·', '∙', '•'}, Point: '●', Hover: '◉', Clicked: '◎'},
	config.CharsetBlocks: {Wire: []rune{'░', '▒', '▓'}, Point: '■', Hover: '▣', Clicked: '█'},
}

// LookupCharset returns the named charset, falling back to dots.
func LookupCharset(name string) Charset {
	if cs, ok := charsets[name]; ok {
		return cs
	}
	return charsets[config.CharsetDots]
}

func (cs Charset) wireRune(intensity float64) rune {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return cs.Wire[int(intensity*float64(len(cs.Wire)-1)+0.5)]
}
