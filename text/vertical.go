package text

import (
	"unicode"

	"golang.org/x/text/width"
)

// OccupiesCell reports whether r takes up one grid cell when set
// vertically. East-Asian wide and fullwidth characters occupy a cell
// (including the ideographic space U+3000, which renders as a blank
// cell); narrow characters, combining marks, and controls do not.
func OccupiesCell(r rune) bool {
	if unicode.IsControl(r) || unicode.Is(unicode.Mn, r) {
		return false
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// Rotates reports whether r is drawn rotated a quarter turn clockwise in
// vertical text instead of upright. This covers the horizontal-stroke
// characters that have no dedicated vertical presentation form.
func Rotates(r rune) bool {
	switch r {
	case '—', // em dash
		'–',      // en dash
		'…',      // horizontal ellipsis
		'〜',      // wave dash
		'～',      // fullwidth tilde
		'ー',      // prolonged sound mark
		'⸺', // two-em dash
		'⸻': // three-em dash
		return true
	}
	return false
}

// verticalForms maps horizontal punctuation to its CJK vertical
// presentation form (Unicode blocks FE10–FE19 and FE30–FE44).
var verticalForms = map[rune]rune{
	'，': '︐',
	'、': '︑',
	'。': '︒',
	'：': '︓',
	'；': '︔',
	'！': '︕',
	'？': '︖',
	'…': '︙',
	'—': '︱',
	'–': '︲',
	'（': '︵',
	'）': '︶',
	'｛': '︷',
	'｝': '︸',
	'〔': '︹',
	'〕': '︺',
	'【': '︻',
	'】': '︼',
	'《': '︽',
	'》': '︾',
	'〈': '︿',
	'〉': '﹀',
	'「': '﹁',
	'」': '﹂',
	'『': '﹃',
	'』': '﹄',
}

// VerticalForm returns the vertical presentation form of r, or r itself
// when no substitution applies. Renderers call this per placed glyph;
// the grid engine itself never rewrites runes.
func VerticalForm(r rune) rune {
	if v, ok := verticalForms[r]; ok {
		return v
	}
	return r
}
