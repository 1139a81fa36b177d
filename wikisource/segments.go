package wikisource

import (
	"strings"
	"unicode"

	"github.com/open-guji/guji/stream"
	"github.com/open-guji/guji/text"
)

// parseParagraph splits one paragraph of transcribed text into typed
// segments, applying the transcription conventions:
//
//	[1], [23]  numeric footnote markers, dropped
//	[文字]      side comment
//	【文字】     interlinear annotation
//
// Everything else is main text. Punctuation is stripped and the text
// NFC-normalized; a paragraph with no remaining content yields nil.
func parseParagraph(line string) []Segment {
	line = text.Normalize(strings.TrimLeft(line, " \t　"))

	var segs []Segment
	var main strings.Builder

	flushMain := func() {
		if s := clean(main.String()); s != "" {
			segs = append(segs, Segment{Kind: MainText, Text: s})
		}
		main.Reset()
	}

	runes := []rune(line)
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '[':
			body, next, ok := bracketed(runes, i, ']')
			if !ok {
				main.WriteRune(runes[i])
				i++
				continue
			}
			if !allDigits(body) {
				if s := clean(body); s != "" {
					flushMain()
					segs = append(segs, Segment{Kind: SideComment, Text: s})
				}
			}
			i = next
		case '【':
			body, next, ok := bracketed(runes, i, '】')
			if !ok {
				main.WriteRune(runes[i])
				i++
				continue
			}
			if s := clean(body); s != "" {
				flushMain()
				segs = append(segs, Segment{Kind: Annotation, Text: s})
			}
			i = next
		default:
			main.WriteRune(runes[i])
			i++
		}
	}
	flushMain()

	return segs
}

// bracketed returns the text between runes[start] and the next closing
// rune, plus the index past the close. ok is false for an unterminated
// bracket.
func bracketed(runes []rune, start int, closer rune) (string, int, bool) {
	for i := start + 1; i < len(runes); i++ {
		if runes[i] == closer {
			return string(runes[start+1 : i]), i + 1, true
		}
	}
	return "", 0, false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// clean strips punctuation and surrounding whitespace from a segment.
func clean(s string) string {
	return strings.TrimSpace(text.StripPunctuation(s))
}

// AppendTo appends the document's paragraphs to a stream builder: main
// text as glyphs, annotations as interlinear runs, side comments as
// pass-through anchors for the side-annotation module. Paragraphs are
// separated by column breaks.
func (d *Document) AppendTo(b *stream.Builder, ind stream.Indents) {
	for i, para := range d.Paragraphs {
		if i > 0 {
			b.Break(stream.ColumnBreak)
		}
		for _, seg := range para {
			switch seg.Kind {
			case MainText:
				b.Text(seg.Text, ind)
			case Annotation:
				b.Annotation(seg.Text, ind)
			case SideComment:
				b.Passthrough(seg.Text, ind)
			}
		}
	}
}
