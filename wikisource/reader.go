// Package wikisource acquires digital source text for typesetting from
// Wikisource-style documents.
//
// Classical texts transcribed on Wikisource carry modern punctuation,
// footnote markers like [1], bracketed side comments like [側批], and
// lenticular-bracket annotations like 【批注】. This package parses
// either the raw wikitext or an exported HTML page into a Document of
// typed segments, with punctuation stripped and footnotes dropped, ready
// to be appended to a stream.Builder.
package wikisource

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// SegmentKind classifies one segment of source text.
type SegmentKind int

const (
	// MainText flows into the main column as full-size glyphs.
	MainText SegmentKind = iota

	// Annotation is interlinear commentary, typeset as twin sub-columns.
	Annotation

	// SideComment is marginal commentary placed between columns by a
	// separate module; the stream carries only an anchor for it.
	SideComment
)

// String returns the segment kind name.
func (k SegmentKind) String() string {
	switch k {
	case MainText:
		return "MainText"
	case Annotation:
		return "Annotation"
	case SideComment:
		return "SideComment"
	default:
		return "Unknown"
	}
}

// Segment is a run of source text of one kind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Document is parsed source text: one segment sequence per paragraph.
type Document struct {
	Title      string
	Paragraphs [][]Segment
}

// Open parses a Wikisource HTML export from a file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ParseHTML(f)
}

// ParseHTML parses a Wikisource HTML page from r. Each <p> element in
// the body becomes one paragraph; footnote reference superscripts are
// dropped.
func ParseHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc := &Document{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				doc.Title = strings.TrimSpace(textContent(n))
				return
			case "script", "style":
				return
			case "p":
				if segs := parseParagraph(textContent(n)); len(segs) > 0 {
					doc.Paragraphs = append(doc.Paragraphs, segs)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return doc, nil
}

// ParseWikitext parses raw wikitext, one paragraph per non-empty line.
func ParseWikitext(src string) *Document {
	doc := &Document{}
	for _, line := range strings.Split(src, "\n") {
		if segs := parseParagraph(line); len(segs) > 0 {
			doc.Paragraphs = append(doc.Paragraphs, segs)
		}
	}
	return doc
}

// textContent concatenates the text nodes under n, skipping footnote
// reference superscripts.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && n.Data == "sup" {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
