package source

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/strata/model"
)

// charAdvance is the assumed glyph advance in em. MuPDF's HTML output
// positions whole lines, not single glyphs, so character boxes are
// reconstructed by advancing a cursor from the line origin.
const charAdvance = 0.5

// parsePageItems converts MuPDF's positioned HTML rendition of one page
// into character and figure items. Each <p> carries the line origin in
// its style; spans carry the font size. Whitespace advances the cursor
// without producing an item.
func parsePageItems(markup string) ([]*model.DocItem, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var items []*model.DocItem
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p":
				items = append(items, parseLine(n)...)
				return
			case "img":
				if item := parseFigure(n); item != nil {
					items = append(items, item)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return items, nil
}

// parseLine emits one character item per visible glyph of a positioned
// <p> element.
func parseLine(p *html.Node) []*model.DocItem {
	style := attrValue(p, "style")
	top, okTop := styleLength(style, "top")
	left, okLeft := styleLength(style, "left")
	if !okTop || !okLeft {
		return nil
	}

	var items []*model.DocItem
	x := left

	var emit func(n *html.Node, fontSize float64)
	emit = func(n *html.Node, fontSize float64) {
		if n.Type == html.TextNode {
			for _, r := range n.Data {
				advance := charAdvance * fontSize
				if !isSpacingRune(r) {
					items = append(items, &model.DocItem{
						Type:     model.ItemTypeChar,
						BBox:     model.NewBBox(x, top, advance, fontSize),
						Text:     string(r),
						FontSize: fontSize,
					})
				}
				x += advance
			}
			return
		}
		if n.Type == html.ElementNode && n.Data == "span" {
			if size, ok := styleLength(attrValue(n, "style"), "font-size"); ok {
				fontSize = size
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			emit(c, fontSize)
		}
	}
	emit(p, 0)

	return items
}

// parseFigure converts a positioned <img> element into a figure item.
func parseFigure(img *html.Node) *model.DocItem {
	style := attrValue(img, "style")
	top, okTop := styleLength(style, "top")
	left, okLeft := styleLength(style, "left")
	width, okWidth := parseLength(attrValue(img, "width"))
	height, okHeight := parseLength(attrValue(img, "height"))
	if !okTop || !okLeft || !okWidth || !okHeight {
		return nil
	}
	return &model.DocItem{
		Type: model.ItemTypeFigure,
		BBox: model.NewBBox(left, top, width, height),
	}
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// styleLength extracts a length property from an inline style
// declaration.
func styleLength(style, property string) (float64, bool) {
	for _, decl := range strings.Split(style, ";") {
		key, value, found := strings.Cut(decl, ":")
		if !found || strings.TrimSpace(key) != property {
			continue
		}
		return parseLength(strings.TrimSpace(value))
	}
	return 0, false
}

// parseLength parses a CSS length such as "74.1pt". Bare numbers are
// accepted and read as points.
func parseLength(value string) (float64, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "pt")
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isSpacingRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ' ':
		return true
	}
	return false
}
