package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

const printStyles = `body { font-family: Georgia, "Times New Roman", serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; line-height: 1.5; }
h1 { font-size: 1.8rem; border-bottom: 2px solid #1a1a1a; padding-bottom: 0.3rem; }
h2 { font-size: 1.4rem; margin-top: 2rem; border-bottom: 1px solid #999; padding-bottom: 0.2rem; }
h3 { font-size: 1.1rem; margin-top: 1.2rem; }
ol li, ul li { margin: 0.3rem 0; }
a { color: #1a1a1a; }
@media print {
  body { margin: 0; max-width: none; }
  h2 { break-after: avoid; }
  a { text-decoration: none; }
}
`

// renderPrintable serializes the layout as a self-contained print-styled
// HTML page: layout to Markdown, Markdown to HTML, wrapped in a fixed shell.
func renderPrintable(l Layout) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(layoutMarkdown(l)), &body); err != nil {
		return nil, fmt.Errorf("render printable: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(l.Title))
	page.WriteString("<style>\n")
	page.WriteString(printStyles)
	page.WriteString("</style>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// layoutMarkdown renders the layout as Markdown. Pure function of the
// layout; all printable determinism rests on it.
func layoutMarkdown(l Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", l.Title)

	for _, blk := range l.Blocks {
		switch blk.Kind {
		case BlockHeading:
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", blk.Level), blk.Text)
		case BlockParagraph:
			fmt.Fprintf(&b, "%s\n\n", blk.Text)
		case BlockMeta:
			for _, pair := range blk.Pairs {
				fmt.Fprintf(&b, "**%s:** %s  \n", pair.Label, pair.Value)
			}
			b.WriteString("\n")
		case BlockBullets:
			for _, item := range blk.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			b.WriteString("\n")
		case BlockNumbered:
			for i, item := range blk.Items {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item)
			}
			b.WriteString("\n")
		case BlockLinks:
			for _, link := range blk.Links {
				fmt.Fprintf(&b, "- [%s](%s)\n", link.Title, link.URL)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
