package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// The document format is a minimal OOXML package: fixed-order zip entries
// with zeroed modification times, so rendering the same plan twice yields
// byte-identical output.

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:rPr><w:b/><w:sz w:val="24"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:pPr><w:ind w:left="360"/></w:pPr></w:style></w:styles>`

type docxDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    docxBody `xml:"w:body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"w:p"`
}

type docxParagraph struct {
	Props *docxParaProps `xml:"w:pPr"`
	Runs  []docxRun      `xml:"w:r"`
}

type docxParaProps struct {
	Style *docxStyleRef `xml:"w:pStyle"`
}

type docxStyleRef struct {
	Val string `xml:"w:val,attr"`
}

type docxRun struct {
	Props *docxRunProps `xml:"w:rPr"`
	Text  docxText      `xml:"w:t"`
}

type docxRunProps struct {
	Bold *docxEmpty `xml:"w:b"`
}

type docxEmpty struct{}

type docxText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

// renderDocument serializes the layout as a .docx package.
func renderDocument(l Layout) ([]byte, error) {
	doc := docxDocument{NS: wordNS, Body: docxBody{Paragraphs: documentParagraphs(l)}}
	payload, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	entries := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", xml.Header + string(payload)},
		{"word/styles.xml", stylesXML},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		// Zero Modified keeps the archive independent of the wall clock.
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("render document: %w", err)
		}
		if _, err := w.Write([]byte(e.data)); err != nil {
			return nil, fmt.Errorf("render document: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

func documentParagraphs(l Layout) []docxParagraph {
	ps := []docxParagraph{styledParagraph("Title", l.Title)}

	for _, blk := range l.Blocks {
		switch blk.Kind {
		case BlockHeading:
			ps = append(ps, styledParagraph(headingStyle(blk.Level), blk.Text))
		case BlockParagraph:
			ps = append(ps, plainParagraph(blk.Text))
		case BlockMeta:
			for _, pair := range blk.Pairs {
				ps = append(ps, docxParagraph{Runs: []docxRun{
					boldRun(pair.Label + ": "),
					textRun(pair.Value),
				}})
			}
		case BlockBullets:
			for _, item := range blk.Items {
				ps = append(ps, listParagraph("• "+item))
			}
		case BlockNumbered:
			for i, item := range blk.Items {
				ps = append(ps, listParagraph(strconv.Itoa(i+1)+". "+item))
			}
		case BlockLinks:
			for _, link := range blk.Links {
				ps = append(ps, docxParagraph{
					Props: &docxParaProps{Style: &docxStyleRef{Val: "ListParagraph"}},
					Runs: []docxRun{
						boldRun("• " + link.Title + ": "),
						textRun(link.URL),
					},
				})
			}
		}
	}
	return ps
}

func headingStyle(level int) string {
	switch level {
	case 2:
		return "Heading1"
	case 3:
		return "Heading2"
	default:
		return "Heading3"
	}
}

func styledParagraph(style, text string) docxParagraph {
	return docxParagraph{
		Props: &docxParaProps{Style: &docxStyleRef{Val: style}},
		Runs:  []docxRun{textRun(text)},
	}
}

func plainParagraph(text string) docxParagraph {
	return docxParagraph{Runs: []docxRun{textRun(text)}}
}

func listParagraph(text string) docxParagraph {
	return docxParagraph{
		Props: &docxParaProps{Style: &docxStyleRef{Val: "ListParagraph"}},
		Runs:  []docxRun{textRun(text)},
	}
}

func textRun(text string) docxRun {
	return docxRun{Text: docxText{Space: "preserve", Value: text}}
}

func boldRun(text string) docxRun {
	return docxRun{
		Props: &docxRunProps{Bold: &docxEmpty{}},
		Text:  docxText{Space: "preserve", Value: text},
	}
}
