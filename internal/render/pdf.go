package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"tailormake-backend/internal/pipeline"
)

const (
	pageMargin   = 36 // 0.5 inch
	bodyFontSize = 10
	lineHeight   = 14
)

// sectionRank orders the canonical sections; everything else keeps the
// document order after them.
func sectionRank(title string) int {
	switch strings.ToLower(strings.TrimSpace(title)) {
	case "education":
		return 0
	case "experience", "work experience":
		return 1
	case "projects":
		return 2
	default:
		return 3
	}
}

func orderedSections(sections []pipeline.Section) []pipeline.Section {
	out := make([]pipeline.Section, len(sections))
	copy(out, sections)
	// Stable insertion sort keeps document order within the same rank.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && sectionRank(out[j].Title) < sectionRank(out[j-1].Title); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// PDF renders a tailored resume document to PDF bytes. Model output is UTF-8;
// the core fonts are cp1252, so every string goes through the translator.
func PDF(doc pipeline.Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeader(pdf, tr, doc)

	if strings.TrimSpace(doc.Summary) != "" {
		writeSectionTitle(pdf, tr, "Summary")
		pdf.SetFont("Helvetica", "", bodyFontSize)
		pdf.MultiCell(0, lineHeight, tr(doc.Summary), "", "L", false)
		pdf.Ln(6)
	}

	for _, section := range orderedSections(doc.Sections) {
		if len(section.Items) == 0 {
			continue
		}
		writeSectionTitle(pdf, tr, section.Title)
		for _, item := range section.Items {
			writeItem(pdf, tr, item)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, doc pipeline.Document) {
	name := doc.Contact.Name
	if strings.TrimSpace(name) == "" {
		name = "Resume"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, tr(name), "", 1, "C", false, 0, "")

	contact := contactLine(doc.Contact)
	if contact != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 12, tr(contact), "", 1, "C", false, 0, "")
	}

	if strings.TrimSpace(doc.Headline) != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 16, tr(doc.Headline), "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)
}

func contactLine(c pipeline.Contact) string {
	parts := make([]string, 0, 4+len(c.Links))
	for _, p := range []string{c.Email, c.Phone, c.Location} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	for _, link := range c.Links {
		if strings.TrimSpace(link) != "" {
			parts = append(parts, link)
		}
	}
	return strings.Join(parts, " · ")
}

func writeSectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	if strings.TrimSpace(title) == "" {
		title = "Details"
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 18, tr(strings.ToUpper(title)), "B", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeItem(pdf *fpdf.Fpdf, tr func(string) string, item map[string]any) {
	heading := itemString(item, "position", "degree", "name", "title")
	sub := itemString(item, "organization", "institution", "company")
	if field := itemString(item, "field"); field != "" && itemString(item, "degree") != "" {
		heading = heading + " in " + field
	}

	meta := make([]string, 0, 2)
	if dates := itemString(item, "dates", "date"); dates != "" {
		meta = append(meta, dates)
	}
	if location := itemString(item, "location"); location != "" {
		meta = append(meta, location)
	}

	if heading != "" {
		pdf.SetFont("Helvetica", "B", bodyFontSize)
		pdf.CellFormat(0, lineHeight, tr(heading), "", 1, "L", false, 0, "")
	}
	subLine := sub
	if len(meta) > 0 {
		if subLine != "" {
			subLine += " — "
		}
		subLine += strings.Join(meta, ", ")
	}
	if subLine != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 12, tr(subLine), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", bodyFontSize)
	if description := itemString(item, "description", "summary", "text"); description != "" {
		pdf.MultiCell(0, lineHeight, tr(description), "", "L", false)
	}
	for _, highlight := range itemStrings(item, "highlights", "bullets") {
		pdf.MultiCell(0, lineHeight, tr("•  "+highlight), "", "L", false)
	}
	if tech := itemStrings(item, "technologies", "skills"); len(tech) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 12, tr(strings.Join(tech, ", ")), "", "L", false)
	}

	// Fallback for items carrying none of the known keys.
	if heading == "" && subLine == "" && itemString(item, "description", "summary", "text") == "" &&
		len(itemStrings(item, "highlights", "bullets")) == 0 && len(itemStrings(item, "technologies", "skills")) == 0 {
		pdf.MultiCell(0, lineHeight, tr(flattenItem(item)), "", "L", false)
	}
	pdf.Ln(4)
}

func itemString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func itemStrings(item map[string]any, keys ...string) []string {
	for _, key := range keys {
		v, ok := item[key]
		if !ok {
			continue
		}
		switch vv := v.(type) {
		case []string:
			return vv
		case []any:
			out := make([]string, 0, len(vv))
			for _, e := range vv {
				if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if strings.TrimSpace(vv) != "" {
				return []string{strings.TrimSpace(vv)}
			}
		}
	}
	return nil
}

func flattenItem(item map[string]any) string {
	parts := make([]string, 0, len(item))
	for _, v := range item {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, " — ")
}
