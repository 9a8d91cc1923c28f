package docpipe

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Page is one page unit: a 0-based index assigned at split time plus the
// rendered representation submitted to the transcription model. Immutable
// once created.
type Page struct {
	Index    int
	ImageURL string // data URL of the page scan, when the page embeds one
	Text     string // content-stream text fallback when no usable image exists
}

// SplitPDF splits a PDF into its ordered page units. Scanned contracts carry
// one full-page image per page; that image becomes the page representation.
// Pages without a usable image fall back to content-stream text so born-
// digital PDFs still digitize.
func SplitPDF(data []byte) ([]Page, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}
	if ctx.PageCount == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	pages := make([]Page, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		page := Page{Index: pageNr - 1}
		if url := largestPageImageURL(ctx, pageNr); url != "" {
			page.ImageURL = url
		} else {
			page.Text = extractPageText(ctx, pageNr)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// largestPageImageURL extracts the biggest image on the page as a data URL.
// Returns "" when the page has no image XObjects.
func largestPageImageURL(ctx *model.Context, pageNr int) string {
	if len(pdfcpu.ImageObjNrs(ctx, pageNr)) == 0 {
		return ""
	}
	images, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
	if err != nil {
		return ""
	}
	var best []byte
	var bestType string
	for _, img := range images {
		b, err := io.ReadAll(img)
		if err != nil {
			continue
		}
		if len(b) > len(best) {
			best = b
			bestType = img.FileType
		}
	}
	if len(best) == 0 {
		return ""
	}
	return "data:" + mimeForFileType(bestType) + ";base64," + base64.StdEncoding.EncodeToString(best)
}

func mimeForFileType(ft string) string {
	switch strings.ToLower(ft) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "tif", "tiff":
		return "image/tiff"
	case "png", "":
		return "image/png"
	default:
		return "image/" + strings.ToLower(ft)
	}
}

// extractPageText pulls text from a single page's content stream.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromStream parses PDF content stream operators for text runs.
func textFromStream(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}
	return cleanText(sb.String())
}

// decodePDFString handles basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanText collapses whitespace runs in extracted PDF text.
func cleanText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else if unicode.IsPrint(r) {
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
