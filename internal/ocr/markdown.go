package ocr

import (
	"fmt"
	"strings"
)

// combineMarkdown joins all page markdown with blank lines, inlining each
// page's extracted images so the result is self-contained. The upstream
// emits image references as ![id](id); the id is swapped for the base64
// data URI it returned alongside the page.
func combineMarkdown(resp *Response) string {
	parts := make([]string, 0, len(resp.Pages))
	for _, page := range resp.Pages {
		md := page.Markdown
		for _, img := range page.Images {
			if img.ImageBase64 == "" {
				continue
			}
			placeholder := fmt.Sprintf("![%s](%s)", img.ID, img.ID)
			inlined := fmt.Sprintf("![%s](%s)", img.ID, img.ImageBase64)
			md = strings.ReplaceAll(md, placeholder, inlined)
		}
		parts = append(parts, md)
	}
	return strings.Join(parts, "\n\n")
}
