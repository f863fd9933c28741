package document

import "github.com/russross/blackfriday/v2"

// RenderHTML converts a composed document into an HTML fragment for preview.
// Raw HTML typed into the requirements is dropped.
func RenderHTML(markdown string) []byte {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
	})
	return blackfriday.Run([]byte(markdown),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Tables),
		blackfriday.WithRenderer(renderer),
	)
}
