package linkpreview

import (
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// pageText strips markup that remote pages put inside title and
// description content
var pageText = bluemonday.StrictPolicy()

// plainText returns s without tags. The policy escapes entities, so they are
// decoded again.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(pageText.Sanitize(s)))
}

// metadata holds every candidate value found in a page
type metadata struct {
	og        map[string]string // og:title, og:description, og:image
	alternate map[string]string // twitter:* tags, <title>, meta description
}

// parseMetadata scans an HTML document for preview tags. Parsing stops at
// </head> since preview tags never appear in the body.
func parseMetadata(r io.Reader) (metadata, error) {
	md := metadata{
		og:        make(map[string]string),
		alternate: make(map[string]string),
	}

	z := html.NewTokenizer(r)
	inTitle := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return md, nil
			}
			return md, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "meta":
				md.addMeta(tok.Attr)
			case "title":
				inTitle = tt == html.StartTagToken
			case "body":
				return md, nil
			}
		case html.TextToken:
			if inTitle {
				setOnce(md.alternate, "title", string(z.Text()))
			}
		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "title":
				inTitle = false
			case "head":
				return md, nil
			}
		}
	}
}

func (md metadata) addMeta(attrs []html.Attribute) {
	var key, content string
	for _, a := range attrs {
		switch strings.ToLower(a.Key) {
		case "property", "name":
			if key == "" {
				key = strings.ToLower(strings.TrimSpace(a.Val))
			}
		case "content":
			content = a.Val
		}
	}

	switch key {
	case "og:title":
		setOnce(md.og, "title", content)
	case "og:description":
		setOnce(md.og, "description", content)
	case "og:image", "og:image:url":
		setOnce(md.og, "image", content)
	case "twitter:title":
		setOnce(md.alternate, "twitter:title", content)
	case "twitter:description":
		setOnce(md.alternate, "twitter:description", content)
	case "twitter:image", "twitter:image:src":
		setOnce(md.alternate, "image", content)
	case "description":
		setOnce(md.alternate, "description", content)
	}
}

func setOnce(m map[string]string, key, val string) {
	val = strings.TrimSpace(val)
	if val == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = val
	}
}

// first returns the first non-empty candidate
func first(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// preview applies the priority order Open Graph, then alternate tags, then
// defaults. ok is false when the page offered nothing at all.
func (md metadata) preview() (p Preview, ok bool) {
	title := plainText(first(md.og["title"], md.alternate["twitter:title"], md.alternate["title"]))
	desc := plainText(first(md.og["description"], md.alternate["twitter:description"], md.alternate["description"]))
	image := first(md.og["image"], md.alternate["image"])

	if title == "" && desc == "" && image == "" {
		return Default(), false
	}

	def := Default()
	return Preview{
		Title:       first(title, def.Title),
		Description: first(desc, def.Description),
		Image:       first(image, def.Image),
	}, true
}
