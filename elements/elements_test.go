package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/abraham-situmorang/AngleSharp/dom"
	"github.com/abraham-situmorang/AngleSharp/registry"
)

func TestDefaultRegistryResolution(t *testing.T) {
	tests := []struct {
		capability string
		resolve    func() (*registry.Descriptor, bool)
		wantName   string
	}{
		{"Paragraph", func() (*registry.Descriptor, bool) { return registry.ResolveFor[Paragraph](registry.Default()) }, "paragraph"},
		{"Heading", func() (*registry.Descriptor, bool) { return registry.ResolveFor[Heading](registry.Default()) }, "heading"},
		{"Anchor", func() (*registry.Descriptor, bool) { return registry.ResolveFor[Anchor](registry.Default()) }, "anchor"},
		{"Image", func() (*registry.Descriptor, bool) { return registry.ResolveFor[Image](registry.Default()) }, "image"},
		// The media entry itself is abstract; resolution lands on the first
		// concrete kind declaring the capability.
		{"Media", func() (*registry.Descriptor, bool) { return registry.ResolveFor[Media](registry.Default()) }, "image"},
	}
	for _, tt := range tests {
		t.Run(tt.capability, func(t *testing.T) {
			d, ok := tt.resolve()
			require.True(t, ok)
			assert.Equal(t, tt.wantName, d.Name)
		})
	}
}

func TestCreateParagraphViaRegistry(t *testing.T) {
	doc := dom.NewDocument()

	p, ok := registry.New[Paragraph](registry.Default(), doc)
	require.True(t, ok)
	assert.IsType(t, &ParagraphElement{}, p)
	assert.True(t, doc.Owns(p))
	assert.Nil(t, p.HTMLNode().Parent)
	assert.Equal(t, "", p.Text())
}

func TestParagraphText(t *testing.T) {
	p := NewParagraph()
	p.HTMLNode().AppendChild(&html.Node{Type: html.TextNode, Data: "hello"})
	assert.Equal(t, "hello", p.Text())
}

func TestHeadingLevels(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 1},
		{3, 3},
		{6, 6},
		{0, 1},
		{-2, 1},
		{9, 6},
	}
	for _, tt := range tests {
		h := NewHeading(tt.in)
		assert.Equal(t, tt.want, h.Level(), "NewHeading(%d)", tt.in)
	}
}

func TestHeadingString(t *testing.T) {
	h := NewHeading(2)
	h.HTMLNode().AppendChild(&html.Node{Type: html.TextNode, Data: "Title"})
	assert.Equal(t, "h2: Title", h.String())
}

func TestAnchorHref(t *testing.T) {
	t.Run("no base returns raw attribute", func(t *testing.T) {
		doc := dom.NewDocument()
		a := NewAnchorIn(doc)
		a.SetHref("../x.html")
		assert.Equal(t, "../x.html", a.Href())
	})

	t.Run("captured base resolves relative references", func(t *testing.T) {
		doc := dom.NewDocument()
		doc.SetBaseURL("https://example.com/a/b/")
		a := NewAnchorIn(doc)
		a.SetHref("../x.html")
		assert.Equal(t, "https://example.com/a/x.html", a.Href())
	})

	t.Run("owner document base wins over captured base", func(t *testing.T) {
		doc := dom.NewDocument()
		doc.SetBaseURL("https://old.example.com/")
		a := NewAnchorIn(doc)
		doc.Adopt(a)
		doc.SetBaseURL("https://new.example.com/dir/")
		a.SetHref("page.html")
		assert.Equal(t, "https://new.example.com/dir/page.html", a.Href())
	})

	t.Run("absolute references pass through", func(t *testing.T) {
		doc := dom.NewDocument()
		doc.SetBaseURL("https://example.com/")
		a := NewAnchorIn(doc)
		a.SetHref("https://other.example.com/p")
		assert.Equal(t, "https://other.example.com/p", a.Href())
	})

	t.Run("empty href stays empty", func(t *testing.T) {
		doc := dom.NewDocument()
		doc.SetBaseURL("https://example.com/")
		a := NewAnchorIn(doc)
		assert.Equal(t, "", a.Href())
	})
}

func TestAnchorViaRegistryUsesDocumentConstructor(t *testing.T) {
	doc := dom.NewDocument()
	doc.SetBaseURL("https://example.com/docs/")

	a, ok := registry.New[Anchor](registry.Default(), doc)
	require.True(t, ok)
	a.SetHref("guide.html")
	assert.Equal(t, "https://example.com/docs/guide.html", a.Href())
}

func TestImageAttrs(t *testing.T) {
	img := NewImage()
	img.SetAttr("src", "/pic.png")
	img.SetAttr("alt", "a picture")

	assert.Equal(t, "/pic.png", img.Source())
	assert.Equal(t, "a picture", img.AltText())
}

func TestMediaResolvesToImage(t *testing.T) {
	doc := dom.NewDocument()

	m, ok := registry.New[Media](registry.Default(), doc)
	require.True(t, ok)
	assert.IsType(t, &ImageElement{}, m)
	assert.True(t, doc.Owns(m))
}
