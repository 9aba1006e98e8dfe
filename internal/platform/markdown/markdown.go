// Package markdown converts markdown source to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	Render(src string) (string, error)
}

// GoldmarkRenderer renders GitHub flavored markdown. Raw HTML in the source
// is not passed through (WithUnsafe is not set).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

var _ Renderer = (*GoldmarkRenderer)(nil)

func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				goldmarkHTML.WithHardWraps(),
			),
		),
	}
}

func (r *GoldmarkRenderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

type StubRenderer struct {
	RenderFunc func(src string) (string, error)
}

var _ Renderer = (*StubRenderer)(nil)

func (s *StubRenderer) Render(src string) (string, error) {
	if s.RenderFunc == nil {
		return "", fmt.Errorf("Render() not implemented by stub")
	}
	return s.RenderFunc(src)
}
