package web

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderIntro converts the configured markdown intro to HTML. Raw HTML in the
// markdown is dropped.
func RenderIntro(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering intro: %w", err)
	}
	return buf.String(), nil
}
