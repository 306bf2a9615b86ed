package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
	assert.Equal(t, "", RenderMarkdown("  \n\t"))
}

func TestRenderMarkdown_PlainText(t *testing.T) {
	result := RenderMarkdown("feliz dia dos namorados")
	assert.Contains(t, result, "<p>feliz dia dos namorados</p>")
}

func TestRenderMarkdown_Emphasis(t *testing.T) {
	result := RenderMarkdown("te amo **muito** e *sempre*")
	assert.Contains(t, result, "<strong>muito</strong>")
	assert.Contains(t, result, "<em>sempre</em>")
}

func TestRenderMarkdown_Link(t *testing.T) {
	result := RenderMarkdown("[nossa música](https://open.spotify.com/track/3g5FrnRdbmDQyWNiDIprts)")
	assert.Contains(t, result, `<a href="https://open.spotify.com/track/3g5FrnRdbmDQyWNiDIprts"`)
	assert.Contains(t, result, "nossa música</a>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	result := RenderMarkdown(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderMarkdown_SanitizesEventHandlers(t *testing.T) {
	result := RenderMarkdown(`<img src="x.png" onerror="alert(1)">`)
	assert.NotContains(t, result, "onerror")
}

func TestRenderMarkdown_Strikethrough(t *testing.T) {
	result := RenderMarkdown("~~longe~~ perto")
	assert.Contains(t, result, "<del>longe</del>")
}

func TestRenderMarkdown_LineBreaks(t *testing.T) {
	result := RenderMarkdown("primeira linha\n\nsegunda linha")
	assert.Contains(t, result, "<p>primeira linha</p>")
	assert.Contains(t, result, "<p>segunda linha</p>")
}

func TestRenderMarkdown_HardWraps(t *testing.T) {
	result := RenderMarkdown("primeira linha\nsegunda linha")
	assert.Contains(t, result, "<br")
}

func TestRenderMarkdown_DropsImagesAndHeadings(t *testing.T) {
	result := RenderMarkdown("# Título\n\n![foto](https://example.com/foto.jpg)")
	assert.NotContains(t, result, "<h1")
	assert.NotContains(t, result, "<img")
	assert.Contains(t, result, "Título")
}

func TestRenderMarkdown_LinksOpenInNewTab(t *testing.T) {
	result := RenderMarkdown("[nossa música](https://open.spotify.com/track/3g5FrnRdbmDQyWNiDIprts)")
	assert.Contains(t, result, `target="_blank"`)
	assert.Contains(t, result, "nofollow")
}

func TestRenderMarkdown_RejectsScriptURLs(t *testing.T) {
	result := RenderMarkdown("[clique](javascript:alert(1))")
	assert.NotContains(t, result, "javascript:")
}
