package markdown_test

import (
	"testing"

	"ats-backend/pkg/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	html, err := markdown.Render("# 제목\n\n- 항목 하나\n- 항목 둘")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<li>항목 하나</li>")
}

func TestRenderEscapesRawHTML(t *testing.T) {
	html, err := markdown.Render("본문 <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderGFMTable(t *testing.T) {
	html, err := markdown.Render("| 항목 | 점수 |\n| --- | --- |\n| 기술 | 8 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}
