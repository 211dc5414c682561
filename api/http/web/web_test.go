package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Page{
		Jobs:  []jobs.Job{{Name: "Go </script> dev", Tags: jobs.Tags{Type: []string{}, Tech: []string{"golang"}}}},
		Pages: 3,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>nocsdegree</title>")
	assert.Contains(t, out, `window.__PAID_JOBS__ = [];`)
	assert.Contains(t, out, `"tech":["golang"]`)
	assert.Regexp(t, `window\.__PAGES__ = \s*3\s*;`, out)
	assert.NotContains(t, out, "Go </script> dev", "script content must be escaped")
}
