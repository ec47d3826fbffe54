package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRichText(t *testing.T) {
	t.Run(`allowlist check`, func(t *testing.T) {
		require.Equal(t, "<p><strong>Solar</strong> farm</p>", RichText("<p><strong>Solar</strong> farm</p>"))
		require.Equal(t, "<p>Invest now</p>", RichText(`<p>Invest <script>alert(1)</script>now</p>`))
		require.Equal(t, "Founder", RichText(`<div onclick="x()">Founder</div>`))
		require.Equal(t, "plain text", RichText("  plain text "))
	})

	t.Run(`pointer check`, func(t *testing.T) {
		require.Nil(t, RichTextPtr(nil))
		value := "<em>ok</em><iframe src=\"https://evil.example.com\"></iframe>"
		require.Equal(t, "<em>ok</em>", *RichTextPtr(&value))
	})
}
