package markup_test

import (
	"strings"
	"testing"

	"github.com/ezerfernandes/lcsub/internal/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraph",
			html: "<p>Given <strong>nums</strong> &amp; target</p>",
			want: "Given **nums** & target\n",
		},
		{
			name: "code fence",
			html: "<pre>a{b}c</pre>",
			want: "```\na{b}c\n```\n",
		},
		{
			name: "double escaped entity decoded once",
			html: "<p>&amp;lt;tag&amp;gt;</p>",
			want: "&lt;tag&gt;\n",
		},
		{
			name: "non-breaking space",
			html: "<p>a&nbsp;b</p>",
			want: "a b\n",
		},
		{
			name: "link",
			html: `<a href="https://example.com/problems/two-sum/">Two Sum</a>`,
			want: "[Two Sum](https://example.com/problems/two-sum/)",
		},
		{
			name: "link href decoded once",
			html: `<p><a href="/q?x=&amp;lt;b">link</a> text &amp;lt;b</p>`,
			want: "[link](/q?x=&lt;b) text &lt;b\n",
		},
		{
			name: "code language from class",
			html: `<pre><code class="hljs language-rust">fn x() {}</code></pre>`,
			want: "```rust\nfn x() {}\n```\n",
		},
		{
			name: "code language from lang attribute",
			html: `<pre lang="c++">int x;</pre>`,
			want: "```c++\nint x;\n```\n",
		},
		{
			name: "comment dropped",
			html: "<p>a<!-- hidden -->b</p>",
			want: "ab\n",
		},
		{
			name: "malformed markup",
			html: "<p><strong>open <em>never closed",
			want: "**open *never closed***\n",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := markup.Description(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescriptionProblem(t *testing.T) {
	t.Parallel()

	content := `<p>Given an array of integers <code>nums</code>&nbsp;and an integer <code>target</code>, return <em>indices of the two numbers such that they add up to <code>target</code></em>.</p>

<p>&nbsp;</p>
<p><strong class="example">Example 1:</strong></p>

<pre>
<strong>Input:</strong> nums = [2,7,11,15], target = 9
<strong>Output:</strong> [0,1]
</pre>

<ul>
	<li><code>2 &lt;= nums.length &lt;= 10<sup>4</sup></code></li>
	<li><strong>Only one valid answer exists.</strong></li>
</ul>`

	got, err := markup.Description(content)

	require.NoError(t, err)
	assert.Contains(t, got, "Given an array of integers `nums` and an integer `target`")
	assert.Contains(t, got, "*indices of the two numbers such that they add up to `target`*.")
	assert.Contains(t, got, "```\n**Input:** nums = [2,7,11,15], target = 9\n**Output:** [0,1]\n```\n")
	assert.Contains(t, got, "- `2 <= nums.length <= 104`")
	assert.Contains(t, got, "- **Only one valid answer exists.**")
	assert.NotContains(t, got, "<p>")
	assert.Equal(t, 2, strings.Count(got, "```"))
}

func TestFromHTMLAttrs(t *testing.T) {
	t.Parallel()

	root, err := markup.FromHTML(strings.NewReader(`<a href="/x" title="t">x</a>`))
	require.NoError(t, err)

	body, ok := root.(*markup.Element)
	require.True(t, ok)
	require.Len(t, body.Children, 1)

	link, ok := body.Children[0].(*markup.Element)
	require.True(t, ok)
	assert.Equal(t, markup.Link, link.Tag)

	href, has := link.Attr("href")
	assert.True(t, has)
	assert.Equal(t, "/x", href)

	_, has = link.Attr("rel")
	assert.False(t, has)
}
