package cmd

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libRS = `// Problem: Two Sum
pub struct Solution;

impl Solution {
    pub fn two_sum(nums: Vec<i32>, target: i32) -> Vec<i32> {
        let s = "}";
        vec![]
    }
}

#[cfg(test)]
mod tests {}
`

const noSolution = "struct Solution;\nfn helper() {}\nfn main() {}\n"

const rustDescription = `<p>Example</p><pre><code class="language-rust">fn x() {}</code></pre><pre>plain</pre>`

const description = `<p>Given <strong>nums</strong> &amp; target</p><pre>Input: [1,2]
Output: 3</pre><pre>second</pre>`

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	mfs := memoryfs.New()
	require.NoError(t, mfs.WriteFile("lib.rs", []byte(libRS), 0o644))
	require.NoError(t, mfs.WriteFile("none.rs", []byte(noSolution), 0o644))
	require.NoError(t, mfs.WriteFile("problem.html", []byte(description), 0o644))
	require.NoError(t, mfs.WriteFile("rust.html", []byte(rustDescription), 0o644))

	opts := newOptions()
	opts.readFile = func(name string) ([]byte, error) {
		return fs.ReadFile(mfs, name)
	}
	opts.stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr, opts)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "extract", "lib.rs")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "impl Solution {\n    pub fn two_sum(nums: Vec<i32>, target: i32) -> Vec<i32> {\n        let s = \"}\";\n        vec![]\n    }\n}\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestExtractStdin(t *testing.T) {
	t.Parallel()

	res := execute(t, "impl Solution {\n}\nfn main() {}\n", "extract")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "impl Solution {\n}\n", res.stdout)
}

func TestExtractFallbackWarns(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "extract", "none.rs")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "struct Solution;\nfn helper() {}\n", res.stdout)
	assert.Contains(t, res.stderr, "warning: no solution block found in none.rs")

	res = execute(t, "", "extract", "--quiet", "none.rs")
	assert.Empty(t, res.stderr)
}

func TestExtractStrict(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "extract", "--strict", "none.rs")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "no solution block found")
}

func TestExtractCustomPatterns(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "extract", "--opener", "prefix:pub fn", "--terminator", "'prefix:#[cfg(test)]'", "lib.rs")

	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "    pub fn two_sum"))
	assert.Equal(t, 4, strings.Count(res.stdout, "\n"))
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"extract", "missing.rs"},
		{"extract", "--lang", "cobol", "lib.rs"},
		{"extract", "--opener", "regexp:(", "lib.rs"},
		{"extract", "--terminator", "'open", "lib.rs"},
		{"extract", "--region", "a b", "lib.rs"},
		{"extract", "a.rs", "b.rs"},
	}

	for _, args := range tests {
		res := execute(t, "", args...)

		assert.Equal(t, 1, res.code, args)
		assert.Contains(t, res.stderr, "Error:", args)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "problem.html")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Given **nums** & target\n```\nInput: [1,2]\nOutput: 3\n```\n```\nsecond\n```\n", res.stdout)
}

func TestRenderBlocks(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--blocks", "problem.html")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "First line")
	assert.Contains(t, res.stdout, "Input: [1,2]")
	assert.Contains(t, res.stdout, "second")

	res = execute(t, "", "render", "--blocks", "--block-lang", "rust", "problem.html")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "no code blocks")
}

func TestRenderBlocksByLang(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--blocks", "--block-lang", "ru*", "rust.html")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "rust")
	assert.Contains(t, res.stdout, "fn x() {}")
	assert.NotContains(t, res.stdout, "plain")
	assert.Empty(t, res.stderr)

	res = execute(t, "", "render", "rust.html")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "```rust\nfn x() {}\n```\n```\nplain\n```\n")
}

func TestRenderBadGlob(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "render", "--blocks", "--block-lang", "[", "problem.html")

	assert.Equal(t, 1, res.code)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	res := execute(t, "", "check", "--dir", dir, "lib.rs", "--", "test -f {} && echo {lang} ok")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "rust ok\n", res.stdout)
	assert.Contains(t, res.stderr, "--- lib.rs : 6 line(s)")

	written, err := os.ReadFile(filepath.Join(dir, "solution.rs"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), "impl Solution {\n"))
	assert.NotContains(t, string(written), "mod tests")
}

func TestCheckExitStatus(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "check", "--quiet", "--dir", t.TempDir(), "lib.rs", "--", "exit 3")

	assert.Equal(t, 3, res.code)
	assert.Empty(t, res.stderr)
}

func TestCheckMissingCommand(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "check", "lib.rs")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, errMissingCommand.Error())
}
