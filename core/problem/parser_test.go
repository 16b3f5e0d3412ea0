package problem

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/taskmd/core"
)

const sampleHTML = `
<html>
<head><title>ABC001 A - 積雪深差</title></head>
<body>
<p>Time Limit: 2 sec / Memory Limit: 1024 MB</p>
<div id="task-statement">
  <span class="lang-ja">
    <section>
      <h3>問題文</h3>
      <p>2 つの観測所での積雪深がそれぞれ <var>a</var> cm, <var>b</var> cm であるとき、差を求めよ。</p>
      <h3>入力</h3>
      <p>入力は以下の形式で標準入力から与えられる。</p>
      <pre>a b</pre>
      <h3>出力</h3>
      <p>答えを出力せよ。</p>
      <h3>制約</h3>
      <ul>
        <li>0 \leq a, b \leq 100</li>
      </ul>
    </section>
  </span>
  <span class="lang-en">
    <section>
      <h3>Problem Statement</h3>
      <p>Given <var>a</var> and <var>b</var>, print the difference.</p>
    </section>
  </span>
</div>
</body>
</html>
`

func TestParseSample(t *testing.T) {
	md, err := New().Parse(sampleHTML, core.LanguageJA)
	require.NoError(t, err)

	want := strings.Join([]string{
		"# ABC001 A - 積雪深差",
		"",
		"**Time Limit:** 2 sec",
		"**Memory Limit:** 1024 MB",
		"",
		"",
		"## 問題文",
		"",
		"2 つの観測所での積雪深がそれぞれ $a$ cm, $b$ cm であるとき、差を求めよ。",
		"",
		"## 入力",
		"",
		"入力は以下の形式で標準入力から与えられる。",
		"```",
		"a b",
		"```",
		"",
		"",
		"## 出力",
		"",
		"答えを出力せよ。",
		"",
		"## 制約",
		"",
		`- 0 \leq a, b \leq 100`,
		"",
	}, "\n")
	assert.Equal(t, want, md)
}

func TestParseEnglishSection(t *testing.T) {
	md, err := New().Parse(sampleHTML, core.LanguageEN)
	require.NoError(t, err)

	assert.Contains(t, md, "## Problem Statement")
	assert.Contains(t, md, "Given $a$ and $b$, print the difference.")
	assert.NotContains(t, md, "問題文")
}

func TestParseVariableSubscript(t *testing.T) {
	html := `<html><head><title>ABC419 E - Sample Title</title></head><body>
<p>Time Limit: 3 sec / Memory Limit: 1024 MB</p>
<div id="task-statement"><span class="lang-en"><section>
<h3>Problem Statement</h3><p>Example with variable <var>x_1</var>.</p>
</section></span></div></body></html>`

	md, err := New().Parse(html, core.LanguageEN)
	require.NoError(t, err)
	assert.Contains(t, md, "# ABC419 E - Sample Title")
	assert.Contains(t, md, "$x_{1}$")
}

func TestParseWithoutTitle(t *testing.T) {
	html := `<div id="task-statement"><section><h3>Statement</h3><p>body</p></section></div>`

	md, err := New().Parse(html, core.LanguageJA)
	require.NoError(t, err)
	for _, line := range strings.Split(md, "\n") {
		assert.False(t, strings.HasPrefix(line, "# "), "unexpected title line %q", line)
	}
	assert.Contains(t, md, "## Statement")
}

func TestParseLimitsAreAtomic(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		wantPair bool
	}{
		{
			name:     "japanese",
			html:     `<p>実行時間制限: 2 sec / メモリ制限: 1024 MB</p>`,
			wantPair: true,
		},
		{
			name: "time only",
			html: `<p>Time Limit: 2 sec</p>`,
		},
		{
			name: "memory only",
			html: `<p>Memory Limit: 1024 MB</p>`,
		},
		{
			name: "garbled",
			html: `<p>Time Limit: fast / Memory Limit: small</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := New().Parse(tt.html, core.LanguageJA)
			require.NoError(t, err)

			hasTime := strings.Contains(md, "**Time Limit:**")
			hasMemory := strings.Contains(md, "**Memory Limit:**")
			assert.Equal(t, hasTime, hasMemory, "limits must appear as a pair")
			assert.Equal(t, tt.wantPair, hasTime)
		})
	}
}

func TestParseSkipsMixedContentLimitsParagraph(t *testing.T) {
	html := `<p>Mind the <b>Time Limit</b> carefully.</p><p>Time Limit: 2 sec / Memory Limit: 1024 MB</p>`

	md, err := New().Parse(html, core.LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "**Time Limit:** 2 sec\n**Memory Limit:** 1024 MB\n", md)
}

func TestParseUnicodeSubscript(t *testing.T) {
	html := `<div id="task-statement"><span class="lang-en"><section>
<p>Let <var>x_α</var> be given.</p></section></span></div>`

	md, err := New().Parse(html, core.LanguageEN)
	require.NoError(t, err)
	assert.Contains(t, md, "Let $x_{α}$ be given.")
}

func TestParseFallsBackToWholeStatement(t *testing.T) {
	html := `<div id="task-statement"><div class="part"><section>
<h3>Statement</h3><p>Only one language here.</p></section></div></div>`

	md, err := New().Parse(html, core.LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "\n## Statement\n\nOnly one language here.", md)
}

func TestParseWalksContainerWithoutSections(t *testing.T) {
	html := `<div id="task-statement"><span class="lang-en">
<div><h3>Input</h3><pre>N
A_1 A_2</pre></div>
<ul><li>A<ul><li>B</li></ul></li></ul>
</span></div>`

	md, err := New().Parse(html, core.LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"",
		"## Input",
		"",
		"```",
		"N\nA_1 A_2",
		"```",
		"",
		"- A",
		"  - B",
		"",
	}, "\n"), md)
}

func TestParseEmptyCodeBlockOmitted(t *testing.T) {
	html := `<div id="task-statement"><section><pre>

</pre></section></div>`

	md, err := New().Parse(html, core.LanguageJA)
	require.NoError(t, err)
	assert.Equal(t, "", md)
}

func TestParseNoStatement(t *testing.T) {
	md, err := New().Parse(`<html><head><title>Only Title</title></head></html>`, core.LanguageJA)
	require.NoError(t, err)
	assert.Equal(t, "# Only Title\n", md)
}

func TestExtract(t *testing.T) {
	prob, err := New().Extract(sampleHTML, core.LanguageJA)
	require.NoError(t, err)

	assert.Equal(t, "ABC001 A - 積雪深差", prob.Title)
	require.NotNil(t, prob.Limits)
	assert.Equal(t, core.Limits{Time: "2 sec", Memory: "1024 MB"}, *prob.Limits)
	assert.Equal(t, core.LanguageJA, prob.Language)
	assert.True(t, strings.HasPrefix(prob.Markdown, "# ABC001 A - 積雪深差\n"))
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.record(msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.record(msg) }

func TestExtractLogsOmissions(t *testing.T) {
	log := &recordingLogger{}
	_, err := New(WithLogger(log)).Extract(`<p>hello</p>`, core.LanguageJA)
	require.NoError(t, err)

	assert.Equal(t, []string{"no title found", "no limits found", "no task statement found"}, log.msgs)
}

func TestParserIsSafeForConcurrentUse(t *testing.T) {
	p := New()
	want, err := p.Parse(sampleHTML, core.LanguageJA)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Parse(sampleHTML, core.LanguageJA)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
