package xmlnode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<trace-query-result>
  <node>
    <row>
      <process id="1" fmt="cat (1234)"><pid>1234</pid></process>
      <syscall id="2" fmt="BC_openat">902</syscall>
    </row>
    <row>
      <process ref="1"/>
      <syscall ref="9999"/>
    </row>
  </node>
</trace-query-result>`

func parseSample(t *testing.T) *Node {
	t.Helper()
	root, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	return root
}

func TestParse_TreeShape(t *testing.T) {
	root := parseSample(t)

	assert.Equal(t, "trace-query-result", root.Name)
	rows := root.Child("node").ChildrenNamed("row")
	require.Len(t, rows, 2)

	proc := rows[0].Child("process")
	require.NotNil(t, proc)
	assert.Equal(t, "1", proc.ID)
	assert.Equal(t, "cat (1234)", proc.Fmt)
	assert.Equal(t, "1234", proc.Child("pid").Text)
}

func TestParse_NoRootElement(t *testing.T) {
	_, err := Parse(strings.NewReader("   "))
	require.Error(t, err)
}

func TestBuildIndex(t *testing.T) {
	root := parseSample(t)
	idx := BuildIndex(root)

	require.Contains(t, idx, "1")
	require.Contains(t, idx, "2")
	assert.Equal(t, "cat (1234)", idx["1"].Fmt)
}

func TestResolve_NoRefReturnsNodeUnchanged(t *testing.T) {
	root := parseSample(t)
	idx := BuildIndex(root)

	proc := root.Child("node").ChildrenNamed("row")[0].Child("process")
	assert.Same(t, proc, Resolve(proc, idx))
}

func TestResolve_OneHop(t *testing.T) {
	root := parseSample(t)
	idx := BuildIndex(root)

	ref := root.Child("node").ChildrenNamed("row")[1].Child("process")
	resolved := Resolve(ref, idx)
	assert.Same(t, idx["1"], resolved)
	assert.Equal(t, "cat (1234)", resolved.Fmt)
}

func TestResolve_MissingTargetReturnsNodeUnchanged(t *testing.T) {
	root := parseSample(t)
	idx := BuildIndex(root)

	dangling := root.Child("node").ChildrenNamed("row")[1].Child("syscall")
	assert.Same(t, dangling, Resolve(dangling, idx))
}

func TestResolve_CycleTerminates(t *testing.T) {
	a := &Node{Name: "a", ID: "a", Ref: "b"}
	b := &Node{Name: "b", ID: "b", Ref: "a"}
	idx := Index{"a": a, "b": b}

	resolved := Resolve(a, idx)
	require.NotNil(t, resolved)
	assert.Contains(t, []*Node{a, b}, resolved)
}

func TestResolve_Nil(t *testing.T) {
	assert.Nil(t, Resolve(nil, Index{}))
}

func TestFormattedValue(t *testing.T) {
	root := parseSample(t)
	idx := BuildIndex(root)
	rows := root.Child("node").ChildrenNamed("row")

	assert.Equal(t, "cat (1234)", FormattedValue(rows[0].Child("process"), idx))
	assert.Equal(t, "cat (1234)", FormattedValue(rows[1].Child("process"), idx), "resolves through the ref")
	assert.Empty(t, FormattedValue(rows[0].Child("process").Child("pid"), idx))
	assert.Empty(t, FormattedValue(nil, idx))
}

func TestTextOrFormatted(t *testing.T) {
	root := parseSample(t)
	idx := BuildIndex(root)
	row := root.Child("node").ChildrenNamed("row")[0]

	assert.Equal(t, "BC_openat", TextOrFormatted(row.Child("syscall"), idx), "fmt wins over text")
	assert.Equal(t, "1234", TextOrFormatted(row.Child("process").Child("pid"), idx), "falls back to text")
	assert.Empty(t, TextOrFormatted(nil, idx))
}

func TestChild_NilSafe(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Child("anything"))
	assert.Nil(t, n.ChildrenNamed("anything"))
}
