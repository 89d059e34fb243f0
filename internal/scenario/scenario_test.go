package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndRun(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "walkthrough.yaml", `
name: walkthrough
ops:
  - do: push
    value: 10
  - do: push
    value: 20
  - do: push
    value: 30
  - do: push
    value: 40
  - do: push
    value: 50
  - do: erase
    index: 2
  - do: insert
    index: 1
    value: 99
expect:
  len: 5
  elements: [10, 99, 20, 40, 50]
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "walkthrough", s.Name)
	assert.Len(t, s.Ops, 7)

	rep, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Len)
	assert.Equal(t, 8, rep.Cap)
	assert.Equal(t, []int{10, 99, 20, 40, 50}, rep.Elements)
}

func TestNameDefaultsToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "unnamed.yaml", "ops:\n  - do: push\n    value: 1\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", s.Name)
}

func TestExpectationMismatch(t *testing.T) {
	s := &Scenario{
		Name: "bad",
		Ops:  []Op{{Do: "push", Value: 1}},
		Expect: &Expect{
			Elements: []int{2},
		},
	}
	rep, err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected elements")
	require.NotNil(t, rep, "report is returned even on mismatch")
	assert.Equal(t, []int{1}, rep.Elements)
}

func TestUnknownOperation(t *testing.T) {
	s := &Scenario{Name: "odd", Ops: []Op{{Do: "frobnicate"}}}
	_, err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestOperationFailureIsReported(t *testing.T) {
	s := &Scenario{Name: "bad-index", Ops: []Op{{Do: "erase", Index: 3}}}
	_, err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op 0 (erase)")
	assert.Contains(t, err.Error(), "out of range")

	s = &Scenario{Name: "empty-pop", Ops: []Op{{Do: "pop"}}}
	_, err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pop on empty")
}

func TestFindGlob(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a/one.yaml", "ops: []\n")
	writeScenario(t, dir, "a/b/two.yaml", "ops: []\n")
	writeScenario(t, dir, "ignored.txt", "not yaml")

	paths, err := Find(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a", "b", "two.yaml"), paths[0])
	assert.Equal(t, filepath.Join(dir, "a", "one.yaml"), paths[1])
}

// TestShippedScenarios runs the scenario files bundled with the repository.
func TestShippedScenarios(t *testing.T) {
	paths, err := Find(filepath.Join("..", "..", "examples", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "bundled scenarios missing")

	for _, path := range paths {
		s, err := Load(path)
		require.NoError(t, err, path)
		_, err = s.Run()
		assert.NoError(t, err, path)
	}
}
