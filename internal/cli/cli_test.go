package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", "", "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCatalogCmd(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	out, err := run(t, "catalog", "--list", "all")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 388)

	out, err = run(t, "catalog", "PP94", "B05")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ PP94")

	out, err = run(t, "catalog", "PP94", "DU86")
	assert.ErrorContains(t, err, "1 of 2 maps")
	assert.Contains(t, out, "✗ DU86")

	_, err = run(t, "catalog", "--list", "nope")
	assert.Error(t, err)
}

func TestTranslateCmd(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", `
[translation]
target_map = "B"

[catalog]
all_maps = ["A", "B"]
`)
	relations := writeFile(t, dir, "relations.yaml", `
relations:
  - {source: A-1, target: B-1, rc: I, converse: I}
  - {source: A-2, target: B-2, rc: I, converse: I}
`)
	data := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(data, 0o755))
	writeFile(t, data, "a1.yaml", `
edges:
  - {source: A-1, target: A-2, ec_source: C, ec_target: P, degree: 1}
`)
	writeFile(t, data, "a2.yaml", `
edges:
  - {source: A-1, target: A-2, ec_source: C, ec_target: C, degree: 0}
`)

	out, err := run(t, "--config", cfg, "translate", "-r", relations, "-d", "dan", "-o", "json", data)
	require.NoError(t, err)

	var rep struct {
		TargetMap  string `json:"target_map"`
		Discipline string `json:"discipline"`
		Edges      []struct {
			Source string  `json:"source"`
			Target string  `json:"target"`
			Score  float64 `json:"score"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "B", rep.TargetMap)
	assert.Equal(t, "dan", rep.Discipline)
	require.Len(t, rep.Edges, 1)
	assert.Equal(t, "B-1", rep.Edges[0].Source)
	assert.Equal(t, 0.0, rep.Edges[0].Score)

	out, err = run(t, "--config", cfg, "translate", "-r", relations, data)
	require.NoError(t, err)
	assert.Contains(t, out, "discipline: ort")
	assert.Contains(t, out, "source: B-1")

	_, err = run(t, "--config", cfg, "translate", "-r", relations, "-o", "xml", data)
	assert.ErrorContains(t, err, "unknown output format")
}
