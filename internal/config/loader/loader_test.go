package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/boxselect.toml", `
[tool]
preset = "xbox_select"
select_every_mousemove = true

[history]
max_entries = 50
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/boxselect.toml").Load()
	require.NoError(t, err)

	v, ok := GetByPath(config, "tool.preset")
	require.True(t, ok)
	assert.Equal(t, "xbox_select", v)

	v, _ = GetByPath(config, "tool.select_every_mousemove")
	assert.Equal(t, true, v)

	v, _ = GetByPath(config, "history.max_entries")
	assert.Equal(t, int64(50), v)
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[tool]\npreset = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "/bad.toml", perr.Path)
	assert.Positive(t, perr.Line)
	assert.Contains(t, perr.Error(), "/bad.toml at line")
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`[data]
path = "pts.json"`))
	require.NoError(t, err)
	v, _ := GetByPath(config, "data.path")
	assert.Equal(t, "pts.json", v)
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/boxselect.yaml", `
tool:
  preset: ybox_select
  origin: center
history:
  max_entries: 20
`)

	config, err := ForPath(memfs, "/boxselect.yaml").Load()
	require.NoError(t, err)

	v, _ := GetByPath(config, "tool.origin")
	assert.Equal(t, "center", v)
	v, _ = GetByPath(config, "history.max_entries")
	assert.Equal(t, int64(20), v, "yaml ints are normalized to int64")
}

func TestYAMLLoader_EmptyAndInvalid(t *testing.T) {
	config, err := NewYAMLLoader("").LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, config)

	_, err = NewYAMLLoader("").LoadFromReader(strings.NewReader("tool: [unclosed"))
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))

	_, err = NewYAMLLoader("").LoadFromReader(strings.NewReader("- a\n- b\n"))
	assert.True(t, errors.As(err, &perr), "top level must be a mapping")
}

func TestForPath(t *testing.T) {
	assert.IsType(t, &YAMLLoader{}, ForPath(nil, "a.yml"))
	assert.IsType(t, &YAMLLoader{}, ForPath(nil, "a.YAML"))
	assert.IsType(t, &TOMLLoader{}, ForPath(nil, "a.toml"))
	assert.IsType(t, &TOMLLoader{}, ForPath(nil, "config"))
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"tool":    map[string]any{"preset": "box_select", "origin": "corner"},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"tool": map[string]any{"origin": "center"},
		"data": map[string]any{"path": "x.json"},
	}

	out := DeepMerge(Clone(dst), src)
	v, _ := GetByPath(out, "tool.preset")
	assert.Equal(t, "box_select", v)
	v, _ = GetByPath(out, "tool.origin")
	assert.Equal(t, "center", v)
	v, _ = GetByPath(out, "data.path")
	assert.Equal(t, "x.json", v)

	v, _ = GetByPath(dst, "tool.origin")
	assert.Equal(t, "corner", v, "Clone isolates the original")
}

func TestSetByPath(t *testing.T) {
	m := map[string]any{"tool": "scalar"}
	SetByPath(m, "tool.mode", "append")
	v, ok := GetByPath(m, "tool.mode")
	require.True(t, ok)
	assert.Equal(t, "append", v)

	_, ok = GetByPath(m, "tool.mode.deeper")
	assert.False(t, ok)
}
