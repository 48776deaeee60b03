package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gtechsltn/entities/gen"
)

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["go.mod"] = "module example.com/models\n\ngo 1.24\n"
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestRun_GeneratesMarkedPackages(t *testing.T) {
	t.Parallel()
	dir := writeModule(t, map[string]string{
		"models.go": "package models\n\n//entities:table schema=app\ntype Order struct {\n\tId   int64 `entity:\"key\"`\n\tNote string\n}\n",
		"plain/plain.go": "package plain\n\ntype Unmarked struct{ Id int64 }\n",
	})

	err := run(context.Background(), zaptest.NewLogger(t), dir, "entities_gen.go", 2, []string{"./..."})
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "entities_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "// "+gen.Header)
	assert.Contains(t, string(src), "package models")
	assert.Contains(t, string(src), "func (e *Order) SetKey(key int64) {")
	assert.Contains(t, string(src), `"app"`)

	assert.NoFileExists(t, filepath.Join(dir, "plain", "entities_gen.go"))
}

func TestRun_CustomOutputName(t *testing.T) {
	t.Parallel()
	dir := writeModule(t, map[string]string{
		"models.go": "package models\n\n//entities:table\ntype Tag struct {\n\tId string `entity:\"key\"`\n}\n",
	})

	require.NoError(t, run(context.Background(), zaptest.NewLogger(t), dir, "mapping_gen.go", 0, []string{"."}))
	assert.FileExists(t, filepath.Join(dir, "mapping_gen.go"))
	assert.NoFileExists(t, filepath.Join(dir, "entities_gen.go"))
}

func TestRun_InvalidModel(t *testing.T) {
	t.Parallel()
	dir := writeModule(t, map[string]string{
		"models.go": "package models\n\n//entities:table\ntype NoKey struct {\n\tId int64\n}\n",
	})

	err := run(context.Background(), zaptest.NewLogger(t), dir, "entities_gen.go", 1, []string{"."})
	require.ErrorIs(t, err, gen.ErrNoKey)
	assert.NoFileExists(t, filepath.Join(dir, "entities_gen.go"))
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()
	dir := writeModule(t, map[string]string{
		"models.go": "package models\n\nfunc broken( {\n",
	})

	err := run(context.Background(), zaptest.NewLogger(t), dir, "entities_gen.go", 1, []string{"."})
	assert.Error(t, err)
}
