package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# comment\n\nSHAPE_TEST_A=1\nexport SHAPE_TEST_B = \"two words\"\nSHAPE_TEST_C='x'\nnot a pair\n=nokey\nSHAPE_TEST_KEEP=file\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	t.Setenv("SHAPE_TEST_KEEP", "env")
	for _, k := range []string{"SHAPE_TEST_A", "SHAPE_TEST_B", "SHAPE_TEST_C"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SHAPE_TEST_A", "SHAPE_TEST_B", "SHAPE_TEST_C"}, set)
	assert.Equal(t, "1", os.Getenv("SHAPE_TEST_A"))
	assert.Equal(t, "two words", os.Getenv("SHAPE_TEST_B"))
	assert.Equal(t, "x", os.Getenv("SHAPE_TEST_C"))
	assert.Equal(t, "env", os.Getenv("SHAPE_TEST_KEEP"), "existing variables win")
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestGet(t *testing.T) {
	t.Setenv("SHAPE_TEST_GET", "")
	assert.Equal(t, "fallback", Get("SHAPE_TEST_GET", "fallback"))
	t.Setenv("SHAPE_TEST_GET", "value")
	assert.Equal(t, "value", Get("SHAPE_TEST_GET", "fallback"))
}
