package smtvar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smtvar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
package: github.com/ajalab/smtvar/testdata
funcs:
  - Max2
  - Inc
backend: z3
logLevel: debug
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Package:   testdataPackage,
		FuncNames: []string{"Max2", "Inc"},
		Backend:   BackendZ3,
		LogLevel:  "debug",
	}, config)
}

func TestLoadConfigErrors(t *testing.T) {
	tcs := map[string]string{
		"unknown field":   "pkg: foo\n",
		"unknown backend": "backend: cvc5\n",
		"malformed":       "funcs: [\n",
	}
	for name, content := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigMerge(t *testing.T) {
	c := &Config{Package: "a", FuncNames: []string{"F"}, Backend: BackendSMTLib}
	c.Merge(&Config{Backend: BackendZ3, LogLevel: "error"})
	assert.Equal(t, &Config{
		Package:   "a",
		FuncNames: []string{"F"},
		Backend:   BackendZ3,
		LogLevel:  "error",
	}, c)
}
