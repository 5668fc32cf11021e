package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(InfoLevel)

	tcs := []struct {
		level string
		want  map[string]bool
	}{
		{"debug", map[string]bool{"d": true, "i": true, "e": true}},
		{"info", map[string]bool{"d": false, "i": true, "e": true}},
		{"ERROR", map[string]bool{"d": false, "i": false, "e": true}},
		{"disabled", map[string]bool{"d": false, "i": false, "e": false}},
	}
	for _, tc := range tcs {
		t.Run(tc.level, func(t *testing.T) {
			require.NoError(t, SetLevelByName(tc.level))
			for msg, l := range map[string]Logger{"d": Debug, "i": Info, "e": Error} {
				buf.Reset()
				l.Printf("msg=%s", msg)
				assert.Equal(t, tc.want[msg], bytes.Contains(buf.Bytes(), []byte("msg="+msg)), "%s at %s", msg, tc.level)
			}
		})
	}
}

func TestSetLevelByNameUnknown(t *testing.T) {
	defer SetLevel(InfoLevel)
	SetLevel(ErrorLevel)
	assert.Error(t, SetLevelByName("verbose"))
	assert.Equal(t, ErrorLevel, CurrentLevel())
}
