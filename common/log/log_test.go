package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Format(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := New(buf)
	logger.SetConsoleLevel(DebugLevel)

	l := logger.WithFields(Fields{
		FieldKeyAddress: "kontos1wsa0kx979dg7gc2ckjg4t3nwafgc53lujw7pqp",
		FieldKeyModule:  "wallet",
		"seq":           3,
	})
	l.Debugf("SignAmino(chain=%s)", "kontos-1")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "D|"), line)
	assert.Contains(t, line, "|lujw7pqp|")
	assert.Contains(t, line, "|wallet|")
	assert.Contains(t, line, "SignAmino(chain=kontos-1) seq=3\n")
	assert.NotContains(t, line, "address=")
}

func TestLogger_ModuleLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := New(buf)
	logger.SetConsoleLevel(InfoLevel)
	logger.SetModuleLevel("wallet", TraceLevel)

	logger.Debugf("dropped")
	assert.Empty(t, buf.String())

	logger.WithFields(Fields{FieldKeyModule: "wallet"}).Debugf("kept")
	assert.Contains(t, buf.String(), "kept")

	buf.Reset()
	logger.WithFields(Fields{FieldKeyModule: "cli"}).Tracef("dropped")
	assert.Empty(t, buf.String())
}

func TestLogger_FileWriter(t *testing.T) {
	console := bytes.NewBuffer(nil)
	file := bytes.NewBuffer(nil)
	logger := New(console)
	logger.SetConsoleLevel(WarnLevel)
	logger.SetFileWriter(file)

	logger.Infof("only in file")
	assert.Empty(t, console.String())
	assert.Contains(t, file.String(), "only in file")
}

func TestParseLevel(t *testing.T) {
	for _, lv := range []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, PanicLevel} {
		parsed, err := ParseLevel(lv.String())
		require.NoError(t, err)
		assert.Equal(t, lv, parsed)
	}
	lv, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lv)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "kontos.log")
	w, err := NewWriter(&WriterConfig{Filename: p})
	require.NoError(t, err)

	logger := New(bytes.NewBuffer(nil))
	logger.SetFileWriter(w)
	logger.Warnf("rotated")
	require.NoError(t, w.Close())

	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "W|")
	assert.Contains(t, string(bs), "rotated")
}
