package buildlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlainFormat verifies the human-readable line format used when the
// GitHub Actions annotation mode is off.
func TestPlainFormat(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Out: &buf}

	log.Warnf("output directory %q will be cleared", "build")

	assert.Equal(t,
		"<publishkit> [WARNING] output directory \"build\" will be cleared\n",
		buf.String(),
		"plain format should be <name> [LEVEL] message")
}

// TestAnnotatedWarning verifies that annotated mode prepends the GitHub
// Actions workflow command line and still emits the plain line after it.
func TestAnnotatedWarning(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Out: &buf, Annotate: true}

	log.Warnf("missing file")

	assert.Equal(t,
		"::warning ::missing file\n<publishkit> [WARNING] missing file\n",
		buf.String(),
		"annotated warnings should carry a ::warning command line")
}

// TestInfoNeverAnnotated verifies that info lines stay plain even in
// annotated mode — GitHub Actions has no info workflow command.
func TestInfoNeverAnnotated(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Out: &buf, Annotate: true}

	log.Infof("publishing")

	assert.Equal(t, "<publishkit> [INFO] publishing\n", buf.String(),
		"info lines should have no annotation counterpart")
}

// TestDebugGatedOnVerbose verifies that debug output appears only when
// verbose mode is enabled.
func TestDebugGatedOnVerbose(t *testing.T) {
	var quiet, chatty bytes.Buffer

	(&Logger{Out: &quiet}).Debugf("hidden")
	(&Logger{Out: &chatty, Verbose: true}).Debugf("shown")

	assert.Empty(t, quiet.String(), "debug should be suppressed without verbose")
	assert.Equal(t, "<publishkit> [DEBUG] shown\n", chatty.String())
}

// TestErrorAnnotated verifies error lines get the ::error command in
// annotated mode.
func TestErrorAnnotated(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Out: &buf, Annotate: true}

	log.Errorf("boom")

	assert.Equal(t, "::error ::boom\n<publishkit> [ERROR] boom\n", buf.String())
}
