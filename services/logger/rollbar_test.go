package logsvc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/studylab/core"
	"github.com/trezcool/studylab/core/student"
)

func newTestLogger(buf *bytes.Buffer) *RollbarLogger {
	return NewRollbarLogger(NewStdLogger(buf, "TEST : "), &core.Config{Env: "TEST", Build: "test"})
}

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("signed in", map[string]interface{}{"program": "bca"})
	logger.Error("failed", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"TEST : ", "INFO signed in", "map[program:bca]", "ERROR failed", "boom"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestRollbarLogger_prepare(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	usr := student.User{ID: "1", Name: "Student 734", Email: "bwubca23734@brainwareuniversity.ac.in"}
	other := student.User{ID: "2"}
	err := errors.New("boom")

	got := logger.prepare("msg", []interface{}{usr, err, other})
	assert.Equal(t, []interface{}{"msg", err}, got)
}
