package testutil

import (
	"bytes"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/studylab/core"
	"github.com/trezcool/studylab/core/catalog"
	"github.com/trezcool/studylab/core/student"
	logsvc "github.com/trezcool/studylab/services/logger"
	inmemdb "github.com/trezcool/studylab/storage/inmem"
)

// Clock returns a clock frozen on the given day.
func Clock(year int, month time.Month, day int) func() time.Time {
	today := time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	return func() time.Time { return today }
}

// NewValidator returns a validator set up with all the app validators.
func NewValidator(parser *student.Parser) (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator, parser)
	return validate, translator
}

// NewLogger returns a logger writing into a buffer that is dumped when the test fails.
func NewLogger(t *testing.T) core.Logger {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("logs:\n%s", buf.String())
		}
	})
	return logsvc.NewRollbarLogger(logsvc.NewStdLogger(&buf, "TEST : "), &core.Config{Env: "TEST"})
}

// NewStudentService returns a student.Service whose clock is frozen on `clock`.
func NewStudentService(t *testing.T, clock func() time.Time, auth student.AuthProvider) *student.Service {
	t.Helper()
	parser := student.NewParser(clock)
	validate, translator := NewValidator(parser)
	return student.NewService(student.ServiceDeps{
		Parser:     parser,
		Validate:   validate,
		Translator: translator,
		Logger:     NewLogger(t),
		Auth:       auth,
	})
}

// NewCatalogService returns a catalog.Service over the built-in dataset.
func NewCatalogService(t *testing.T) *catalog.Service {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return catalog.NewService(inmemdb.NewCatalogRepository(db))
}
