package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/studylab/core"
	"github.com/trezcool/studylab/core/catalog"
	"github.com/trezcool/studylab/core/student"
	logsvc "github.com/trezcool/studylab/services/logger"
	inmemdb "github.com/trezcool/studylab/storage/inmem"
)

// exit codes
const (
	exitOK      = 0
	exitInvalid = 1 // invalid input: email, onboarding choices, unknown subject
	exitError   = 2 // configuration or runtime error
)

type commandLine struct {
	conf   *core.Config
	out    io.Writer
	errOut io.Writer

	// root flags
	output  string
	today   string
	verbose bool

	// set up by prepare, once flags are parsed
	logger core.Logger
	usrSvc *student.Service
	catSvc *catalog.Service
	pr     *printer

	exitCode int
}

func newCommandLine(conf *core.Config, out, errOut io.Writer) *commandLine {
	return &commandLine{conf: conf, out: out, errOut: errOut}
}

// run executes the command line (without program name) and returns the exit code.
func (cli *commandLine) run(args []string) int {
	cli.exitCode = exitOK
	root := cli.newRootCommand()
	root.SetArgs(args)
	root.SetOut(cli.out)
	root.SetErr(cli.errOut)

	if err := root.Execute(); err != nil {
		var vErr *core.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintf(cli.errOut, "Error: %s\n", validationMessage(vErr))
			return exitInvalid
		}
		if errors.Cause(err) == catalog.ErrNotFound {
			fmt.Fprintf(cli.errOut, "Error: %v\n", err)
			return exitInvalid
		}
		if cli.logger != nil {
			cli.logger.Error("command failed", err)
		}
		fmt.Fprintf(cli.errOut, "Error: %v\n", err)
		return exitError
	}
	return cli.exitCode
}

func (cli *commandLine) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "studylab",
		Short: "Brainware University study portal tools",
		Long: `StudyLab reads student identities from Brainware University emails,
walks the onboarding flow and browses the subject catalog.

Exit codes:
  0 - Success
  1 - Invalid input (email, program, academic year, subject)
  2 - Configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.prepare()
		},
	}

	root.PersistentFlags().StringVarP(&cli.output, "output", "o", cli.conf.Output, "Output format (text|json|yaml)")
	root.PersistentFlags().StringVar(&cli.today, "today", "", "Pin the current date (YYYY-MM-DD)")
	root.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Print logs to stderr")

	root.AddCommand(cli.newParseCommand())
	root.AddCommand(cli.newYearCommand())
	root.AddCommand(cli.newProgramCommand())
	root.AddCommand(cli.newProgramsCommand())
	root.AddCommand(cli.newSignInCommand())
	root.AddCommand(cli.newOnboardCommand())
	root.AddCommand(cli.newSubjectsCommand())
	root.AddCommand(cli.newSemestersCommand())
	root.AddCommand(cli.newMaterialsCommand())
	root.AddCommand(cli.newVersionCommand())
	return root
}

// prepare wires the services according to the config and root flags.
func (cli *commandLine) prepare() error {
	pr, err := newPrinter(cli.output, cli.out)
	if err != nil {
		return err
	}
	cli.pr = pr

	clock := cli.conf.Clock()
	if today := core.CleanString(cli.today); today != "" {
		t, err := core.ParseDate(today)
		if err != nil {
			return errors.Wrap(err, "--today")
		}
		clock = func() time.Time { return t }
	}

	logOut := io.Discard
	if cli.verbose {
		logOut = cli.errOut
	}
	logger := logsvc.NewRollbarLogger(logsvc.NewStdLogger(logOut, "STUDYLAB : "), cli.conf)
	logger.Enable(!cli.conf.Debug && cli.conf.RollbarToken != "")
	cli.logger = logger

	parser := student.NewParser(clock)
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator, parser)
	cli.usrSvc = student.NewService(student.ServiceDeps{
		Parser:     parser,
		Validate:   validate,
		Translator: translator,
		Logger:     logger,
		Auth:       student.NewMockProvider(cli.conf.AuthDelay),
	})

	db, err := inmemdb.Open()
	if err != nil {
		return errors.Wrap(err, "opening catalog")
	}
	cli.catSvc = catalog.NewService(inmemdb.NewCatalogRepository(db))
	return nil
}

func (cli *commandLine) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cli.out, "studylab %s\n", cli.conf.Build)
		},
	}
}

func validationMessage(err *core.ValidationError) string {
	if len(err.Fields) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(err.Fields))
	for _, fld := range err.Fields {
		msgs = append(msgs, fld.Error)
	}
	return strings.Join(msgs, "; ")
}
