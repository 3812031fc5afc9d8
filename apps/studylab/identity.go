package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"

	"github.com/trezcool/studylab/core/student"
)

type parseResult struct {
	Email                  string `json:"email" yaml:"email"`
	student.ParsedIdentity `yaml:",inline"`
	ProgramName            string `json:"programName,omitempty" yaml:"programName,omitempty"`
	AcademicYear           int    `json:"academicYear,omitempty" yaml:"academicYear,omitempty"`
	StudentName            string `json:"studentName" yaml:"studentName"`
}

func (cli *commandLine) newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <email>...",
		Short: "Parse university emails",
		Long: `Parse Brainware University emails (bwu<program><yy><id>@brainwareuniversity.ac.in)
into program, admission year and student id.

Exit codes:
  0 - All emails are valid
  1 - At least one email is invalid`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.parse(args)
		},
	}
}

func (cli *commandLine) parse(emails []string) error {
	parser := cli.usrSvc.Parser()
	results := make([]parseResult, 0, len(emails))
	for _, email := range emails {
		res := parseResult{
			Email:          email,
			ParsedIdentity: parser.ParseUniversityEmail(email),
			StudentName:    parser.StudentNameFromEmail(email),
		}
		if res.IsValid {
			res.ProgramName = student.ProgramFullName(res.Program)
			res.AcademicYear = parser.CalculateCurrentYear(res.Year)
		} else {
			cli.exitCode = exitInvalid
		}
		results = append(results, res)
	}

	return cli.pr.print(results, func(w io.Writer, clr *color.Color) {
		for _, res := range results {
			if !res.IsValid {
				fmt.Fprintf(w, "%s: %s\n", res.Email, clr.Red("invalid"))
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", res.Email, clr.Green("valid"))
			fmt.Fprintf(w, "  Student:    %s\n", res.StudentName)
			fmt.Fprintf(w, "  Student ID: %s\n", res.StudentID)
			fmt.Fprintf(w, "  Program:    %s (%s)\n", res.Program, res.ProgramName)
			fmt.Fprintf(w, "  Admission:  20%s\n", res.Year)
			fmt.Fprintf(w, "  Year:       %d\n", res.AcademicYear)
		}
	})
}

func (cli *commandLine) newYearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "year <yy>",
		Short: "Academic year for a two-digit admission year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := struct {
				AdmissionYear string `json:"admissionYear" yaml:"admissionYear"`
				AcademicYear  int    `json:"academicYear" yaml:"academicYear"`
			}{
				AdmissionYear: args[0],
				AcademicYear:  cli.usrSvc.Parser().CalculateCurrentYear(args[0]),
			}
			return cli.pr.print(res, func(w io.Writer, clr *color.Color) {
				fmt.Fprintf(w, "Year %s\n", clr.Bold(res.AcademicYear))
			})
		},
	}
}

func (cli *commandLine) newProgramCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "program <code>",
		Short: "Full name of a program code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := struct {
				Code     string `json:"code" yaml:"code"`
				FullName string `json:"fullName" yaml:"fullName"`
			}{Code: args[0], FullName: student.ProgramFullName(args[0])}
			return cli.pr.print(res, func(w io.Writer, clr *color.Color) {
				fmt.Fprintln(w, res.FullName)
			})
		},
	}
}

func (cli *commandLine) newProgramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List the academic programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.pr.print(student.Programs, func(w io.Writer, clr *color.Color) {
				for _, prog := range student.Programs {
					years := make([]string, 0, len(prog.Years))
					for _, y := range prog.Years {
						years = append(years, fmt.Sprint(y))
					}
					fmt.Fprintf(w, "%s %-8s %-34s years %s\n",
						clr.Cyan(fmt.Sprintf("%-6s", prog.ID)), prog.Name, prog.FullName, strings.Join(years, ","))
				}
			})
		},
	}
}
