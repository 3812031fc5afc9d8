package main

import (
	"context"
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/studylab/core/student"
)

type signInOptions struct {
	provider bool
}

func (cli *commandLine) newSignInCommand() *cobra.Command {
	opts := &signInOptions{}

	cmd := &cobra.Command{
		Use:   "signin [<email>]",
		Short: "Sign in and show the onboarding profile",
		Long: `Sign in with a Brainware University email, or through the identity provider
with --provider, and show what onboarding could infer from the email.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.signIn(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.provider, "provider", false, "Sign in through the identity provider")
	return cmd
}

func (cli *commandLine) signIn(ctx context.Context, args []string, opts *signInOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		prof student.Profile
		err  error
	)
	switch {
	case opts.provider:
		if len(args) > 0 {
			return errors.New("--provider takes no email")
		}
		prof, err = cli.usrSvc.SignInWithProvider(ctx)
	case len(args) == 1:
		prof, err = cli.usrSvc.SignIn(ctx, student.SignInRequest{Email: args[0]})
	default:
		return errors.New("an email or --provider is required")
	}
	if err != nil {
		return err
	}

	return cli.pr.print(prof, func(w io.Writer, clr *color.Color) {
		fmt.Fprintf(w, "Welcome, %s <%s>\n", clr.Bold(prof.Name), prof.Email)
		if !prof.IsPrefilled() {
			fmt.Fprintln(w, clr.Yellow("Program and academic year could not be inferred from this email."))
			return
		}
		fmt.Fprintf(w, "  Program: %s (%s)\n", prof.Identity.Program, prof.ProgramName)
		fmt.Fprintf(w, "  %s\n", student.AcademicYearLabel(prof))
	})
}

type onboardOptions struct {
	program string
	year    string
}

func (cli *commandLine) newOnboardCommand() *cobra.Command {
	opts := &onboardOptions{}

	cmd := &cobra.Command{
		Use:   "onboard <email>",
		Short: "Complete onboarding and print the account",
		Long: `Sign in with a Brainware University email and complete onboarding.
Program and academic year default to the values inferred from the email.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.onboard(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.program, "program", "", "Program (bca|mca|btech|mtech)")
	cmd.Flags().StringVar(&opts.year, "year", "", "Academic year (1-4)")
	return cmd
}

func (cli *commandLine) onboard(ctx context.Context, email string, opts *onboardOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	prof, err := cli.usrSvc.SignIn(ctx, student.SignInRequest{Email: email})
	if err != nil {
		return err
	}
	req := prof.OnboardingRequest()
	if opts.program != "" {
		req.Program = opts.program
	}
	if opts.year != "" {
		req.Year = opts.year
	}

	usr, err := cli.usrSvc.Complete(ctx, prof, req)
	if err != nil {
		return err
	}
	return cli.pr.print(usr, func(w io.Writer, clr *color.Color) {
		fmt.Fprintf(w, "%s %s <%s>\n", clr.Green("Onboarded"), usr.Name, usr.Email)
		fmt.Fprintf(w, "  ID:      %s\n", usr.ID)
		fmt.Fprintf(w, "  Program: %s (%s)\n", usr.Program, student.ProgramFullName(usr.Program))
		fmt.Fprintf(w, "  Year:    %s\n", usr.BatchYear)
	})
}
