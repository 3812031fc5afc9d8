package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"

	"github.com/trezcool/studylab/core/catalog"
)

const suggestLimit = 3

func (cli *commandLine) newSubjectsCommand() *cobra.Command {
	filter := &catalog.SubjectFilter{}

	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List subjects",
		Long: `List the subjects of the catalog. Filters are combined;
when nothing matches --search, similar subject names are suggested.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.subjects(*filter)
		},
	}
	cmd.Flags().StringVar(&filter.Program, "program", "", "Program (bca|mca|btech|mtech)")
	cmd.Flags().StringVar(&filter.Year, "year", "", "Academic year")
	cmd.Flags().StringVar(&filter.Semester, "semester", "", "Semester id")
	cmd.Flags().StringVar(&filter.Name, "name", "", "Exact subject name")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search names, codes and descriptions")
	return cmd
}

func (cli *commandLine) subjects(filter catalog.SubjectFilter) error {
	subjects, err := cli.catSvc.FilterSubjects(filter)
	if err != nil {
		return err
	}
	desc, err := cli.catSvc.Describe(filter)
	if err != nil {
		return err
	}
	var suggestions []string
	if len(subjects) == 0 {
		query := filter.Search
		if query == "" {
			query = filter.Name
		}
		if suggestions, err = cli.catSvc.Suggest(query, suggestLimit); err != nil {
			return err
		}
	}

	res := struct {
		Subjects    []catalog.Subject `json:"subjects" yaml:"subjects"`
		Suggestions []string          `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	}{Subjects: subjects, Suggestions: suggestions}

	return cli.pr.print(res, func(w io.Writer, clr *color.Color) {
		fmt.Fprintln(w, catalog.CountLabel(len(subjects))+desc)
		for _, subj := range subjects {
			fmt.Fprintf(w, "  %s %s %s\n", clr.Cyan(subj.Code), clr.Bold(subj.Name), clr.Grey(subjectDetails(subj)))
		}
		if len(suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
	})
}

func subjectDetails(subj catalog.Subject) string {
	details := subj.Program + ", Year " + subj.Year
	if subj.Semester != "" {
		details += ", Semester " + subj.Semester
	}
	return fmt.Sprintf("(%s) - %d materials", details, subj.MaterialsCount)
}

func (cli *commandLine) newSemestersCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "semesters",
		Short: "List semesters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters, err := cli.catSvc.SemestersForYear(year)
			if err != nil {
				return err
			}
			return cli.pr.print(semesters, func(w io.Writer, clr *color.Color) {
				for _, sem := range semesters {
					fmt.Fprintf(w, "%s %s (Year %d)\n", clr.Cyan(sem.ID), sem.Name, sem.Year)
				}
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Academic year (0 for all)")
	return cmd
}

func (cli *commandLine) newMaterialsCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "materials <subject-id>",
		Short: "List the materials of a subject",
		Long: `List the materials of a subject, optionally restricted to one category
(study-materials|ct1|ct2|final-exam).

Exit codes:
  0 - Success
  1 - Unknown subject or category`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.materials(args[0], category)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Material category")
	return cmd
}

func (cli *commandLine) materials(subjectID, category string) error {
	subj, err := cli.catSvc.GetSubject(subjectID)
	if err != nil {
		return err
	}
	materials, err := cli.catSvc.Materials(subj.ID, category)
	if err != nil {
		return err
	}

	return cli.pr.print(materials, func(w io.Writer, clr *color.Color) {
		fmt.Fprintf(w, "%s %s\n", clr.Cyan(subj.Code), clr.Bold(subj.Name))
		if len(materials) == 0 {
			fmt.Fprintln(w, "  No materials yet.")
			return
		}
		for _, mat := range materials {
			fmt.Fprintf(w, "  [%s] %s (%s, %s) %s\n", mat.Category, mat.Title, mat.Type, mat.Size, mat.UploadDate)
		}
	})
}
