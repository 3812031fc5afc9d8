package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/studylab/core"
)

var (
	// errors
	ErrNotFound = errors.New("subject not found")

	suggestMinRatio = .5
)

type (
	Repository interface {
		QuerySubjects() ([]Subject, error)
		GetSubject(id string) (Subject, error)
		// QueryMaterials returns the materials of a subject; the subject must exist.
		QueryMaterials(subjectID string) ([]Material, error)
		QuerySemesters() ([]Semester, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FilterSubjects applies AND operation on the set SubjectFilter fields, keeping the catalog order.
func (svc *Service) FilterSubjects(filter SubjectFilter) ([]Subject, error) {
	filter.Clean()
	subjects, err := svc.repo.QuerySubjects()
	if err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	if filter.IsEmpty() {
		return subjects, nil
	}

	res := make([]Subject, 0, len(subjects))
	for _, subj := range subjects {
		if matches(subj, filter) {
			res = append(res, subj)
		}
	}
	return res, nil
}

func matches(subj Subject, filter SubjectFilter) bool {
	if filter.Program != "" && strings.ToLower(subj.Program) != filter.Program {
		return false
	}
	if filter.Year != "" && subj.Year != filter.Year {
		return false
	}
	if filter.Semester != "" && subj.Semester != filter.Semester {
		return false
	}
	if filter.Name != "" && subj.Name != filter.Name {
		return false
	}
	if filter.Search != "" &&
		!strings.Contains(strings.ToLower(subj.Name), filter.Search) &&
		!strings.Contains(strings.ToLower(subj.Code), filter.Search) &&
		!strings.Contains(strings.ToLower(subj.Description), filter.Search) {
		return false
	}
	return true
}

func (svc *Service) GetSubject(id string) (Subject, error) {
	return svc.repo.GetSubject(core.CleanString(id))
}

// SemestersForYear returns the semesters of an academic year, or all of them when year is 0.
func (svc *Service) SemestersForYear(year int) ([]Semester, error) {
	semesters, err := svc.repo.QuerySemesters()
	if err != nil {
		return nil, errors.Wrap(err, "querying semesters")
	}
	if year == 0 {
		return semesters, nil
	}
	res := make([]Semester, 0, 2)
	for _, sem := range semesters {
		if sem.Year == year {
			res = append(res, sem)
		}
	}
	return res, nil
}

// Materials returns the materials of a subject, optionally restricted to one category.
func (svc *Service) Materials(subjectID, category string) ([]Material, error) {
	category = core.CleanString(category, true /* lower */)
	if category != "" && !isCategory(category) {
		return nil, core.NewValidationError(nil, core.FieldError{
			Field: "category",
			Error: "must be one of " + strings.Join(Categories, ", "),
		})
	}

	materials, err := svc.repo.QueryMaterials(core.CleanString(subjectID))
	if err != nil {
		return nil, errors.Wrapf(err, "querying materials of subject %q", subjectID)
	}
	if category == "" {
		return materials, nil
	}
	res := make([]Material, 0, len(materials))
	for _, mat := range materials {
		if mat.Category == category {
			res = append(res, mat)
		}
	}
	return res, nil
}

// Suggest returns up to `limit` subject names that look like `query`, best match first.
func (svc *Service) Suggest(query string, limit int) ([]string, error) {
	query = core.CleanString(query, true /* lower */)
	if query == "" || limit <= 0 {
		return nil, nil
	}
	subjects, err := svc.repo.QuerySubjects()
	if err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}

	type scored struct {
		name  string
		ratio float64
	}
	candidates := make([]scored, 0, len(subjects))
	q := strings.Split(query, "")
	for _, subj := range subjects {
		ratio := difflib.NewMatcher(q, strings.Split(strings.ToLower(subj.Name), "")).Ratio()
		if ratio >= suggestMinRatio {
			candidates = append(candidates, scored{name: subj.Name, ratio: ratio})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ratio != candidates[j].ratio {
			return candidates[i].ratio > candidates[j].ratio
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}
	return names, nil
}

// Describe returns a label for the year & semester filters, eg. " for Year 2, Semester 3".
func (svc *Service) Describe(filter SubjectFilter) (string, error) {
	filter.Clean()
	var semName string
	if filter.Semester != "" {
		semesters, err := svc.repo.QuerySemesters()
		if err != nil {
			return "", errors.Wrap(err, "querying semesters")
		}
		for _, sem := range semesters {
			if sem.ID == filter.Semester {
				semName = sem.Name
				break
			}
		}
	}

	// unknown semesters are left out of the label
	switch {
	case filter.Year != "" && semName != "":
		return " for Year " + filter.Year + ", " + semName, nil
	case semName != "":
		return " for " + semName, nil
	case filter.Year != "":
		return " for Year " + filter.Year, nil
	default:
		return "", nil
	}
}

// CountLabel formats a subject count, eg. "Showing 3 subjects".
func CountLabel(n int) string {
	label := "Showing " + strconv.Itoa(n) + " subject"
	if n != 1 {
		label += "s"
	}
	return label
}
