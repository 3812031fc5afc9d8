package student

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/studylab/core"
)

// User is a portal account once onboarding is complete.
type User struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email" yaml:"email"`
	Program   string `json:"program" yaml:"program"`
	BatchYear string `json:"batchYear" yaml:"batchYear"` // current academic year, "1".."4"
	PhotoURL  string `json:"photoURL,omitempty" yaml:"photoURL,omitempty"`
}

// AuthUser is the account returned by a sign-in provider.
type AuthUser struct {
	ID       string `json:"id" yaml:"id" validate:"notblank"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email" validate:"notblank,email"`
	PhotoURL string `json:"photoURL,omitempty" yaml:"photoURL,omitempty"`
}

// Profile is what onboarding knows about a student before they confirm their program and year.
// Identity, Program and AcademicYear are only set when the email is a university one.
type Profile struct {
	Name         string         `json:"name" yaml:"name"`
	Email        string         `json:"email" yaml:"email"`
	PhotoURL     string         `json:"photoURL,omitempty" yaml:"photoURL,omitempty"`
	Identity     ParsedIdentity `json:"identity" yaml:"identity"`
	Program      string         `json:"program,omitempty" yaml:"program,omitempty"` // lowercase id, eg. "bca"
	ProgramName  string         `json:"programName,omitempty" yaml:"programName,omitempty"`
	AcademicYear int            `json:"academicYear,omitempty" yaml:"academicYear,omitempty"`
	Batch        string         `json:"batch,omitempty" yaml:"batch,omitempty"` // eg. "2023"
}

// IsPrefilled reports whether program and year were inferred from the email.
func (p Profile) IsPrefilled() bool {
	return p.Identity.IsValid
}

// OnboardingRequest returns the request matching the prefilled values.
func (p Profile) OnboardingRequest() OnboardingRequest {
	req := OnboardingRequest{Program: p.Program}
	if p.AcademicYear > 0 {
		req.Year = strconv.Itoa(p.AcademicYear)
	}
	return req
}

type SignInRequest struct {
	Email string `json:"email" validate:"required,email,university_email"`
}

// Validate trims the email but keeps its case: the student id is case-sensitive and the domain must match exactly.
func (sr *SignInRequest) Validate(validate *validator.Validate) error {
	sr.Email = core.CleanString(sr.Email)
	return validate.Struct(sr)
}

// OnboardingRequest holds the program and academic year confirmed by the student.
type OnboardingRequest struct {
	Program string `json:"program" validate:"required,program"`
	Year    string `json:"year" validate:"required,academic_year"`
}

func (or *OnboardingRequest) Validate(validate *validator.Validate) error {
	or.Program = core.CleanString(or.Program, true /* lower */)
	or.Year = core.CleanString(or.Year)
	return validate.Struct(or)
}
