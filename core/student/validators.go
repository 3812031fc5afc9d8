package student

import (
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/studylab/core"
)

var (
	universityEmailTag  = "university_email"
	universityEmailText = "please enter a valid Brainware University email address (e.g., bwubca23734@brainwareuniversity.ac.in)"

	programTag  = "program"
	programText = "invalid program"

	academicYearTag  = "academic_year"
	academicYearText = "invalid academic year"
)

// InitValidators registers the student validators. Emails are checked against `parser`'s clock.
func InitValidators(validate *validator.Validate, translator ut.Translator, parser *Parser) {
	_ = validate.RegisterValidation(universityEmailTag, universityEmailValidation(parser))
	core.RegisterCustomTranslation(validate, translator, universityEmailTag, universityEmailText)

	_ = validate.RegisterValidation(programTag, programValidation)
	core.RegisterCustomTranslation(validate, translator, programTag, programText)

	_ = validate.RegisterValidation(academicYearTag, academicYearValidation)
	core.RegisterCustomTranslation(validate, translator, academicYearTag, academicYearText)
}

// Custom Validators

// universityEmailValidation only accepts emails that parse into a valid identity.
func universityEmailValidation(parser *Parser) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return parser.ParseUniversityEmail(fl.Field().String()).IsValid
	}
}

// programValidation checks that the program is a known program id or code.
func programValidation(fl validator.FieldLevel) bool {
	_, ok := LookupProgram(fl.Field().String())
	return ok
}

// academicYearValidation checks that the year is one of 1..4.
func academicYearValidation(fl validator.FieldLevel) bool {
	year, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return year >= firstAcademicYear && year <= lastAcademicYear
}
