package student

import (
	"context"
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/studylab/core"
)

type (
	ServiceDeps struct {
		Parser     *Parser
		Validate   *validator.Validate
		Translator ut.Translator
		Logger     core.Logger
		Auth       AuthProvider
	}

	// Service runs the sign-in and onboarding flow.
	Service struct {
		parser     *Parser
		validate   *validator.Validate
		translator ut.Translator
		logger     core.Logger
		auth       AuthProvider
	}
)

// NewService expects deps.Validate to have been set up with core.InitValidators and InitValidators.
func NewService(deps ServiceDeps) *Service {
	parser := deps.Parser
	if parser == nil {
		parser = defaultParser
	}
	return &Service{
		parser:     parser,
		validate:   deps.Validate,
		translator: deps.Translator,
		logger:     deps.Logger,
		auth:       deps.Auth,
	}
}

func (svc *Service) Parser() *Parser {
	return svc.parser
}

// SignIn validates a university email and returns the onboarding profile inferred from it.
func (svc *Service) SignIn(ctx context.Context, req SignInRequest) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	if err := req.Validate(svc.validate); err != nil {
		svc.logger.Debug("sign-in rejected", map[string]interface{}{"email": req.Email})
		return Profile{}, core.AsValidationError(err, svc.translator)
	}

	prof := svc.prefill(Profile{Email: req.Email})
	svc.logger.Info("signed in", map[string]interface{}{"email": prof.Email, "program": prof.Program})
	return prof, nil
}

// SignInWithProvider signs in through the identity provider.
// Provider accounts need not be university ones: the profile is then left for the student to fill.
func (svc *Service) SignInWithProvider(ctx context.Context) (Profile, error) {
	if svc.auth == nil {
		return Profile{}, ErrProviderUnavailable
	}
	authUsr, err := svc.auth.SignIn(ctx)
	if err != nil {
		return Profile{}, errors.Wrap(err, "provider sign-in")
	}
	if err := svc.validate.Struct(authUsr); err != nil {
		svc.logger.Warn("provider returned an invalid account", map[string]interface{}{"id": authUsr.ID})
		return Profile{}, errors.Wrap(core.AsValidationError(err, svc.translator), "provider account")
	}

	prof := svc.prefill(Profile{
		Name:     authUsr.Name,
		Email:    core.CleanString(authUsr.Email),
		PhotoURL: authUsr.PhotoURL,
	})
	svc.logger.Info("signed in with provider", map[string]interface{}{"email": prof.Email, "prefilled": prof.IsPrefilled()})
	return prof, nil
}

func (svc *Service) SignOut(ctx context.Context) error {
	if svc.auth == nil {
		return nil
	}
	return errors.Wrap(svc.auth.SignOut(ctx), "provider sign-out")
}

// Complete finishes onboarding with the program and academic year confirmed by the student.
func (svc *Service) Complete(ctx context.Context, prof Profile, req OnboardingRequest) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	if err := req.Validate(svc.validate); err != nil {
		return User{}, core.AsValidationError(err, svc.translator)
	}

	prog, _ := LookupProgram(req.Program)
	usr := User{
		ID:        uuid.New().String(),
		Name:      prof.Name,
		Email:     prof.Email,
		Program:   prog.Code,
		BatchYear: req.Year,
		PhotoURL:  prof.PhotoURL,
	}
	svc.logger.Info("onboarding complete", usr)
	return usr, nil
}

// prefill sets program, academic year and batch on `prof` when its email is a university one.
func (svc *Service) prefill(prof Profile) Profile {
	prof.Identity = svc.parser.ParseUniversityEmail(prof.Email)
	if !prof.Identity.IsValid {
		prof.Identity = InvalidIdentity
		return prof
	}

	if prof.Name == "" {
		prof.Name = svc.parser.StudentNameFromEmail(prof.Email)
	}
	prof.Program = strings.ToLower(prof.Identity.Program)
	prof.ProgramName = ProgramFullName(prof.Identity.Program)
	prof.AcademicYear = svc.parser.CalculateCurrentYear(prof.Identity.Year)
	prof.Batch = "20" + prof.Identity.Year
	return prof
}

// AcademicYearLabel formats a profile's year & batch, eg. "Year 3 • Batch '2023".
func AcademicYearLabel(prof Profile) string {
	if !prof.IsPrefilled() {
		return ""
	}
	return "Year " + strconv.Itoa(prof.AcademicYear) + " • Batch '" + prof.Batch
}
