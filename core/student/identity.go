package student

import (
	"strconv"
	"strings"
	"time"
)

const (
	UniversityDomain = "@brainwareuniversity.ac.in"
	localPartPrefix  = "bwu"
	localPartMinLen  = 8

	// admission years accepted relative to the current two-digit year
	yearWindowPast   = 10
	yearWindowFuture = 1

	// academic years are 1-based and capped at 4
	firstAcademicYear = 1
	lastAcademicYear  = 4
)

var (
	nowFunc = time.Now // mockable

	defaultParser = &Parser{}
)

// ParsedIdentity is the result of parsing a university email.
// A valid identity has all fields set; an invalid one is always InvalidIdentity.
type ParsedIdentity struct {
	StudentID string `json:"studentId" yaml:"studentId"`
	Program   string `json:"program" yaml:"program"`
	Year      string `json:"year" yaml:"year"`
	IsValid   bool   `json:"isValid" yaml:"isValid"`
}

// InvalidIdentity is returned for any email that is not a recognized university address.
var InvalidIdentity = ParsedIdentity{}

// Parser parses university emails against a clock.
// The zero value uses the package clock.
type Parser struct {
	now func() time.Time
}

// NewParser returns a Parser reading the current date from `now`; nil means time.Now.
func NewParser(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

func (p *Parser) clock() time.Time {
	if p == nil || p.now == nil {
		return nowFunc()
	}
	return p.now()
}

// currentTwoDigitYear returns the last two digits of the current calendar year.
func (p *Parser) currentTwoDigitYear() int {
	return p.clock().Year() % 100
}

// ParseUniversityEmail extracts program, admission year and student id from a university email,
// eg. "bwubca23734@brainwareuniversity.ac.in" -> {734 BCA 23 true}.
// It never panics; every failure yields InvalidIdentity.
func (p *Parser) ParseUniversityEmail(email string) (id ParsedIdentity) {
	defer func() {
		if r := recover(); r != nil {
			id = InvalidIdentity
		}
	}()

	if !strings.Contains(email, UniversityDomain) {
		return InvalidIdentity
	}

	localPart := email[:strings.Index(email, "@")]
	if len(localPart) < localPartMinLen {
		return InvalidIdentity
	}

	lower := asciiLower(localPart)
	if !strings.HasPrefix(lower, localPartPrefix) {
		return InvalidIdentity
	}

	program, year, studentID := extract(localPart, lower)
	if program == "" || year == "" || studentID == "" {
		return InvalidIdentity
	}

	yearNum, ok := parseTwoDigits(year)
	if !ok {
		return InvalidIdentity
	}
	curr := p.currentTwoDigitYear()
	if yearNum < curr-yearWindowPast || yearNum > curr+yearWindowFuture {
		return InvalidIdentity
	}

	return ParsedIdentity{
		StudentID: studentID,
		Program:   program,
		Year:      year,
		IsValid:   true,
	}
}

// extract scans the program codes in detection order; the first code found in the local part wins,
// even when the year or the student id cannot be extracted after it.
func extract(localPart, lower string) (program, year, studentID string) {
	for _, prog := range Programs {
		idx := strings.Index(lower, prog.ID)
		if idx < 0 {
			continue
		}
		program = prog.Code

		yearStart := idx + len(prog.ID)
		if yearStart+2 <= len(localPart) {
			year = localPart[yearStart : yearStart+2]

			if idStart := yearStart + 2; idStart < len(localPart) {
				studentID = localPart[idStart:]
			}
		}
		break
	}
	return program, year, studentID
}

// asciiLower lowers ASCII letters only, so that `s` and its result share byte offsets.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// parseTwoDigits parses exactly two ASCII digits.
func parseTwoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// CalculateCurrentYear returns the 1-based academic year of a student admitted in `admissionYear` (2 digits).
// Unparsable years default to 1; the result is clamped to [1, 4].
func (p *Parser) CalculateCurrentYear(admissionYear string) int {
	admission, err := strconv.Atoi(strings.TrimSpace(admissionYear))
	if err != nil {
		return firstAcademicYear
	}

	diff := p.currentTwoDigitYear() - admission
	switch {
	case diff < 0:
		return firstAcademicYear
	case diff > lastAcademicYear-1:
		return lastAcademicYear
	default:
		return diff + 1
	}
}

// StudentNameFromEmail returns a display label for the email's owner.
// No name data exists, so valid emails give "Student <id>" and anything else "Student".
func (p *Parser) StudentNameFromEmail(email string) string {
	if id := p.ParseUniversityEmail(email); id.IsValid {
		return "Student " + id.StudentID
	}
	return "Student"
}

// ParseUniversityEmail parses `email` against the current date. See Parser.ParseUniversityEmail.
func ParseUniversityEmail(email string) ParsedIdentity {
	return defaultParser.ParseUniversityEmail(email)
}

// CalculateCurrentYear see Parser.CalculateCurrentYear.
func CalculateCurrentYear(admissionYear string) int {
	return defaultParser.CalculateCurrentYear(admissionYear)
}

// StudentNameFromEmail see Parser.StudentNameFromEmail.
func StudentNameFromEmail(email string) string {
	return defaultParser.StudentNameFromEmail(email)
}
