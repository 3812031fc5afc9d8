package student

import "strings"

// Program codes
const (
	ProgramBCA   = "BCA"
	ProgramMCA   = "MCA"
	ProgramBTech = "BTECH"
	ProgramMTech = "MTECH"
)

// Program is an academic program offered by the university.
type Program struct {
	ID       string `json:"id" yaml:"id"`     // lowercase code, as found in emails
	Code     string `json:"code" yaml:"code"` // uppercase canonical code
	Name     string `json:"name" yaml:"name"`
	FullName string `json:"fullName" yaml:"fullName"`
	Years    []int  `json:"years" yaml:"years"`
}

var (
	// Programs in email detection order.
	Programs = []Program{
		{ID: "bca", Code: ProgramBCA, Name: "BCA", FullName: "Bachelor of Computer Applications", Years: []int{1, 2, 3}},
		{ID: "mca", Code: ProgramMCA, Name: "MCA", FullName: "Master of Computer Applications", Years: []int{1, 2}},
		{ID: "btech", Code: ProgramBTech, Name: "B.Tech", FullName: "Bachelor of Technology", Years: []int{1, 2, 3, 4}},
		{ID: "mtech", Code: ProgramMTech, Name: "M.Tech", FullName: "Master of Technology", Years: []int{1, 2}},
	}

	programFullNames = map[string]string{
		ProgramBCA:   "Bachelor of Computer Applications",
		ProgramMCA:   "Master of Computer Applications",
		ProgramBTech: "Bachelor of Technology",
		ProgramMTech: "Master of Technology",
	}
)

// ProgramFullName returns the full name of a program code, eg. "BCA" -> "Bachelor of Computer Applications".
// Unknown codes are returned unchanged.
func ProgramFullName(code string) string {
	if name, ok := programFullNames[code]; ok {
		return name
	}
	return code
}

// LookupProgram finds a program by id or code, case-insensitively.
func LookupProgram(s string) (Program, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, prog := range Programs {
		if prog.ID == s {
			return prog, true
		}
	}
	return Program{}, false
}
