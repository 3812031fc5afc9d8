package student

import (
	"strconv"
	"testing"
	"time"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.October, 18, 12, 0, 0, 0, time.UTC) }
}

func TestParser_ParseUniversityEmail(t *testing.T) {
	p := NewParser(fixedClock(2025))

	tests := []struct {
		name  string
		email string
		want  ParsedIdentity
	}{
		{
			name: "bca", email: "bwubca23734@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "734", Program: "BCA", Year: "23", IsValid: true},
		},
		{
			name: "mca", email: "bwumca24789@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "789", Program: "MCA", Year: "24", IsValid: true},
		},
		{
			name: "btech", email: "bwubtech23712@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "712", Program: "BTECH", Year: "23", IsValid: true},
		},
		{
			name: "mtech", email: "bwumtech24756@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "756", Program: "MTECH", Year: "24", IsValid: true},
		},
		{
			name: "mixed case local part", email: "BWUBca23734@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "734", Program: "BCA", Year: "23", IsValid: true},
		},
		{
			name: "student id keeps original case", email: "bwubca23AB9@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "AB9", Program: "BCA", Year: "23", IsValid: true},
		},
		{
			name: "non-ASCII letter before program", email: "bwu\u212Abca23734@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "734", Program: "BCA", Year: "23", IsValid: true},
		},
		{
			name: "non-ASCII upper case letter before program", email: "BWU\u0130BCA23AB9@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "AB9", Program: "BCA", Year: "23", IsValid: true},
		},
		{name: "no program", email: "invalid@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "too short", email: "bwubca23@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "exactly 8 chars, no student id", email: "bwumca24@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "one char after program", email: "bwuxbca2@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "wrong domain", email: "bwubca23734@gmail.com", want: InvalidIdentity},
		{name: "other university", email: "student@university.edu", want: InvalidIdentity},
		{name: "empty", email: "", want: InvalidIdentity},
		{name: "no at sign", email: "bwubca23734brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "upper case domain", email: "bwubca23734@BRAINWAREUNIVERSITY.AC.IN", want: InvalidIdentity},
		{name: "missing prefix", email: "xyzbca23734@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "non-digit year", email: "bwubca2x734@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "signed year", email: "bwubca+5734@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "year too old", email: "bwubca14734@brainwareuniversity.ac.in", want: InvalidIdentity},
		{name: "year in future", email: "bwubca27734@brainwareuniversity.ac.in", want: InvalidIdentity},
		{
			name: "domain after first at", email: "bwubca23734@x@brainwareuniversity.ac.in",
			want: ParsedIdentity{StudentID: "734", Program: "BCA", Year: "23", IsValid: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ParseUniversityEmail(tt.email); got != tt.want {
				t.Errorf("ParseUniversityEmail(%q) = %+v, want %+v", tt.email, got, tt.want)
			}
		})
	}
}

func TestParser_ParseUniversityEmail_programOrder(t *testing.T) {
	p := NewParser(fixedClock(2025))

	// "mtech" appears first in the string but "bca" comes first in the detection order
	got := p.ParseUniversityEmail("bwumtech24bca23111@brainwareuniversity.ac.in")
	want := ParsedIdentity{StudentID: "111", Program: "BCA", Year: "23", IsValid: true}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// first hit stops the scan even when extraction fails afterwards
	if got := p.ParseUniversityEmail("bwumca24789bca@brainwareuniversity.ac.in"); got.IsValid {
		t.Errorf("got %+v, want invalid", got)
	}
}

func TestParser_ParseUniversityEmail_yearWindow(t *testing.T) {
	for _, year := range []int{2020, 2025, 2031, 2088} {
		p := NewParser(fixedClock(year))
		curr := year % 100

		tests := []struct {
			admission int
			wantValid bool
		}{
			{admission: curr - 11, wantValid: false},
			{admission: curr - 10, wantValid: true},
			{admission: curr, wantValid: true},
			{admission: curr + 1, wantValid: true},
			{admission: curr + 2, wantValid: false},
		}
		for _, tt := range tests {
			email := "bwubca" + strconv.Itoa(tt.admission) + "734" + UniversityDomain
			t.Run(strconv.Itoa(year)+"/"+strconv.Itoa(tt.admission), func(t *testing.T) {
				if got := p.ParseUniversityEmail(email); got.IsValid != tt.wantValid {
					t.Errorf("ParseUniversityEmail(%q).IsValid = %v, want %v", email, got.IsValid, tt.wantValid)
				}
			})
		}
	}
}

func TestParser_ParseUniversityEmail_invalidIsSentinel(t *testing.T) {
	p := NewParser(fixedClock(2025))
	for _, email := range []string{
		"", "@", "@brainwareuniversity.ac.in", "bwu@brainwareuniversity.ac.in",
		"bwubca@brainwareuniversity.ac.in", "bwubca2@brainwareuniversity.ac.in",
		"bwubca23@brainwareuniversity.ac.in", "bwubca99734@brainwareuniversity.ac.in",
		"bwubcaé3734@brainwareuniversity.ac.in", "bwu\xffbca2\xff734@brainwareuniversity.ac.in",
	} {
		got := p.ParseUniversityEmail(email)
		if got.IsValid {
			continue
		}
		if got != InvalidIdentity {
			t.Errorf("ParseUniversityEmail(%q) = %+v, want the invalid sentinel", email, got)
		}
	}
}

func TestParser_ParseUniversityEmail_idempotent(t *testing.T) {
	p := NewParser(fixedClock(2025))
	email := "bwubtech23712@brainwareuniversity.ac.in"
	if first, second := p.ParseUniversityEmail(email), p.ParseUniversityEmail(email); first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestParseUniversityEmail_packageClock(t *testing.T) {
	nowFunc = fixedClock(2040)
	defer func() { nowFunc = time.Now }()

	if got := ParseUniversityEmail("bwubca23734@brainwareuniversity.ac.in"); got.IsValid {
		t.Errorf("admission 23 should be outside the window in 2040, got %+v", got)
	}
	if got := ParseUniversityEmail("bwubca35734@brainwareuniversity.ac.in"); !got.IsValid {
		t.Errorf("admission 35 should be valid in 2040, got %+v", got)
	}
}

func TestParser_CalculateCurrentYear(t *testing.T) {
	p := NewParser(fixedClock(2025))

	tests := []struct {
		admission string
		want      int
	}{
		{admission: "25", want: 1},
		{admission: "24", want: 2},
		{admission: "23", want: 3},
		{admission: "22", want: 4},
		{admission: "21", want: 4},
		{admission: "15", want: 4},
		{admission: "26", want: 1},
		{admission: "99", want: 1},
		{admission: "-3", want: 4},
		{admission: "", want: 1},
		{admission: "ab", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.admission, func(t *testing.T) {
			if got := p.CalculateCurrentYear(tt.admission); got != tt.want {
				t.Errorf("CalculateCurrentYear(%q) = %d, want %d", tt.admission, got, tt.want)
			}
		})
	}
}

func TestParser_CalculateCurrentYear_monotonic(t *testing.T) {
	p := NewParser(fixedClock(2025))
	prev := p.CalculateCurrentYear("-50")
	for admission := -49; admission <= 150; admission++ {
		got := p.CalculateCurrentYear(strconv.Itoa(admission))
		if got < 1 || got > 4 {
			t.Fatalf("CalculateCurrentYear(%d) = %d, out of [1,4]", admission, got)
		}
		if got > prev {
			t.Fatalf("CalculateCurrentYear(%d) = %d > %d for an earlier admission", admission, got, prev)
		}
		prev = got
	}
}

func TestParser_StudentNameFromEmail(t *testing.T) {
	p := NewParser(fixedClock(2025))

	tests := []struct {
		email string
		want  string
	}{
		{email: "bwubca23734@brainwareuniversity.ac.in", want: "Student 734"},
		{email: "bwumtech24756@brainwareuniversity.ac.in", want: "Student 756"},
		{email: "bwubca23@brainwareuniversity.ac.in", want: "Student"},
		{email: "student@university.edu", want: "Student"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := p.StudentNameFromEmail(tt.email)
			if got != tt.want {
				t.Errorf("StudentNameFromEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
			if (got == "Student") == p.ParseUniversityEmail(tt.email).IsValid {
				t.Errorf("StudentNameFromEmail(%q) = %q disagrees with ParseUniversityEmail", tt.email, got)
			}
		})
	}
}

func TestAsciiLower(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "BWUBCA23AB9", want: "bwubca23ab9"},
		{in: "bwu\u212Abca", want: "bwu\u212Abca"},
		{in: "BWU\u0130BCA", want: "bwu\u0130bca"},
		{in: "bwu\xffBCA", want: "bwu\xffbca"},
	}
	for _, tt := range tests {
		got := asciiLower(tt.in)
		if got != tt.want {
			t.Errorf("asciiLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if len(got) != len(tt.in) {
			t.Errorf("len(asciiLower(%q)) = %d, want %d", tt.in, len(got), len(tt.in))
		}
	}
}
