package catalog

import (
	"github.com/trezcool/studylab/core"
)

// Material types
const (
	TypePDF   = "pdf"
	TypeDoc   = "doc"
	TypePPT   = "ppt"
	TypeVideo = "video"
	TypeImage = "image"
)

// Material categories
const (
	CategoryStudyMaterials = "study-materials"
	CategoryCT1            = "ct1"
	CategoryCT2            = "ct2"
	CategoryFinalExam      = "final-exam"
)

// Categories in display order.
var Categories = []string{CategoryStudyMaterials, CategoryCT1, CategoryCT2, CategoryFinalExam}

type Semester struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Year int    `json:"year" yaml:"year"`
}

type Subject struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Code           string `json:"code" yaml:"code"`
	Program        string `json:"program" yaml:"program"`
	Year           string `json:"year" yaml:"year"`
	Semester       string `json:"semester,omitempty" yaml:"semester,omitempty"`
	Description    string `json:"description" yaml:"description"`
	Color          string `json:"color" yaml:"color"`
	Icon           string `json:"icon" yaml:"icon"`
	MaterialsCount int    `json:"materialsCount" yaml:"materialsCount"`
}

type Material struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Type        string   `json:"type" yaml:"type"`
	Category    string   `json:"category" yaml:"category"`
	SubjectID   string   `json:"subjectId" yaml:"subjectId"`
	UploadDate  string   `json:"uploadDate" yaml:"uploadDate"`
	Size        string   `json:"size" yaml:"size"`
	DownloadURL string   `json:"downloadUrl" yaml:"downloadUrl"`
	PreviewURL  string   `json:"previewUrl,omitempty" yaml:"previewUrl,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// SubjectFilter selects subjects; empty fields match everything.
type SubjectFilter struct {
	Program  string // case-insensitive
	Year     string
	Semester string
	Name     string // exact subject name
	Search   string // case-insensitive match on name, code or description
}

func (sf *SubjectFilter) IsEmpty() bool {
	return sf.Program == "" && sf.Year == "" && sf.Semester == "" && sf.Name == "" && sf.Search == ""
}

func (sf *SubjectFilter) Clean() {
	sf.Program = core.CleanString(sf.Program, true /* lower */)
	sf.Year = core.CleanString(sf.Year)
	sf.Semester = core.CleanString(sf.Semester)
	sf.Name = core.CleanString(sf.Name)
	sf.Search = core.CleanString(sf.Search, true /* lower */)
}

func isCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
