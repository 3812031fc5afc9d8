package inmemdb

import (
	"strconv"

	"github.com/trezcool/studylab/core/catalog"
)

// two semesters per academic year
func seedSemesters() []catalog.Semester {
	semesters := make([]catalog.Semester, 0, 8)
	for i := 1; i <= 8; i++ {
		id := strconv.Itoa(i)
		semesters = append(semesters, catalog.Semester{ID: id, Name: "Semester " + id, Year: (i + 1) / 2})
	}
	return semesters
}

func seedSubjects() []catalog.Subject {
	return []catalog.Subject{
		{
			ID: "1", Name: "Data Structures", Code: "CS201", Program: "BCA", Year: "2", Semester: "3",
			Description: "Learn fundamental data structures and algorithms",
			Color:       "bg-blue-500", Icon: "Database", MaterialsCount: 24,
		},
		{
			ID: "2", Name: "Web Development", Code: "CS301", Program: "BCA", Year: "3", Semester: "5",
			Description: "Frontend and backend web development",
			Color:       "bg-green-500", Icon: "Globe", MaterialsCount: 31,
		},
		{
			ID: "3", Name: "Database Management", Code: "CS202", Program: "BCA", Year: "2", Semester: "4",
			Description: "SQL, NoSQL, and database design principles",
			Color:       "bg-purple-500", Icon: "Server", MaterialsCount: 18,
		},
		{
			ID: "4", Name: "Software Engineering", Code: "CS401", Program: "MCA", Year: "1", Semester: "1",
			Description: "Software development lifecycle and methodologies",
			Color:       "bg-orange-500", Icon: "Code", MaterialsCount: 27,
		},
		{
			ID: "5", Name: "Machine Learning", Code: "CS501", Program: "MCA", Year: "2", Semester: "3",
			Description: "Introduction to ML algorithms and applications",
			Color:       "bg-pink-500", Icon: "Brain", MaterialsCount: 22,
		},
		{
			ID: "6", Name: "Computer Networks", Code: "CS203", Program: "BCA", Year: "2", Semester: "3",
			Description: "Network protocols, security, and architecture",
			Color:       "bg-indigo-500", Icon: "Network", MaterialsCount: 19,
		},
		{
			ID: "7", Name: "Programming Fundamentals", Code: "CS101", Program: "BCA", Year: "1", Semester: "1",
			Description: "Introduction to programming concepts and logic",
			Color:       "bg-blue-400", Icon: "Code", MaterialsCount: 32,
		},
		{
			ID: "8", Name: "Object-Oriented Programming", Code: "CS102", Program: "BCA", Year: "1", Semester: "2",
			Description: "Learn OOP concepts with Java programming",
			Color:       "bg-red-500", Icon: "FileCode", MaterialsCount: 28,
		},
	}
}

func seedMaterials() []catalog.Material {
	return []catalog.Material{
		{
			ID: "1", Title: "Introduction to Arrays and Linked Lists", Type: catalog.TypePDF,
			Category: catalog.CategoryStudyMaterials, SubjectID: "1", UploadDate: "2024-01-15", Size: "2.4 MB",
			DownloadURL: "#", PreviewURL: "#", Tags: []string{"arrays", "linked-lists", "basics"},
		},
		{
			ID: "2", Title: "CT1 Sample Questions - Data Structures", Type: catalog.TypePDF,
			Category: catalog.CategoryCT1, SubjectID: "1", UploadDate: "2024-01-20", Size: "1.8 MB",
			DownloadURL: "#", PreviewURL: "#", Tags: []string{"ct1", "sample-questions", "practice"},
		},
		{
			ID: "3", Title: "Final Exam Pattern Analysis", Type: catalog.TypeDoc,
			Category: catalog.CategoryFinalExam, SubjectID: "1", UploadDate: "2024-01-25", Size: "950 KB",
			DownloadURL: "#", PreviewURL: "#", Tags: []string{"final-exam", "pattern", "analysis"},
		},
		{
			ID: "4", Title: "HTML & CSS Fundamentals", Type: catalog.TypePDF,
			Category: catalog.CategoryStudyMaterials, SubjectID: "2", UploadDate: "2024-01-10", Size: "3.2 MB",
			DownloadURL: "#", PreviewURL: "#", Tags: []string{"html", "css", "frontend"},
		},
		{
			ID: "5", Title: "JavaScript ES6+ Features", Type: catalog.TypePDF,
			Category: catalog.CategoryStudyMaterials, SubjectID: "2", UploadDate: "2024-01-12", Size: "2.7 MB",
			DownloadURL: "#", PreviewURL: "#", Tags: []string{"javascript", "es6", "modern-js"},
		},
	}
}
