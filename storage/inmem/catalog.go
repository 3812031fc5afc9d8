package inmemdb

import (
	"github.com/trezcool/studylab/core/catalog"
)

type catalogRepository struct {
	db *catalogTables
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{db: db.catalog}
}

func (repo *catalogRepository) QuerySubjects() ([]catalog.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subjects := make([]catalog.Subject, len(repo.db.subjects))
	copy(subjects, repo.db.subjects)
	return subjects, nil
}

func (repo *catalogRepository) getSubject(id string) (catalog.Subject, bool) {
	for _, subj := range repo.db.subjects {
		if subj.ID == id {
			return subj, true
		}
	}
	return catalog.Subject{}, false
}

func (repo *catalogRepository) GetSubject(id string) (catalog.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if subj, ok := repo.getSubject(id); ok {
		return subj, nil
	}
	return catalog.Subject{}, catalog.ErrNotFound
}

func (repo *catalogRepository) QueryMaterials(subjectID string) ([]catalog.Material, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if _, ok := repo.getSubject(subjectID); !ok {
		return nil, catalog.ErrNotFound
	}
	materials := make([]catalog.Material, 0)
	for _, mat := range repo.db.materials {
		if mat.SubjectID == subjectID {
			mat.Tags = append([]string(nil), mat.Tags...)
			materials = append(materials, mat)
		}
	}
	return materials, nil
}

func (repo *catalogRepository) QuerySemesters() ([]catalog.Semester, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	semesters := make([]catalog.Semester, len(repo.db.semesters))
	copy(semesters, repo.db.semesters)
	return semesters, nil
}
