package inmemdb

import (
	"sync"

	"github.com/trezcool/studylab/core/catalog"
)

type (
	DB struct {
		catalog *catalogTables
	}

	catalogTables struct {
		sync.RWMutex
		semesters []catalog.Semester
		subjects  []catalog.Subject
		materials []catalog.Material
	}
)

// Open returns a DB seeded with the built-in catalog.
func Open() (*DB, error) {
	db := &DB{
		catalog: &catalogTables{
			semesters: seedSemesters(),
			subjects:  seedSubjects(),
			materials: seedMaterials(),
		},
	}
	return db, nil
}
