package sources

import (
	"github.com/kerbaras/library/pkg/data"
)

// CSV reads a seed file through an in-memory DuckDB instance.
type CSV struct {
	path string
}

func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

func (c *CSV) Name() string {
	return c.path
}

func (c *CSV) Load() ([]*data.Item, error) {
	db, err := data.InitDuckDB()
	if err != nil {
		return nil, err
	}
	repo := data.NewDuckDBRepository(db)
	defer repo.Close()

	return repo.LoadItemsCSV(c.path)
}
