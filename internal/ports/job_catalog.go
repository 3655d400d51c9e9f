package ports

import "github.com/mspanwala8/pokestat/internal/domain"

// JobCatalog lists the job files available under a directory.
type JobCatalog interface {
	ListJobs(dir string) ([]domain.JobRef, error)
}
