package domain

// JobRef is a lightweight reference to a job file on disk.
type JobRef struct {
	Name string
	Path string
}
