package fsops

// Deleter abstracts filesystem delete operations
// Enables swapping a fake in tests to prove declined and dry runs never delete
type Deleter interface {
	Remove(path string) error
	RemoveAll(path string) error
}
