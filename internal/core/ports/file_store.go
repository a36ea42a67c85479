package ports

/*
FileStore gives access to named files in the project directory.
This is a driven port implemented by a repository adapter.
*/
type FileStore interface {
	// Read returns the full content of the named file.
	Read(name string) (string, error)
	// Write replaces the named file, creating it if needed.
	Write(name, content string) error
	// Create writes the named file only if it does not exist yet.
	Create(name, content string) error
	// Exists reports whether the named file is present.
	Exists(name string) bool
}
