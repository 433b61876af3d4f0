package port

type InputResolver interface {
	Resolve(root, pattern string) ([]string, error)
}

type LineReader interface {
	ReadLines(path string) ([]string, error)
}

type FileWriter interface {
	WriteFile(path, content string) error
}
