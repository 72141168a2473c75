package ports

// InitResult lists the files an initializer created or left alone,
// relative to the root.
type InitResult struct {
	Written []string
	Skipped []string
}

// ConfigInitializer writes a starter configuration into root. Existing files
// are kept unless force is set.
type ConfigInitializer interface {
	Init(root string, force bool) (InitResult, error)
}
