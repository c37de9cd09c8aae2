package health

// BundleVerifier checks that a consistent artifact bundle is loadable.
type BundleVerifier interface {
	Verify() error
}
