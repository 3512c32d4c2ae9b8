//go:build !linux && !darwin && !windows

package platform

// Notify reports ErrUnsupported.
func Notify(string, string, Options) error {
	return ErrUnsupported
}
