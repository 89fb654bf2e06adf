//go:build !windows

package platform

// VolumeRoots returns no roots on platforms without drive letters.
func VolumeRoots() []string {
	return nil
}
