//go:build windows

package platform

import "golang.org/x/sys/windows"

const (
	driveLetterAlphabetConstant = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	driveRootSuffixConstant     = `:\`
)

// VolumeRoots enumerates the roots of all mounted logical drives.
func VolumeRoots() []string {
	bitmask, enumerationError := windows.GetLogicalDrives()
	if enumerationError != nil {
		return nil
	}

	roots := make([]string, 0, len(driveLetterAlphabetConstant))
	for letterIndex := 0; letterIndex < len(driveLetterAlphabetConstant); letterIndex++ {
		if bitmask&(1<<uint(letterIndex)) == 0 {
			continue
		}
		roots = append(roots, string(driveLetterAlphabetConstant[letterIndex])+driveRootSuffixConstant)
	}
	return roots
}
