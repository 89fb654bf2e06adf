//go:build !windows

package platform

import "os"

// UILanguage returns the raw locale string from the LANG environment variable
// on platforms without a native UI-language lookup.
func UILanguage() string {
	return os.Getenv(languageEnvironmentVariableConstant)
}
