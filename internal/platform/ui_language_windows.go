//go:build windows

package platform

import (
	"os"

	"golang.org/x/sys/windows"
)

// UILanguage returns the user's preferred Windows UI language as a BCP 47
// string, falling back to the LANG environment variable when the lookup
// fails.
func UILanguage() string {
	preferredLanguages, lookupError := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if lookupError == nil && len(preferredLanguages) > 0 && len(preferredLanguages[0]) > 0 {
		return preferredLanguages[0]
	}
	return os.Getenv(languageEnvironmentVariableConstant)
}
