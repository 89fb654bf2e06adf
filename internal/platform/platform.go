package platform

import (
	"os"
	"runtime"
)

const (
	windowsOperatingSystemConstant      = "windows"
	searchPathVariableConstant          = "PATH"
	languageEnvironmentVariableConstant = "LANG"
)

// IsWindows reports whether the current operating system is Windows.
// The SDK path audit only applies to Windows path conventions.
var IsWindows = runtime.GOOS == windowsOperatingSystemConstant

// SearchPath returns the raw executable search path of the current process.
func SearchPath() string {
	return os.Getenv(searchPathVariableConstant)
}
