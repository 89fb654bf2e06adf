package audit

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/sdkaudit/sdkaudit/internal/state"
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	ShowPositiveMessages bool         `mapstructure:"show_positive_messages"`
	SdkFolderMarker      string       `mapstructure:"sdk_folder_marker"`
	ForceLanguage        language.Tag `mapstructure:"force_language"`
	StateFile            string       `mapstructure:"state_file"`
	PlainOutput          bool         `mapstructure:"plain_output"`
}

// DefaultCommandConfiguration returns baseline configuration values for the
// audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ShowPositiveMessages: false,
		SdkFolderMarker:      DefaultSdkFolderMarker,
		ForceLanguage:        language.Und,
		StateFile:            state.DefaultStateFilePath(),
		PlainOutput:          false,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.SdkFolderMarker = strings.TrimSpace(configuration.SdkFolderMarker)
	if len(sanitized.SdkFolderMarker) == 0 {
		sanitized.SdkFolderMarker = DefaultSdkFolderMarker
	}

	sanitized.StateFile = strings.TrimSpace(configuration.StateFile)

	return sanitized
}
