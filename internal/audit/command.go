package audit

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/sdkaudit/sdkaudit/internal/console"
	"github.com/sdkaudit/sdkaudit/internal/localization"
	"github.com/sdkaudit/sdkaudit/internal/platform"
	"github.com/sdkaudit/sdkaudit/internal/state"
)

const (
	commandNameConstant             = "audit"
	commandShortDescriptionConstant = "Check the executable search path for 32-bit and 64-bit SDK installations"
	commandLongDescriptionConstant  = "audit inspects the executable search path for 32-bit and 64-bit SDK installations, " +
		"verifies the 64-bit entry precedes the 32-bit entry, and reports a localized diagnostic when the outcome changed."

	flagShowPositiveName        = "show-positive"
	flagShowPositiveDescription = "Display positive outcomes instead of suppressing them."
	flagLanguageName            = "language"
	flagLanguageDescription     = "Force the message catalog language for this run (BCP 47 tag)."
	flagStateFileName           = "state-file"
	flagStateFileDescription    = "Path of the session state file; empty keeps state in memory only."
	flagMarkerName              = "marker"
	flagMarkerDescription       = "SDK installation subfolder probed under each Program Files directory."
	flagSearchPathName          = "path"
	flagSearchPathDescription   = "Audit the given search path string instead of the process environment."
	flagVolumeRootName          = "root"
	flagVolumeRootDescription   = "Volume root to probe; repeatable. Defaults to the mounted drives."
	flagPlainName               = "plain"
	flagPlainDescription        = "Strip inline color markup from the diagnostic output."
	flagDebugName               = "debug"
	flagDebugDescription        = "Log audit internals at debug level."

	hostGateSkipMessageConstant       = "audit skipped: host platform is not the audit target"
	invalidLanguageTagMessageConstant = "ignoring unparsable language tag"
	auditCompletedMessageConstant     = "audit completed"
	flagProvidedMessageConstant       = "flag provided"
	logFieldClassificationConstant    = "classification"
	logFieldDisplayedConstant         = "displayed"
	logFieldLanguageTagConstant       = "language_tag"
	logFieldFlagNameConstant          = "flag_name"
	logFieldFlagValueConstant         = "flag_value"
	diagnosticOutputTemplateConstant  = "%s\n"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable
// collaborators so tests can run without a real host environment.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	SearchPathProvider    func() string
	VolumeRootsProvider   func() []string
	TargetPlatformCheck   func() bool
}

// Build constructs the cobra command for the SDK search-path audit.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Bool(flagShowPositiveName, false, flagShowPositiveDescription)
	command.Flags().String(flagLanguageName, "", flagLanguageDescription)
	command.Flags().String(flagStateFileName, "", flagStateFileDescription)
	command.Flags().String(flagMarkerName, "", flagMarkerDescription)
	command.Flags().String(flagSearchPathName, "", flagSearchPathDescription)
	command.Flags().StringArray(flagVolumeRootName, nil, flagVolumeRootDescription)
	command.Flags().Bool(flagPlainName, false, flagPlainDescription)
	command.Flags().Bool(flagDebugName, false, flagDebugDescription)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()
	configuration := builder.resolveConfiguration(command, logger)

	debugFlag, _ := command.Flags().GetBool(flagDebugName)
	if debugFlag {
		command.Flags().Visit(func(visitedFlag *pflag.Flag) {
			logger.Debug(
				flagProvidedMessageConstant,
				zap.String(logFieldFlagNameConstant, visitedFlag.Name),
				zap.String(logFieldFlagValueConstant, visitedFlag.Value.String()),
			)
		})
	}

	searchPathOverride, _ := command.Flags().GetString(flagSearchPathName)
	if !builder.resolveTargetPlatformCheck()() && len(searchPathOverride) == 0 {
		logger.Debug(hostGateSkipMessageConstant)
		return nil
	}

	searchPath := searchPathOverride
	if len(searchPath) == 0 {
		searchPath = builder.resolveSearchPathProvider()()
	}

	volumeRoots, _ := command.Flags().GetStringArray(flagVolumeRootName)
	if len(volumeRoots) == 0 {
		volumeRoots = builder.resolveVolumeRootsProvider()()
	}

	service := NewService(
		localization.NewResolver(),
		resolveResultStore(configuration.StateFile),
		logger,
		Settings{
			ShowPositiveMessages: configuration.ShowPositiveMessages,
			SdkFolderMarker:      configuration.SdkFolderMarker,
		},
		localization.DetectTag(),
	)

	outcome := service.Audit(AuditRequest{
		SearchPath:    searchPath,
		VolumeRoots:   volumeRoots,
		ForceLanguage: configuration.ForceLanguage,
	})

	logger.Debug(
		auditCompletedMessageConstant,
		zap.String(logFieldClassificationConstant, string(outcome.Classification)),
		zap.Bool(logFieldDisplayedConstant, outcome.Displayed),
	)

	if outcome.Displayed {
		renderer := console.NewRenderer(configuration.PlainOutput)
		fmt.Fprintf(command.OutOrStdout(), diagnosticOutputTemplateConstant, renderer.Render(outcome.Message))
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command, logger *zap.Logger) CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration = configuration.sanitize()

	if command.Flags().Changed(flagShowPositiveName) {
		configuration.ShowPositiveMessages, _ = command.Flags().GetBool(flagShowPositiveName)
	}
	if command.Flags().Changed(flagMarkerName) {
		markerFlag, _ := command.Flags().GetString(flagMarkerName)
		configuration.SdkFolderMarker = strings.TrimSpace(markerFlag)
	}
	if command.Flags().Changed(flagStateFileName) {
		configuration.StateFile, _ = command.Flags().GetString(flagStateFileName)
		configuration.StateFile = strings.TrimSpace(configuration.StateFile)
	}
	if command.Flags().Changed(flagPlainName) {
		configuration.PlainOutput, _ = command.Flags().GetBool(flagPlainName)
	}
	if command.Flags().Changed(flagLanguageName) {
		languageFlag, _ := command.Flags().GetString(flagLanguageName)
		parsedTag, parseError := language.Parse(strings.TrimSpace(languageFlag))
		if parseError != nil {
			logger.Warn(invalidLanguageTagMessageConstant, zap.String(logFieldLanguageTagConstant, languageFlag))
		} else {
			configuration.ForceLanguage = parsedTag
		}
	}

	return configuration.sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveSearchPathProvider() func() string {
	if builder.SearchPathProvider != nil {
		return builder.SearchPathProvider
	}
	return platform.SearchPath
}

func (builder *CommandBuilder) resolveVolumeRootsProvider() func() []string {
	if builder.VolumeRootsProvider != nil {
		return builder.VolumeRootsProvider
	}
	return platform.VolumeRoots
}

func (builder *CommandBuilder) resolveTargetPlatformCheck() func() bool {
	if builder.TargetPlatformCheck != nil {
		return builder.TargetPlatformCheck
	}
	return func() bool { return platform.IsWindows }
}

func resolveResultStore(stateFilePath string) state.ResultStore {
	if len(stateFilePath) == 0 {
		return state.NewMemoryStore()
	}
	return state.NewFileStore(stateFilePath)
}
