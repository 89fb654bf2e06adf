package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	environmentKeySeparatorOldConstant          = "."
	environmentKeySeparatorNewConstant          = "_"
	configurationListSeparatorConstant          = ","
	configurationReadErrorTemplateConstant      = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant = "failed to parse configuration: %w"
)

// ConfigurationLoader wraps Viper to load structured configuration files and
// environment overrides into typed configuration structs.
type ConfigurationLoader struct {
	configurationName      string
	configurationType      string
	environmentPrefix      string
	searchPaths            []string
	environmentKeyReplacer *strings.Replacer
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches known paths and
// respects an environment prefix.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	duplicatedSearchPaths := make([]string, len(searchPaths))
	copy(duplicatedSearchPaths, searchPaths)

	return &ConfigurationLoader{
		configurationName:      configurationName,
		configurationType:      configurationType,
		environmentPrefix:      environmentPrefix,
		searchPaths:            duplicatedSearchPaths,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// LoadConfiguration populates targetConfiguration using configuration files,
// defaults, and environment variables. Configuration strings destined for
// language.Tag fields are parsed as BCP 47 tags during decoding.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)
	viperInstance.SetConfigType(loader.configurationType)

	for _, searchPath := range loader.searchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	if loader.environmentKeyReplacer != nil {
		viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	}
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	readError := viperInstance.MergeInConfig()
	if readError != nil {
		if _, isNotFound := readError.(viper.ConfigFileNotFoundError); !isNotFound {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	unmarshalError := viperInstance.Unmarshal(targetConfiguration, viper.DecodeHook(configurationDecodeHook()))
	if unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

func configurationDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		languageTagDecodeHook(),
		mapstructure.StringToSliceHookFunc(configurationListSeparatorConstant),
	)
}

// languageTagDecodeHook converts configuration strings into language.Tag
// values. Empty or unparsable strings decode to language.Und so a bad locale
// never fails configuration loading.
func languageTagDecodeHook() mapstructure.DecodeHookFuncType {
	languageTagType := reflect.TypeOf(language.Tag{})

	return func(sourceType reflect.Type, targetType reflect.Type, sourceData any) (any, error) {
		if sourceType.Kind() != reflect.String || targetType != languageTagType {
			return sourceData, nil
		}

		rawTag := strings.TrimSpace(sourceData.(string))
		if len(rawTag) == 0 {
			return language.Und, nil
		}

		parsedTag, parseError := language.Parse(rawTag)
		if parseError != nil {
			return language.Und, nil
		}
		return parsedTag, nil
	}
}
