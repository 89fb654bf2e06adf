package audit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sdkaudit/sdkaudit/internal/audit"
	"github.com/sdkaudit/sdkaudit/internal/localization"
	"github.com/sdkaudit/sdkaudit/internal/state"
)

const (
	primaryVolumeRootConstant    = `C:\`
	secondaryVolumeRootConstant  = `D:\`
	candidate64PathConstant      = `C:\Program Files\dotnet\`
	candidate32PathConstant      = `C:\Program Files (x86)\dotnet\`
	secondary32PathConstant      = `D:\Program Files (x86)\dotnet\`
	markerPrefixedPathConstant   = `C:\Program Files\dotnet-tools`
	unrelatedPathEntryConstant   = `C:\Windows\System32`
	searchPathSeparatorConstant  = ";"
	japaneseMessageProbeConstant = "64 ビット"
)

type countingStore struct {
	inner     *state.MemoryStore
	saveCalls int
}

func (store *countingStore) Load() (state.Record, bool, error) {
	return store.inner.Load()
}

func (store *countingStore) Save(record state.Record) error {
	store.saveCalls++
	return store.inner.Save(record)
}

type failingStore struct {
	loadError error
	saveError error
}

func (store failingStore) Load() (state.Record, bool, error) {
	return state.Record{}, false, store.loadError
}

func (store failingStore) Save(record state.Record) error {
	return store.saveError
}

func newTestService(resultStore state.ResultStore, settings audit.Settings) *audit.Service {
	return audit.NewService(localization.NewResolver(), resultStore, nil, settings, language.Und)
}

func TestInspectClassification(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name                   string
		searchPath             string
		volumeRoots            []string
		expectedClassification audit.Classification
		expectedPath32         string
		expectedPath64         string
	}{
		{
			name:                   "sdk64_only",
			searchPath:             candidate64PathConstant + searchPathSeparatorConstant + unrelatedPathEntryConstant,
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationSdk64Only,
			expectedPath64:         candidate64PathConstant,
		},
		{
			name:                   "sdk32_only",
			searchPath:             candidate32PathConstant,
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationSdk32Only,
			expectedPath32:         candidate32PathConstant,
		},
		{
			name:                   "both_correct_order",
			searchPath:             candidate64PathConstant + searchPathSeparatorConstant + candidate32PathConstant,
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationBothCorrectOrder,
			expectedPath32:         candidate32PathConstant,
			expectedPath64:         candidate64PathConstant,
		},
		{
			name:                   "both_wrong_order",
			searchPath:             candidate32PathConstant + searchPathSeparatorConstant + candidate64PathConstant,
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationBothWrongOrder,
			expectedPath32:         candidate32PathConstant,
			expectedPath64:         candidate64PathConstant,
		},
		{
			name:                   "not_found",
			searchPath:             unrelatedPathEntryConstant,
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationNotFound,
		},
		{
			name:                   "empty_search_path",
			searchPath:             "",
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationNotFound,
		},
		{
			name:                   "no_volume_roots",
			searchPath:             candidate64PathConstant,
			volumeRoots:            nil,
			expectedClassification: audit.ClassificationNotFound,
		},
		{
			name:                   "marker_prefixed_folder_does_not_match",
			searchPath:             markerPrefixedPathConstant,
			volumeRoots:            []string{primaryVolumeRootConstant},
			expectedClassification: audit.ClassificationNotFound,
		},
		{
			name:                   "cross_volume_wrong_order",
			searchPath:             secondary32PathConstant + searchPathSeparatorConstant + candidate64PathConstant,
			volumeRoots:            []string{primaryVolumeRootConstant, secondaryVolumeRootConstant},
			expectedClassification: audit.ClassificationBothWrongOrder,
			expectedPath32:         secondary32PathConstant,
			expectedPath64:         candidate64PathConstant,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			result := audit.Inspect(testCase.searchPath, testCase.volumeRoots, audit.DefaultSdkFolderMarker)

			require.Equal(subTest, testCase.expectedClassification, result.Classify())
			require.Equal(subTest, testCase.expectedPath32, result.Path32)
			require.Equal(subTest, testCase.expectedPath64, result.Path64)
		})
	}
}

func TestInspectSentinelDoesNotLeakIntoClassification(testInstance *testing.T) {
	testInstance.Parallel()

	result := audit.Inspect(candidate64PathConstant, []string{primaryVolumeRootConstant}, audit.DefaultSdkFolderMarker)

	require.True(testInstance, result.Has64First)
	require.Equal(testInstance, audit.ClassificationSdk64Only, result.Classify())
}

func TestServiceAuditIdempotence(testInstance *testing.T) {
	testInstance.Parallel()

	resultStore := &countingStore{inner: state.NewMemoryStore()}
	service := newTestService(resultStore, audit.Settings{})

	request := audit.AuditRequest{
		SearchPath:  candidate32PathConstant,
		VolumeRoots: []string{primaryVolumeRootConstant},
	}

	firstOutcome := service.Audit(request)
	require.Equal(testInstance, audit.ClassificationSdk32Only, firstOutcome.Classification)
	require.True(testInstance, firstOutcome.Displayed)
	require.NotEmpty(testInstance, firstOutcome.Message)
	require.Equal(testInstance, 1, resultStore.saveCalls)

	secondOutcome := service.Audit(request)
	require.Equal(testInstance, audit.ClassificationUnchanged, secondOutcome.Classification)
	require.False(testInstance, secondOutcome.Displayed)
	require.Empty(testInstance, secondOutcome.Message)
	require.Equal(testInstance, 1, resultStore.saveCalls)
}

func TestServiceAuditChangeDetection(testInstance *testing.T) {
	testInstance.Parallel()

	service := newTestService(state.NewMemoryStore(), audit.Settings{})

	firstOutcome := service.Audit(audit.AuditRequest{
		SearchPath:  candidate32PathConstant,
		VolumeRoots: []string{primaryVolumeRootConstant},
	})
	require.Equal(testInstance, audit.ClassificationSdk32Only, firstOutcome.Classification)

	secondOutcome := service.Audit(audit.AuditRequest{
		SearchPath:  candidate64PathConstant + searchPathSeparatorConstant + candidate32PathConstant,
		VolumeRoots: []string{primaryVolumeRootConstant},
	})
	require.Equal(testInstance, audit.ClassificationBothCorrectOrder, secondOutcome.Classification)
	require.NotEqual(testInstance, audit.ClassificationUnchanged, secondOutcome.Classification)
}

func TestServiceAuditSuppression(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name                   string
		searchPath             string
		showPositiveMessages   bool
		expectedClassification audit.Classification
		expectedDisplayed      bool
	}{
		{
			name:                   "positive_sdk64_suppressed",
			searchPath:             candidate64PathConstant,
			showPositiveMessages:   false,
			expectedClassification: audit.ClassificationSdk64Only,
			expectedDisplayed:      false,
		},
		{
			name:                   "positive_both_correct_suppressed",
			searchPath:             candidate64PathConstant + searchPathSeparatorConstant + candidate32PathConstant,
			showPositiveMessages:   false,
			expectedClassification: audit.ClassificationBothCorrectOrder,
			expectedDisplayed:      false,
		},
		{
			name:                   "positive_sdk64_shown_when_enabled",
			searchPath:             candidate64PathConstant,
			showPositiveMessages:   true,
			expectedClassification: audit.ClassificationSdk64Only,
			expectedDisplayed:      true,
		},
		{
			name:                   "negative_sdk32_always_shown",
			searchPath:             candidate32PathConstant,
			showPositiveMessages:   false,
			expectedClassification: audit.ClassificationSdk32Only,
			expectedDisplayed:      true,
		},
		{
			name:                   "partial_wrong_order_always_shown",
			searchPath:             candidate32PathConstant + searchPathSeparatorConstant + candidate64PathConstant,
			showPositiveMessages:   false,
			expectedClassification: audit.ClassificationBothWrongOrder,
			expectedDisplayed:      true,
		},
		{
			name:                   "negative_not_found_always_shown",
			searchPath:             unrelatedPathEntryConstant,
			showPositiveMessages:   false,
			expectedClassification: audit.ClassificationNotFound,
			expectedDisplayed:      true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			service := newTestService(state.NewMemoryStore(), audit.Settings{ShowPositiveMessages: testCase.showPositiveMessages})
			outcome := service.Audit(audit.AuditRequest{
				SearchPath:  testCase.searchPath,
				VolumeRoots: []string{primaryVolumeRootConstant},
			})

			require.Equal(subTest, testCase.expectedClassification, outcome.Classification)
			require.Equal(subTest, testCase.expectedDisplayed, outcome.Displayed)
			if !testCase.expectedDisplayed {
				require.Empty(subTest, outcome.Message)
			} else {
				require.NotEmpty(subTest, outcome.Message)
			}
		})
	}
}

func TestServiceAuditMessageComposition(testInstance *testing.T) {
	testInstance.Parallel()

	service := newTestService(state.NewMemoryStore(), audit.Settings{ShowPositiveMessages: true})

	searchPath := candidate64PathConstant + searchPathSeparatorConstant + unrelatedPathEntryConstant
	outcome := service.Audit(audit.AuditRequest{
		SearchPath:  searchPath,
		VolumeRoots: []string{primaryVolumeRootConstant},
	})

	require.Equal(testInstance, audit.ClassificationSdk64Only, outcome.Classification)
	require.Contains(testInstance, outcome.Message, candidate64PathConstant)
	require.Contains(testInstance, outcome.Message, fmt.Sprintf("<color=grey>%s</color>", searchPath))
}

func TestServiceAuditStoreFailuresAreNonFatal(testInstance *testing.T) {
	testInstance.Parallel()

	service := newTestService(failingStore{
		loadError: errors.New("store unavailable"),
		saveError: errors.New("store unavailable"),
	}, audit.Settings{})

	outcome := service.Audit(audit.AuditRequest{
		SearchPath:  unrelatedPathEntryConstant,
		VolumeRoots: []string{primaryVolumeRootConstant},
	})

	require.Equal(testInstance, audit.ClassificationNotFound, outcome.Classification)
	require.True(testInstance, outcome.Displayed)
	require.NotEmpty(testInstance, outcome.Message)
}

func TestServiceAuditForceLanguageIsOneShot(testInstance *testing.T) {
	testInstance.Parallel()

	service := newTestService(state.NewMemoryStore(), audit.Settings{})

	forcedOutcome := service.Audit(audit.AuditRequest{
		SearchPath:    candidate32PathConstant,
		VolumeRoots:   []string{primaryVolumeRootConstant},
		ForceLanguage: language.Japanese,
	})
	require.Contains(testInstance, forcedOutcome.Message, japaneseMessageProbeConstant)

	revertedOutcome := service.Audit(audit.AuditRequest{
		SearchPath:  unrelatedPathEntryConstant,
		VolumeRoots: []string{primaryVolumeRootConstant},
	})
	require.Equal(testInstance, audit.ClassificationNotFound, revertedOutcome.Classification)
	require.NotContains(testInstance, revertedOutcome.Message, japaneseMessageProbeConstant)
}

func TestClassifyTotality(testInstance *testing.T) {
	testInstance.Parallel()

	terminalClassifications := map[audit.Classification]struct{}{
		audit.ClassificationSdk64Only:        {},
		audit.ClassificationSdk32Only:        {},
		audit.ClassificationBothCorrectOrder: {},
		audit.ClassificationBothWrongOrder:   {},
		audit.ClassificationNotFound:         {},
	}

	for _, has32 := range []bool{false, true} {
		for _, has64 := range []bool{false, true} {
			for _, has64First := range []bool{false, true} {
				result := audit.AuditResult{Has32: has32, Has64: has64, Has64First: has64First}
				classification := result.Classify()
				require.Contains(testInstance, terminalClassifications, classification)
			}
		}
	}
}
