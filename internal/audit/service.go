package audit

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/sdkaudit/sdkaudit/internal/localization"
	"github.com/sdkaudit/sdkaudit/internal/state"
)

const (
	// DefaultSdkFolderMarker identifies the SDK installation subfolder probed
	// under each Program Files directory.
	DefaultSdkFolderMarker = "dotnet"

	programFiles64FolderConstant = "Program Files"
	programFiles32FolderConstant = "Program Files (x86)"
	windowsPathSeparatorConstant = `\`

	priorResultUnavailableMessageConstant = "prior audit result unavailable, treating as empty"
	persistResultFailureMessageConstant   = "unable to persist audit result"
)

// CatalogResolver selects the message catalog for a language tag.
type CatalogResolver interface {
	Resolve(requestedTag language.Tag) localization.MessageCatalog
}

// Service performs the SDK search-path audit: candidate derivation, presence
// and ordering classification, change detection against the stored prior
// result, and localized message composition.
type Service struct {
	catalogResolver CatalogResolver
	resultStore     state.ResultStore
	logger          *zap.Logger
	settings        Settings
	activeLanguage  language.Tag
}

// NewService constructs a Service. The active language is resolved once here
// and reused for every call that carries no force override.
func NewService(catalogResolver CatalogResolver, resultStore state.ResultStore, logger *zap.Logger, settings Settings, activeLanguage language.Tag) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(strings.TrimSpace(settings.SdkFolderMarker)) == 0 {
		settings.SdkFolderMarker = DefaultSdkFolderMarker
	}
	return &Service{
		catalogResolver: catalogResolver,
		resultStore:     resultStore,
		logger:          logger,
		settings:        settings,
		activeLanguage:  activeLanguage,
	}
}

// Audit runs one audit pass. It never fails: malformed or empty inputs
// classify as NotFound, and store failures degrade to the empty prior result
// so a diagnostic is shown rather than silently suppressed.
func (service *Service) Audit(request AuditRequest) AuditOutcome {
	currentResult := Inspect(request.SearchPath, request.VolumeRoots, service.settings.SdkFolderMarker)

	previousResult := service.loadPreviousResult()
	if currentResult == previousResult {
		return AuditOutcome{Classification: ClassificationUnchanged, Result: currentResult}
	}

	service.persistResult(currentResult)

	classification := currentResult.Classify()
	displayed := !classification.Positive() || service.settings.ShowPositiveMessages

	outcome := AuditOutcome{
		Classification: classification,
		Result:         currentResult,
		Displayed:      displayed,
	}
	if displayed {
		catalog := service.resolveCatalog(request.ForceLanguage)
		outcome.Message = composeMessage(classification, currentResult, request.SearchPath, catalog)
	}
	return outcome
}

// Inspect derives the audit result from the raw search path and volume roots.
// Scanning short-circuits once both bitnesses are found; the first matching
// root per bitness wins and the two bitnesses may match on different roots.
func Inspect(searchPath string, volumeRoots []string, sdkFolderMarker string) AuditResult {
	result := AuditResult{Has64First: true}

	for _, volumeRoot := range volumeRoots {
		if !result.Has32 {
			candidate32 := candidatePath(volumeRoot, programFiles32FolderConstant, sdkFolderMarker)
			if strings.Contains(searchPath, candidate32) {
				result.Has32 = true
				result.Path32 = candidate32
			}
		}

		if !result.Has64 {
			candidate64 := candidatePath(volumeRoot, programFiles64FolderConstant, sdkFolderMarker)
			if strings.Contains(searchPath, candidate64) {
				result.Has64 = true
				result.Path64 = candidate64
			}
		}

		if result.Has32 && result.Has64 {
			break
		}
	}

	// The ordering check reasons over substring positions in the full search
	// path, not over per-volume discovery order.
	if result.Has32 && result.Has64 {
		result.Has64First = strings.Index(searchPath, result.Path64) < strings.Index(searchPath, result.Path32)
	}

	return result
}

// candidatePath joins with explicit Windows separators so the audit stays
// pure and host-independent. The host gate guarantees the conventions apply.
// The trailing separator keeps folder names that merely start with the marker
// from matching.
func candidatePath(volumeRoot string, programFilesFolder string, sdkFolderMarker string) string {
	trimmedRoot := strings.TrimRight(volumeRoot, windowsPathSeparatorConstant)
	return trimmedRoot + windowsPathSeparatorConstant + programFilesFolder + windowsPathSeparatorConstant + sdkFolderMarker + windowsPathSeparatorConstant
}

func (service *Service) loadPreviousResult() AuditResult {
	record, found, loadError := service.resultStore.Load()
	if loadError != nil {
		service.logger.Debug(priorResultUnavailableMessageConstant, zap.Error(loadError))
		return AuditResult{}
	}
	if !found {
		return AuditResult{}
	}
	return resultFromRecord(record)
}

func (service *Service) persistResult(result AuditResult) {
	if saveError := service.resultStore.Save(recordFromResult(result)); saveError != nil {
		service.logger.Debug(persistResultFailureMessageConstant, zap.Error(saveError))
	}
}

func (service *Service) resolveCatalog(forcedLanguage language.Tag) localization.MessageCatalog {
	requestedTag := forcedLanguage
	if requestedTag == language.Und {
		requestedTag = service.activeLanguage
	}
	return service.catalogResolver.Resolve(requestedTag)
}

func composeMessage(classification Classification, result AuditResult, searchPath string, catalog localization.MessageCatalog) string {
	var outcomeTemplate string
	var relevantPath string

	switch classification {
	case ClassificationSdk64Only:
		outcomeTemplate = catalog.Sdk64Only
		relevantPath = result.Path64
	case ClassificationSdk32Only:
		outcomeTemplate = catalog.Sdk32Only
		relevantPath = result.Path32
	case ClassificationBothCorrectOrder:
		outcomeTemplate = catalog.BothCorrectOrder
		relevantPath = result.Path64
	case ClassificationBothWrongOrder:
		outcomeTemplate = catalog.BothWrongOrder
		relevantPath = result.Path64
	default:
		outcomeTemplate = catalog.NotFound
	}

	return outcomeTemplate + relevantPath + catalog.Explanation + fmt.Sprintf(catalog.SystemPath, searchPath)
}

func resultFromRecord(record state.Record) AuditResult {
	return AuditResult{
		Has32:      record.Has32,
		Has64:      record.Has64,
		Has64First: record.Has64First,
		Path32:     record.Path32,
		Path64:     record.Path64,
	}
}

func recordFromResult(result AuditResult) state.Record {
	return state.Record{
		Has32:      result.Has32,
		Has64:      result.Has64,
		Has64First: result.Has64First,
		Path32:     result.Path32,
		Path64:     result.Path64,
	}
}
