package audit

import "golang.org/x/text/language"

// Classification enumerates the mutually exclusive outcomes of one audit pass.
type Classification string

// Supported classification values, in the priority order they are assigned.
const (
	ClassificationUnchanged        Classification = "unchanged"
	ClassificationSdk64Only        Classification = "sdk64_only"
	ClassificationSdk32Only        Classification = "sdk32_only"
	ClassificationBothCorrectOrder Classification = "both_correct_order"
	ClassificationBothWrongOrder   Classification = "both_wrong_order"
	ClassificationNotFound         Classification = "not_found"
)

// Positive reports whether the classification is a healthy outcome whose
// display may be suppressed by configuration.
func (classification Classification) Positive() bool {
	return classification == ClassificationSdk64Only || classification == ClassificationBothCorrectOrder
}

// AuditResult captures one audit pass over the search path. Results are
// comparable and compared field-by-field for change detection. Has64First is
// meaningful only when both Has32 and Has64 are true; otherwise it holds the
// don't-care sentinel value true and never participates in classification.
type AuditResult struct {
	Has32      bool
	Has64      bool
	Has64First bool
	Path32     string
	Path64     string
}

// Classify maps the result to exactly one terminal classification.
func (result AuditResult) Classify() Classification {
	switch {
	case result.Has64 && !result.Has32:
		return ClassificationSdk64Only
	case !result.Has64 && result.Has32:
		return ClassificationSdk32Only
	case result.Has64 && result.Has32 && result.Has64First:
		return ClassificationBothCorrectOrder
	case result.Has64 && result.Has32:
		return ClassificationBothWrongOrder
	default:
		return ClassificationNotFound
	}
}

// AuditRequest carries the inputs of one audit call. ForceLanguage overrides
// the active locale's message catalog for this call only; the zero tag
// (language.Und) means no override.
type AuditRequest struct {
	SearchPath    string
	VolumeRoots   []string
	ForceLanguage language.Tag
}

// AuditOutcome is the observable product of one audit call. Message is empty
// whenever Displayed is false.
type AuditOutcome struct {
	Classification Classification
	Result         AuditResult
	Message        string
	Displayed      bool
}

// Settings holds the auditor's configuration knobs.
type Settings struct {
	ShowPositiveMessages bool
	SdkFolderMarker      string
}
