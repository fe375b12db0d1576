package domain

import "strings"

// Field identifies one configuration field. The identifier doubles as the
// placeholder token ("[TARGET_SUBJECT]") and as the persisted JSON key.
type Field string

const (
	FieldClassificationLevel         Field = "CLASSIFICATION_LEVEL"
	FieldHandlingInstructions        Field = "HANDLING_INSTRUCTIONS"
	FieldCompartments                Field = "COMPARTMENTS"
	FieldMissionType                 Field = "MISSION_TYPE"
	FieldPriorityLevel               Field = "PRIORITY_LEVEL"
	FieldStakeholderType             Field = "STAKEHOLDER_TYPE"
	FieldTimeline                    Field = "TIMELINE"
	FieldAnalysisType                Field = "ANALYSIS_TYPE"
	FieldConfidenceRequired          Field = "CONFIDENCE_REQUIRED"
	FieldDomainFocus                 Field = "DOMAIN_FOCUS"
	FieldGeographicScope             Field = "GEOGRAPHIC_SCOPE"
	FieldTargetSubject               Field = "TARGET_SUBJECT"
	FieldReportType                  Field = "REPORT_TYPE"
	FieldDetailLevel                 Field = "DETAIL_LEVEL"
	FieldFormatPreference            Field = "FORMAT_PREFERENCE"
	FieldOpsecLevel                  Field = "OPSEC_LEVEL"
	FieldSourceProtectionRequired    Field = "SOURCE_PROTECTION_REQUIRED"
	FieldAlternativeAnalysisRequired Field = "ALTERNATIVE_ANALYSIS_REQUIRED"
	FieldConfidenceThreshold         Field = "CONFIDENCE_THRESHOLD"
	FieldEnableWebSearch             Field = "ENABLE_WEB_SEARCH"
	FieldWebSearchRealTime           Field = "WEB_SEARCH_REAL_TIME"
	FieldWebSearchMultiSource        Field = "WEB_SEARCH_MULTI_SOURCE"
	FieldWebSearchCurrentEvents      Field = "WEB_SEARCH_CURRENT_EVENTS"
	FieldThreatDescription           Field = "THREAT_DESCRIPTION"
)

// Placeholder returns the bracketed token that references f in a template body.
func (f Field) Placeholder() string {
	return "[" + string(f) + "]"
}

// Kind is the semantic type of a field.
type Kind string

const (
	KindEnum Kind = "enum"
	KindSet  Kind = "set"
	KindText Kind = "text"
	KindBool Kind = "bool"
	KindInt  Kind = "int"
)

// Section groups fields the way the operator form presents them.
type Section string

const (
	SectionClassification Section = "Classification"
	SectionMission        Section = "Mission Parameters"
	SectionAnalysis       Section = "Analysis Configuration"
	SectionContent        Section = "Content Parameters"
	SectionAdvanced       Section = "Advanced Options"
	SectionWebSearch      Section = "Web Search Integration"
)

// Sections lists every section in form order.
var Sections = []Section{
	SectionClassification,
	SectionMission,
	SectionAnalysis,
	SectionContent,
	SectionAdvanced,
	SectionWebSearch,
}

// FieldSpec describes a field: its kind, its label, and the vocabulary or
// range its values are drawn from.
type FieldSpec struct {
	Field   Field
	Kind    Kind
	Label   string
	Section Section
	Options []string // enum and set vocabularies
	Min     int      // int fields only
	Max     int
}

// HasOption reports whether v is part of the field's vocabulary.
func (s FieldSpec) HasOption(v string) bool {
	for _, o := range s.Options {
		if o == v {
			return true
		}
	}
	return false
}

// fieldSpecs is the closed field set in render order. Render order matters:
// substitution runs field by field in this sequence.
var fieldSpecs = []FieldSpec{
	{Field: FieldClassificationLevel, Kind: KindEnum, Label: "Classification Level", Section: SectionClassification,
		Options: []string{"UNCLASSIFIED", "CONFIDENTIAL", "SECRET", "TOP SECRET"}},
	{Field: FieldHandlingInstructions, Kind: KindSet, Label: "Handling Instructions", Section: SectionClassification,
		Options: []string{"NOFORN", "REL TO", "EYES ONLY", "ORCON", "LIMDIS"}},
	{Field: FieldCompartments, Kind: KindText, Label: "Compartments (SCI, SAP, etc.)", Section: SectionClassification},
	{Field: FieldMissionType, Kind: KindEnum, Label: "Mission Type", Section: SectionMission,
		Options: []string{"COLLECTION", "ANALYSIS", "ASSESSMENT", "WARNING"}},
	{Field: FieldPriorityLevel, Kind: KindEnum, Label: "Priority", Section: SectionMission,
		Options: []string{"ROUTINE", "PRIORITY", "IMMEDIATE", "FLASH", "CRITICAL"}},
	{Field: FieldStakeholderType, Kind: KindEnum, Label: "Stakeholder Type", Section: SectionMission,
		Options: []string{"EXECUTIVE", "OPERATIONAL", "ANALYTICAL", "FIELD", "PARTNER"}},
	{Field: FieldTimeline, Kind: KindEnum, Label: "Timeline", Section: SectionMission,
		Options: []string{"IMMEDIATE", "SHORT_TERM", "MEDIUM_TERM", "LONG_TERM"}},
	{Field: FieldAnalysisType, Kind: KindEnum, Label: "Analysis Type", Section: SectionAnalysis,
		Options: []string{"STRATEGIC", "TACTICAL", "TECHNICAL", "ECONOMIC"}},
	{Field: FieldConfidenceRequired, Kind: KindEnum, Label: "Confidence Required", Section: SectionAnalysis,
		Options: []string{"HIGH", "MODERATE", "LOW"}},
	{Field: FieldDomainFocus, Kind: KindSet, Label: "Domain Focus", Section: SectionAnalysis,
		Options: []string{"HUMINT", "SIGINT", "GEOINT", "OSINT", "CYBINT", "MASINT"}},
	{Field: FieldGeographicScope, Kind: KindText, Label: "Geographic Scope", Section: SectionAnalysis},
	{Field: FieldTargetSubject, Kind: KindText, Label: "Target/Subject", Section: SectionAnalysis},
	{Field: FieldReportType, Kind: KindEnum, Label: "Report Type", Section: SectionContent,
		Options: []string{"ASSESSMENT", "ESTIMATE", "SUMMARY", "WARNING", "TECHNICAL"}},
	{Field: FieldDetailLevel, Kind: KindEnum, Label: "Detail Level", Section: SectionContent,
		Options: []string{"EXECUTIVE", "OPERATIONAL", "DETAILED", "COMPREHENSIVE"}},
	{Field: FieldFormatPreference, Kind: KindEnum, Label: "Format Preference", Section: SectionContent,
		Options: []string{"NARRATIVE", "STRUCTURED", "DASHBOARD", "BRIEF"}},
	{Field: FieldOpsecLevel, Kind: KindInt, Label: "OPSEC Level", Section: SectionAdvanced, Min: 1, Max: 3},
	{Field: FieldSourceProtectionRequired, Kind: KindBool, Label: "Source Protection Required", Section: SectionAdvanced},
	{Field: FieldAlternativeAnalysisRequired, Kind: KindBool, Label: "Alternative Analysis Required", Section: SectionAdvanced},
	{Field: FieldConfidenceThreshold, Kind: KindInt, Label: "Confidence Threshold (%)", Section: SectionAdvanced, Min: 0, Max: 100},
	{Field: FieldEnableWebSearch, Kind: KindBool, Label: "Enable Web Search Tools", Section: SectionWebSearch},
	{Field: FieldWebSearchRealTime, Kind: KindBool, Label: "Real-time verification", Section: SectionWebSearch},
	{Field: FieldWebSearchMultiSource, Kind: KindBool, Label: "Multi-source corroboration", Section: SectionWebSearch},
	{Field: FieldWebSearchCurrentEvents, Kind: KindBool, Label: "Current events integration", Section: SectionWebSearch},
	{Field: FieldThreatDescription, Kind: KindText, Label: "Threat Description (for Crisis Response)", Section: SectionAnalysis},
}

var specByField = func() map[Field]FieldSpec {
	m := make(map[Field]FieldSpec, len(fieldSpecs))
	for _, s := range fieldSpecs {
		m[s.Field] = s
	}
	return m
}()

// Fields returns the closed field set in render order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// FieldsInSection returns the fields of one form section, in render order.
func FieldsInSection(section Section) []FieldSpec {
	var out []FieldSpec
	for _, s := range fieldSpecs {
		if s.Section == section {
			out = append(out, s)
		}
	}
	return out
}

// LookupField resolves a field by identifier. Matching ignores case so
// operator input such as "target_subject" resolves.
func LookupField(name string) (FieldSpec, bool) {
	if s, ok := specByField[Field(name)]; ok {
		return s, true
	}
	for _, s := range fieldSpecs {
		if strings.EqualFold(string(s.Field), name) {
			return s, true
		}
	}
	return FieldSpec{}, false
}

// SpecOf returns the spec for a known field. Unknown fields yield a zero spec.
func SpecOf(f Field) FieldSpec {
	return specByField[f]
}

// OpsecLabels maps the ordinal OPSEC level to its display label.
var OpsecLabels = map[int]string{
	1: "STANDARD",
	2: "ENHANCED",
	3: "MAXIMUM",
}

// OpsecLabel returns the label for level, falling back to STANDARD.
func OpsecLabel(level int) string {
	if l, ok := OpsecLabels[level]; ok {
		return l
	}
	return OpsecLabels[1]
}
