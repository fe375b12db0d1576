package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Configuration is the complete set of field values an operator has
// selected. Every field always holds a value.
type Configuration struct {
	ClassificationLevel         string   `json:"CLASSIFICATION_LEVEL" yaml:"CLASSIFICATION_LEVEL"`
	HandlingInstructions        []string `json:"HANDLING_INSTRUCTIONS" yaml:"HANDLING_INSTRUCTIONS"`
	Compartments                string   `json:"COMPARTMENTS" yaml:"COMPARTMENTS"`
	MissionType                 string   `json:"MISSION_TYPE" yaml:"MISSION_TYPE"`
	PriorityLevel               string   `json:"PRIORITY_LEVEL" yaml:"PRIORITY_LEVEL"`
	StakeholderType             string   `json:"STAKEHOLDER_TYPE" yaml:"STAKEHOLDER_TYPE"`
	Timeline                    string   `json:"TIMELINE" yaml:"TIMELINE"`
	AnalysisType                string   `json:"ANALYSIS_TYPE" yaml:"ANALYSIS_TYPE"`
	ConfidenceRequired          string   `json:"CONFIDENCE_REQUIRED" yaml:"CONFIDENCE_REQUIRED"`
	DomainFocus                 []string `json:"DOMAIN_FOCUS" yaml:"DOMAIN_FOCUS"`
	GeographicScope             string   `json:"GEOGRAPHIC_SCOPE" yaml:"GEOGRAPHIC_SCOPE"`
	TargetSubject               string   `json:"TARGET_SUBJECT" yaml:"TARGET_SUBJECT"`
	ReportType                  string   `json:"REPORT_TYPE" yaml:"REPORT_TYPE"`
	DetailLevel                 string   `json:"DETAIL_LEVEL" yaml:"DETAIL_LEVEL"`
	FormatPreference            string   `json:"FORMAT_PREFERENCE" yaml:"FORMAT_PREFERENCE"`
	OpsecLevel                  int      `json:"OPSEC_LEVEL" yaml:"OPSEC_LEVEL"`
	SourceProtectionRequired    bool     `json:"SOURCE_PROTECTION_REQUIRED" yaml:"SOURCE_PROTECTION_REQUIRED"`
	AlternativeAnalysisRequired bool     `json:"ALTERNATIVE_ANALYSIS_REQUIRED" yaml:"ALTERNATIVE_ANALYSIS_REQUIRED"`
	ConfidenceThreshold         int      `json:"CONFIDENCE_THRESHOLD" yaml:"CONFIDENCE_THRESHOLD"`
	EnableWebSearch             bool     `json:"ENABLE_WEB_SEARCH" yaml:"ENABLE_WEB_SEARCH"`
	WebSearchRealTime           bool     `json:"WEB_SEARCH_REAL_TIME" yaml:"WEB_SEARCH_REAL_TIME"`
	WebSearchMultiSource        bool     `json:"WEB_SEARCH_MULTI_SOURCE" yaml:"WEB_SEARCH_MULTI_SOURCE"`
	WebSearchCurrentEvents      bool     `json:"WEB_SEARCH_CURRENT_EVENTS" yaml:"WEB_SEARCH_CURRENT_EVENTS"`
	ThreatDescription           string   `json:"THREAT_DESCRIPTION" yaml:"THREAT_DESCRIPTION"`
}

// Default returns a configuration with every field at its documented default.
func Default() Configuration {
	return Configuration{
		ClassificationLevel:  "UNCLASSIFIED",
		HandlingInstructions: []string{},
		MissionType:          "ANALYSIS",
		PriorityLevel:        "ROUTINE",
		StakeholderType:      "ANALYTICAL",
		Timeline:             "SHORT_TERM",
		AnalysisType:         "STRATEGIC",
		ConfidenceRequired:   "MODERATE",
		DomainFocus:          []string{},
		ReportType:           "ASSESSMENT",
		DetailLevel:          "OPERATIONAL",
		FormatPreference:     "NARRATIVE",
		OpsecLevel:           1,
		ConfidenceThreshold:  70,
	}
}

// Clone returns a deep copy. Snapshots stored in history or user templates
// must never share set slices with the live configuration.
func (c Configuration) Clone() Configuration {
	out := c
	out.HandlingInstructions = append([]string{}, c.HandlingInstructions...)
	out.DomainFocus = append([]string{}, c.DomainFocus...)
	return out
}

// Get returns the typed value of f. Unknown fields yield a zero Value.
func (c *Configuration) Get(f Field) Value {
	switch SpecOf(f).Kind {
	case KindSet:
		return SetValue(*c.setSlot(f)...)
	case KindBool:
		return BoolValue(*c.boolSlot(f))
	case KindInt:
		return IntValue(*c.intSlot(f))
	case KindEnum:
		return EnumValue(*c.stringSlot(f))
	case KindText:
		return TextValue(*c.stringSlot(f))
	}
	return Value{}
}

// Display returns the display text of f as substituted into a template.
func (c *Configuration) Display(f Field) string {
	return c.Get(f).Display()
}

// SetScalar replaces a single enum, text, bool or int field. The slot
// matching the field's kind is read from v; set fields and unknown fields
// are left untouched. No vocabulary check happens here.
func (c *Configuration) SetScalar(f Field, v Value) {
	switch SpecOf(f).Kind {
	case KindEnum, KindText:
		*c.stringSlot(f) = v.Str
	case KindBool:
		*c.boolSlot(f) = v.Bool
	case KindInt:
		*c.intSlot(f) = v.Int
	}
}

// ReplaceSet replaces a set-valued field wholesale, dropping duplicates
// while keeping first-seen order.
func (c *Configuration) ReplaceSet(f Field, members []string) {
	if SpecOf(f).Kind != KindSet {
		return
	}
	out := make([]string, 0, len(members))
	for _, m := range members {
		if !contains(out, m) {
			out = append(out, m)
		}
	}
	*c.setSlot(f) = out
}

// ToggleSetMember adds value to, or removes it from, a set-valued field.
// Adding a present member and removing an absent one are no-ops.
func (c *Configuration) ToggleSetMember(f Field, value string, include bool) {
	if SpecOf(f).Kind != KindSet {
		return
	}
	slot := c.setSlot(f)
	present := contains(*slot, value)
	switch {
	case include && !present:
		*slot = append(append([]string{}, *slot...), value)
	case !include && present:
		out := make([]string, 0, len(*slot)-1)
		for _, m := range *slot {
			if m != value {
				out = append(out, m)
			}
		}
		*slot = out
	}
}

// Set applies v to f whatever its kind. Set-valued fields are replaced
// wholesale.
func (c *Configuration) Set(f Field, v Value) {
	if SpecOf(f).Kind == KindSet {
		c.ReplaceSet(f, v.Set)
		return
	}
	c.SetScalar(f, v)
}

// Normalize replaces values that fall outside a field's vocabulary or
// range with the field default, and drops unknown or duplicate set members.
func (c *Configuration) Normalize() {
	def := Default()
	for _, spec := range fieldSpecs {
		switch spec.Kind {
		case KindEnum:
			if slot := c.stringSlot(spec.Field); !spec.HasOption(*slot) {
				*slot = *def.stringSlot(spec.Field)
			}
		case KindSet:
			slot := c.setSlot(spec.Field)
			kept := make([]string, 0, len(*slot))
			for _, m := range *slot {
				if spec.HasOption(m) && !contains(kept, m) {
					kept = append(kept, m)
				}
			}
			*slot = kept
		case KindInt:
			if slot := c.intSlot(spec.Field); *slot < spec.Min || *slot > spec.Max {
				*slot = *def.intSlot(spec.Field)
			}
		}
	}
}

// UnmarshalJSON decodes on top of the defaults so fields missing from older
// snapshots still carry a value, then normalizes.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	type plain Configuration
	decoded := plain(Default())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	c.adopt(Configuration(decoded))
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for template interchange files.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	type plain Configuration
	decoded := plain(Default())
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	c.adopt(Configuration(decoded))
	return nil
}

func (c *Configuration) adopt(decoded Configuration) {
	*c = decoded
	if c.HandlingInstructions == nil {
		c.HandlingInstructions = []string{}
	}
	if c.DomainFocus == nil {
		c.DomainFocus = []string{}
	}
	c.Normalize()
}

func (c *Configuration) stringSlot(f Field) *string {
	switch f {
	case FieldClassificationLevel:
		return &c.ClassificationLevel
	case FieldCompartments:
		return &c.Compartments
	case FieldMissionType:
		return &c.MissionType
	case FieldPriorityLevel:
		return &c.PriorityLevel
	case FieldStakeholderType:
		return &c.StakeholderType
	case FieldTimeline:
		return &c.Timeline
	case FieldAnalysisType:
		return &c.AnalysisType
	case FieldConfidenceRequired:
		return &c.ConfidenceRequired
	case FieldGeographicScope:
		return &c.GeographicScope
	case FieldTargetSubject:
		return &c.TargetSubject
	case FieldReportType:
		return &c.ReportType
	case FieldDetailLevel:
		return &c.DetailLevel
	case FieldFormatPreference:
		return &c.FormatPreference
	case FieldThreatDescription:
		return &c.ThreatDescription
	}
	panic("domain: no string slot for field " + string(f))
}

func (c *Configuration) setSlot(f Field) *[]string {
	switch f {
	case FieldHandlingInstructions:
		return &c.HandlingInstructions
	case FieldDomainFocus:
		return &c.DomainFocus
	}
	panic("domain: no set slot for field " + string(f))
}

func (c *Configuration) boolSlot(f Field) *bool {
	switch f {
	case FieldSourceProtectionRequired:
		return &c.SourceProtectionRequired
	case FieldAlternativeAnalysisRequired:
		return &c.AlternativeAnalysisRequired
	case FieldEnableWebSearch:
		return &c.EnableWebSearch
	case FieldWebSearchRealTime:
		return &c.WebSearchRealTime
	case FieldWebSearchMultiSource:
		return &c.WebSearchMultiSource
	case FieldWebSearchCurrentEvents:
		return &c.WebSearchCurrentEvents
	}
	panic("domain: no bool slot for field " + string(f))
}

func (c *Configuration) intSlot(f Field) *int {
	switch f {
	case FieldOpsecLevel:
		return &c.OpsecLevel
	case FieldConfidenceThreshold:
		return &c.ConfidenceThreshold
	}
	panic("domain: no int slot for field " + string(f))
}
