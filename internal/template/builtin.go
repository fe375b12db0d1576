package template

import "github.com/alexanderramin/raiden/internal/domain"

// Keys of the embedded templates.
const (
	KeyBasicStrategicAnalysis = "basicStrategicAnalysis"
	KeyIntelligenceOperation  = "intelligenceOperation"
	KeyEconomicVulnerability  = "economicVulnerability"
	KeyCrisisResponse         = "crisisResponse"
)

func builtinDefinitions() []domain.TemplateDefinition {
	return []domain.TemplateDefinition{
		{
			Key:          KeyBasicStrategicAnalysis,
			Name:         "Basic Strategic Analysis",
			Category:     "Basic Operations",
			PromptFormat: basicStrategicAnalysisBody,
			Defaults: domain.Overrides{
				domain.FieldAnalysisType: domain.EnumValue("STRATEGIC"),
				domain.FieldMissionType:  domain.EnumValue("ANALYSIS"),
				domain.FieldReportType:   domain.EnumValue("ASSESSMENT"),
			},
		},
		{
			Key:          KeyIntelligenceOperation,
			Name:         "Intelligence Operation",
			Category:     "Intelligence Operations",
			PromptFormat: intelligenceOperationBody,
			Defaults: domain.Overrides{
				domain.FieldPriorityLevel:      domain.EnumValue("PRIORITY"),
				domain.FieldConfidenceRequired: domain.EnumValue("HIGH"),
				domain.FieldDetailLevel:        domain.EnumValue("DETAILED"),
			},
		},
		{
			Key:          KeyEconomicVulnerability,
			Name:         "Economic Vulnerability Assessment",
			Category:     "Economic Analysis",
			PromptFormat: economicVulnerabilityBody,
			Defaults: domain.Overrides{
				domain.FieldAnalysisType:     domain.EnumValue("ECONOMIC"),
				domain.FieldTimeline:         domain.EnumValue("MEDIUM_TERM"),
				domain.FieldFormatPreference: domain.EnumValue("STRUCTURED"),
			},
		},
		{
			Key:          KeyCrisisResponse,
			Name:         "Crisis Response",
			Category:     "Specialized Operations",
			PromptFormat: crisisResponseBody,
			Defaults: domain.Overrides{
				domain.FieldPriorityLevel:            domain.EnumValue("CRITICAL"),
				domain.FieldTimeline:                 domain.EnumValue("IMMEDIATE"),
				domain.FieldOpsecLevel:               domain.IntValue(3),
				domain.FieldSourceProtectionRequired: domain.BoolValue(true),
				domain.FieldDetailLevel:              domain.EnumValue("COMPREHENSIVE"),
				domain.FieldStakeholderType:          domain.EnumValue("EXECUTIVE"),
				domain.FieldThreatDescription:        domain.TextValue(""),
			},
		},
	}
}

const basicStrategicAnalysisBody = `Initialize AMATERASU for strategic analysis of [TARGET_SUBJECT].

Classification: [CLASSIFICATION_LEVEL] ([HANDLING_INSTRUCTIONS])
Compartments: [COMPARTMENTS]
Stakeholder: [STAKEHOLDER_TYPE]
Priority: [PRIORITY_LEVEL]
Analysis Type: Strategic assessment with [CONFIDENCE_THRESHOLD]% confidence threshold.

Requirements:
- Comprehensive strategic evaluation
- Multi-factor trend analysis  
- Stakeholder-optimized reporting
- [TIMELINE] delivery timeline

[WEB_SEARCH_BLOCK]

Focus areas: [DOMAIN_FOCUS]
Geographic scope: [GEOGRAPHIC_SCOPE]`

const intelligenceOperationBody = `Activate TSUKUYOMI intelligence mode for [MISSION_TYPE] operation.

//CLASSIFICATION: [CLASSIFICATION_LEVEL] [HANDLING_INSTRUCTIONS]
//COMPARTMENTS: [COMPARTMENTS]

Mission Parameters:
- Priority: [PRIORITY_LEVEL]
- Stakeholder: [STAKEHOLDER_TYPE] 
- Intelligence Disciplines: [DOMAIN_FOCUS]
- Analysis Depth: [DETAIL_LEVEL]

Operational Requirements:
- [ANALYSIS_TYPE] analysis with [CONFIDENCE_REQUIRED] confidence
- Source evaluation and corroboration
- Professional intelligence reporting
- OPSEC Level: [OPSEC_LEVEL_TEXT]

[WEB_SEARCH_BLOCK]

Target: [TARGET_SUBJECT]
Timeline: [TIMELINE]`

const economicVulnerabilityBody = `Initialize TSUKUYOMI Economic Analysis Module E1: Economic Vulnerability Assessment.

Classification: [CLASSIFICATION_LEVEL] ([HANDLING_INSTRUCTIONS])
Compartments: [COMPARTMENTS]
Target Economy: [TARGET_SUBJECT]
Stakeholder: [STAKEHOLDER_TYPE]

Assessment Parameters:
- Vulnerability domains: [Specify focus areas or 'All']
- External factors: [Geographic/Economic context, related to GEOGRAPHIC_SCOPE]
- Time horizon: [TIMELINE]
- Confidence threshold: [CONFIDENCE_THRESHOLD]%

Deliverables:
- Vulnerability profile analysis
- Risk assessment matrix
- Strategic recommendations
- [FORMAT_PREFERENCE] format

[WEB_SEARCH_BLOCK]`

const crisisResponseBody = `//CRITICAL: Activate TSUKUYOMI crisis response mode.

//CLASSIFICATION: [CLASSIFICATION_LEVEL] [HANDLING_INSTRUCTIONS]
//COMPARTMENTS: [COMPARTMENTS]
//PRIORITY: [PRIORITY_LEVEL]

Crisis Parameters:
- Threat type: [THREAT_DESCRIPTION]
- Affected systems: [TARGET_SUBJECT]
- Stakeholder: [STAKEHOLDER_TYPE]
- Response timeline: IMMEDIATE

Required Analysis:
- Immediate threat assessment
- Impact evaluation
- Mitigation recommendations
- Continuous monitoring protocols

[WEB_SEARCH_BLOCK]

OPSEC Level: MAXIMUM
Source Protection: ABSOLUTE`
