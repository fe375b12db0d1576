package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault_EveryFieldHasValue(t *testing.T) {
	cfg := Default()
	for _, spec := range Fields() {
		v := cfg.Get(spec.Field)
		assert.Equal(t, spec.Kind, v.Kind, "field %s", spec.Field)
		if spec.Kind == KindEnum {
			assert.True(t, spec.HasOption(v.Str), "default of %s should be in its vocabulary", spec.Field)
		}
	}
	assert.Equal(t, 1, cfg.OpsecLevel)
	assert.Equal(t, 70, cfg.ConfidenceThreshold)
	assert.NotNil(t, cfg.HandlingInstructions)
	assert.NotNil(t, cfg.DomainFocus)
}

func TestSetScalar_NonInterference(t *testing.T) {
	cases := []struct {
		field Field
		value Value
	}{
		{FieldClassificationLevel, EnumValue("SECRET")},
		{FieldTargetSubject, TextValue("Region X")},
		{FieldCompartments, TextValue("SCI")},
		{FieldOpsecLevel, IntValue(2)},
		{FieldConfidenceThreshold, IntValue(95)},
		{FieldEnableWebSearch, BoolValue(true)},
		{FieldSourceProtectionRequired, BoolValue(true)},
		{FieldThreatDescription, TextValue("ransomware")},
	}

	for _, tc := range cases {
		t.Run(string(tc.field), func(t *testing.T) {
			before := Default()
			before.ToggleSetMember(FieldDomainFocus, "OSINT", true)
			after := before.Clone()
			after.SetScalar(tc.field, tc.value)

			assert.Equal(t, tc.value.Display(), after.Display(tc.field))
			for _, spec := range Fields() {
				if spec.Field == tc.field {
					continue
				}
				assert.Equal(t, before.Get(spec.Field), after.Get(spec.Field), "field %s changed", spec.Field)
			}
		})
	}
}

func TestSetScalar_IgnoresSetFields(t *testing.T) {
	cfg := Default()
	cfg.SetScalar(FieldDomainFocus, EnumValue("OSINT"))
	assert.Empty(t, cfg.DomainFocus)
}

func TestToggleSetMember_Idempotent(t *testing.T) {
	cfg := Default()
	cfg.ToggleSetMember(FieldDomainFocus, "OSINT", true)
	cfg.ToggleSetMember(FieldDomainFocus, "SIGINT", true)

	cfg.ToggleSetMember(FieldDomainFocus, "OSINT", true)
	assert.Equal(t, []string{"OSINT", "SIGINT"}, cfg.DomainFocus)

	cfg.ToggleSetMember(FieldDomainFocus, "HUMINT", false)
	assert.Equal(t, []string{"OSINT", "SIGINT"}, cfg.DomainFocus)

	cfg.ToggleSetMember(FieldDomainFocus, "OSINT", false)
	assert.Equal(t, []string{"SIGINT"}, cfg.DomainFocus)
}

func TestClone_DoesNotShareSets(t *testing.T) {
	cfg := Default()
	cfg.ToggleSetMember(FieldHandlingInstructions, "NOFORN", true)
	snap := cfg.Clone()

	cfg.ToggleSetMember(FieldHandlingInstructions, "ORCON", true)
	cfg.HandlingInstructions[0] = "LIMDIS"

	assert.Equal(t, []string{"NOFORN"}, snap.HandlingInstructions)
}

func TestNormalize_FallsBackToDefaults(t *testing.T) {
	cfg := Default()
	cfg.PriorityLevel = "WHENEVER"
	cfg.OpsecLevel = 9
	cfg.ConfidenceThreshold = -4
	cfg.DomainFocus = []string{"OSINT", "TELEPATHY", "OSINT", "SIGINT"}

	cfg.Normalize()

	assert.Equal(t, "ROUTINE", cfg.PriorityLevel)
	assert.Equal(t, 1, cfg.OpsecLevel)
	assert.Equal(t, 70, cfg.ConfidenceThreshold)
	assert.Equal(t, []string{"OSINT", "SIGINT"}, cfg.DomainFocus)
}

func TestUnmarshalJSON_MissingFieldsTakeDefaults(t *testing.T) {
	var cfg Configuration
	err := json.Unmarshal([]byte(`{"TARGET_SUBJECT":"Region X","OPSEC_LEVEL":7,"HANDLING_INSTRUCTIONS":null}`), &cfg)
	require.NoError(t, err)

	want := Default()
	want.TargetSubject = "Region X"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("decoded configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalJSON_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.ClassificationLevel = "TOP SECRET"
	cfg.ToggleSetMember(FieldHandlingInstructions, "EYES ONLY", true)
	cfg.WebSearchRealTime = true
	cfg.ConfidenceThreshold = 85

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"CLASSIFICATION_LEVEL":"TOP SECRET"`)

	var back Configuration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Empty(t, cmp.Diff(cfg, back))
}

func TestUnmarshalYAML_AppliesDefaults(t *testing.T) {
	var cfg Configuration
	err := yaml.Unmarshal([]byte("PRIORITY_LEVEL: FLASH\nDOMAIN_FOCUS: [GEOINT, BOGUS]\n"), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "FLASH", cfg.PriorityLevel)
	assert.Equal(t, []string{"GEOINT"}, cfg.DomainFocus)
	assert.Equal(t, "UNCLASSIFIED", cfg.ClassificationLevel)
	assert.Equal(t, []string{}, cfg.HandlingInstructions)
}

func TestUserTemplate_UnmarshalJSONWithoutFormData(t *testing.T) {
	var ut UserTemplate
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","name":"Bare"}`), &ut))
	assert.Equal(t, "t1", ut.ID)
	assert.Empty(t, cmp.Diff(Default(), ut.FormData))
}

func TestPromptHistoryItem_UnmarshalJSONKeepsSnapshot(t *testing.T) {
	var h PromptHistoryItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"h1","formData":{"OPSEC_LEVEL":3}}`), &h))
	assert.Equal(t, 3, h.FormData.OpsecLevel)
	assert.Equal(t, "UNCLASSIFIED", h.FormData.ClassificationLevel)

	var bare PromptHistoryItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"h2"}`), &bare))
	assert.Equal(t, 70, bare.FormData.ConfidenceThreshold)
	assert.Equal(t, "ANALYSIS", bare.FormData.MissionType)
}
