package template

import (
	"testing"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type fakeUsers map[string]domain.UserTemplate

func (f fakeUsers) FindTemplate(id string) (domain.UserTemplate, bool) {
	t, ok := f[id]
	return t, ok
}

func (f fakeUsers) Templates() []domain.UserTemplate {
	out := make([]domain.UserTemplate, 0, len(f))
	for _, t := range f {
		out = append(out, t)
	}
	return out
}

func customized() domain.Configuration {
	cfg := domain.Default()
	cfg.PriorityLevel = "FLASH"
	cfg.TargetSubject = "Region X"
	cfg.ClassificationLevel = "SECRET"
	cfg.ToggleSetMember(domain.FieldDomainFocus, "OSINT", true)
	return cfg
}

func TestSelectTemplate_BuiltinOverridesWin(t *testing.T) {
	reg := NewRegistry(Builtin(), nil)
	cur := customized()

	got := reg.SelectTemplate(cur, KeyIntelligenceOperation)

	// Overridden by the template.
	assert.Equal(t, "PRIORITY", got.PriorityLevel)
	assert.Equal(t, "HIGH", got.ConfidenceRequired)
	assert.Equal(t, "DETAILED", got.DetailLevel)
	// Not mentioned by the template.
	assert.Equal(t, "Region X", got.TargetSubject)
	assert.Equal(t, "SECRET", got.ClassificationLevel)
	assert.Equal(t, []string{"OSINT"}, got.DomainFocus)
}

func TestSelectTemplate_EveryOverriddenField(t *testing.T) {
	reg := NewRegistry(Builtin(), nil)
	for _, def := range Builtin().All() {
		t.Run(def.Key, func(t *testing.T) {
			cur := customized()
			cur.OpsecLevel = 2
			cur.ThreatDescription = "stale"
			got := reg.SelectTemplate(cur, def.Key)
			for _, spec := range domain.Fields() {
				if v, ok := def.Defaults[spec.Field]; ok {
					assert.Equal(t, v.Display(), got.Display(spec.Field), "overridden %s", spec.Field)
					continue
				}
				assert.Equal(t, cur.Display(spec.Field), got.Display(spec.Field), "untouched %s", spec.Field)
			}
		})
	}
}

func TestSelectTemplate_UserSnapshotReplacesEverything(t *testing.T) {
	snap := domain.Default()
	snap.TargetSubject = "Saved Target"
	snap.HandlingInstructions = []string{"NOFORN"}
	users := fakeUsers{"u1": {ID: "u1", Name: "Mine", Category: domain.UserDefinedCategory, FormData: snap}}
	reg := NewRegistry(Builtin(), users)

	got := reg.SelectTemplate(customized(), "u1")

	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("selected configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectTemplate_UserEmptySetStillWins(t *testing.T) {
	snap := domain.Default()
	users := fakeUsers{"u1": {ID: "u1", Name: "Blank", FormData: snap}}
	reg := NewRegistry(Builtin(), users)

	got := reg.SelectTemplate(customized(), "u1")
	assert.Empty(t, got.DomainFocus)
}

func TestSelectTemplate_BuiltinSetOverride(t *testing.T) {
	c, err := NewCatalog(domain.TemplateDefinition{
		Key: "sig", Name: "Sig", Category: "Collection",
		Defaults: domain.Overrides{domain.FieldDomainFocus: domain.SetValue("SIGINT")},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := NewRegistry(c, nil).SelectTemplate(customized(), "sig")
	assert.Equal(t, []string{"SIGINT"}, got.DomainFocus)
}

func TestSelectTemplate_UnknownKeyKeepsConfiguration(t *testing.T) {
	reg := NewRegistry(Builtin(), fakeUsers{})
	cur := customized()

	got := reg.SelectTemplate(cur, "nope")
	assert.Empty(t, cmp.Diff(cur, got))

	got.DomainFocus[0] = "HUMINT"
	assert.Equal(t, "OSINT", cur.DomainFocus[0])
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	cur := customized()
	got := Merge(cur, nil, nil)
	got.DomainFocus[0] = "MASINT"
	assert.Equal(t, "OSINT", cur.DomainFocus[0])
}

func TestResolve_BuiltinsFirst(t *testing.T) {
	users := fakeUsers{KeyCrisisResponse: {ID: KeyCrisisResponse, Name: "Shadow"}}
	reg := NewRegistry(Builtin(), users)

	res, ok := reg.Resolve(KeyCrisisResponse)
	assert.True(t, ok)
	assert.NotNil(t, res.Builtin)
	assert.Nil(t, res.User)
	assert.Equal(t, "Crisis Response", res.Name)
}
