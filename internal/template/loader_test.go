package template

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sigintYAML = `key: sigintCollection
name: SIGINT Collection Plan
category: Collection
prompt_format: |
  Collect against [TARGET_SUBJECT].
  Disciplines: [DOMAIN_FOCUS]
defaults:
  PRIORITY_LEVEL: flash
  DOMAIN_FOCUS: [SIGINT, CYBINT]
  OPSEC_LEVEL: 2
  ENABLE_WEB_SEARCH: true
`

func TestLoadFS_YAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"b_sigint.yaml": {Data: []byte(sigintYAML)},
		"a_brief.json": {Data: []byte(`{
  "key": "executiveBrief",
  "name": "Executive Brief",
  "category": "Reporting",
  "prompt_format": "Brief [STAKEHOLDER_TYPE] on [TARGET_SUBJECT].",
  "defaults": {"FORMAT_PREFERENCE": "BRIEF"}
}`)},
		"README.md": {Data: []byte("ignored")},
	}

	defs, err := LoadFS(fsys)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "executiveBrief", defs[0].Key)
	assert.Equal(t, domain.EnumValue("BRIEF"), defs[0].Defaults[domain.FieldFormatPreference])

	sig := defs[1]
	assert.Equal(t, "sigintCollection", sig.Key)
	assert.Equal(t, "Collection", sig.Category)
	assert.Equal(t, domain.EnumValue("FLASH"), sig.Defaults[domain.FieldPriorityLevel])
	assert.Equal(t, domain.SetValue("SIGINT", "CYBINT"), sig.Defaults[domain.FieldDomainFocus])
	assert.Equal(t, domain.IntValue(2), sig.Defaults[domain.FieldOpsecLevel])
	assert.Equal(t, domain.BoolValue(true), sig.Defaults[domain.FieldEnableWebSearch])
}

func TestLoadFS_JoinsErrorsPerFile(t *testing.T) {
	fsys := fstest.MapFS{
		"missing.yaml":  {Data: []byte("key: x\n")},
		"badvalue.yaml": {Data: []byte("key: y\nname: Y\ncategory: C\nprompt_format: body\ndefaults:\n  OPSEC_LEVEL: 9\n  COLOR: red\n")},
		"broken.json":   {Data: []byte(`{"key":`)},
		"reserved.yaml": {Data: []byte("key: z\nname: Z\ncategory: User Defined\nprompt_format: body\n")},
	}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "missing.yaml: template name is required")
	assert.Contains(t, msg, "template category is required")
	assert.Contains(t, msg, "OPSEC_LEVEL must be an integer between 1 and 3")
	assert.Contains(t, msg, "defaults.COLOR: unknown field")
	assert.Contains(t, msg, "broken.json: parsing template")
	assert.Contains(t, msg, "reserved for saved templates")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestLoadFS_DuplicateKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"one.yaml": {Data: []byte(sigintYAML)},
		"two.yml":  {Data: []byte(sigintYAML)},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `two.yml: duplicate template key "sigintCollection"`)
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	defs, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadCatalog_AppendsAfterBuiltins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sigint.yaml"), []byte(sigintYAML), 0o644))

	c, err := LoadCatalog(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, KeyBasicStrategicAnalysis, c.FirstKey())

	l := c.ListByCategory()
	assert.Equal(t, "Collection", l.Groups[len(l.Groups)-1].Category)
}

func TestLoadTemplateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sigintYAML), 0o644))

	tf, err := LoadTemplateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SIGINT Collection Plan", tf.Name)
	assert.Empty(t, ValidateTemplateFile(tf))

	_, err = LoadTemplateFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
