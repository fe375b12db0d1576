package domain

import "encoding/json"

// UserDefinedCategory is the category every operator-saved template lands in.
const UserDefinedCategory = "User Defined"

// Overrides is a partial configuration: only the named fields are applied.
type Overrides map[Field]Value

// Has reports whether the override set names f.
func (o Overrides) Has(f Field) bool {
	_, ok := o[f]
	return ok
}

// TemplateDefinition is an immutable built-in template.
type TemplateDefinition struct {
	Key          string
	Name         string
	Category     string
	PromptFormat string
	Defaults     Overrides
}

// UserTemplate is an operator-created template. PromptFormat holds the text
// rendered at save time; only FormData is reapplied when it is selected.
type UserTemplate struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	PromptFormat string        `json:"promptFormat"`
	FormData     Configuration `json:"formData"`
}

// PromptHistoryItem records one render. It is never mutated after creation.
type PromptHistoryItem struct {
	ID          string        `json:"id"`
	Timestamp   string        `json:"timestamp"`
	FormData    Configuration `json:"formData"`
	TemplateKey string        `json:"templateKey"`
	Name        string        `json:"name"`
}

// UnmarshalJSON starts FormData at the defaults so entries saved without a
// snapshot still carry a value for every field.
func (t *UserTemplate) UnmarshalJSON(data []byte) error {
	type plain UserTemplate
	decoded := plain{FormData: Default()}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = UserTemplate(decoded)
	return nil
}

// UnmarshalJSON mirrors UserTemplate.UnmarshalJSON.
func (h *PromptHistoryItem) UnmarshalJSON(data []byte) error {
	type plain PromptHistoryItem
	decoded := plain{FormData: Default()}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*h = PromptHistoryItem(decoded)
	return nil
}
