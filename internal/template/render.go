package template

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/raiden/internal/domain"
)

// NoTemplatePrompt is returned in place of a prompt when the selected key
// resolves to nothing.
const NoTemplatePrompt = "Select a template."

// Reserved placeholders outside the field set.
const (
	OpsecLevelTextPlaceholder = "[OPSEC_LEVEL_TEXT]"
	WebSearchBlockPlaceholder = "[WEB_SEARCH_BLOCK]"
)

var (
	fieldPatterns  = compileFieldPatterns()
	opsecTextRe    = placeholderPattern(OpsecLevelTextPlaceholder)
	webSearchTools = "[USE WEB SEARCH TOOL]"
)

func placeholderPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token))
}

func compileFieldPatterns() map[domain.Field]*regexp.Regexp {
	m := make(map[domain.Field]*regexp.Regexp)
	for _, spec := range domain.Fields() {
		m[spec.Field] = placeholderPattern(spec.Field.Placeholder())
	}
	return m
}

// Render substitutes cfg into body and cleans up what is left. It is pure
// and never fails.
func Render(body string, cfg domain.Configuration) string {
	out := body
	for _, spec := range domain.Fields() {
		if spec.Field == domain.FieldOpsecLevel {
			out = opsecTextRe.ReplaceAllLiteralString(out, domain.OpsecLabel(cfg.OpsecLevel))
		}
		out = fieldPatterns[spec.Field].ReplaceAllLiteralString(out, cfg.Display(spec.Field))
	}
	out = strings.Replace(out, WebSearchBlockPlaceholder, WebSearchBlock(cfg), 1)
	return Cleanup(out)
}

// WebSearchBlock is the text substituted for the first exact
// [WEB_SEARCH_BLOCK] in a body. It is empty unless web search is enabled.
func WebSearchBlock(cfg domain.Configuration) string {
	if !cfg.EnableWebSearch {
		return ""
	}
	var opts []string
	if cfg.WebSearchRealTime {
		opts = append(opts, "Real-time verification")
	}
	if cfg.WebSearchMultiSource {
		opts = append(opts, "Multi-source corroboration")
	}
	if cfg.WebSearchCurrentEvents {
		opts = append(opts, "Current events integration")
	}
	if len(opts) == 0 {
		return webSearchTools
	}
	return webSearchTools + "\nSearch Config: " + strings.Join(opts, ", ")
}
