package intelligence

import (
	_ "embed"
	"strings"
)

//go:embed tsukuyomi_guide.md
var tsukuyomiGuide string

const advisoryPreamble = `You are RAIDEN, an AI assistant integrated into the RAIDEN INTELLIGENCE ORCHESTRATION SYSTEM. Your primary function is to provide information and guidance *exclusively* related to this system, its features, prompt engineering techniques for intelligence tasks supported by the system, and concepts in intelligence analysis that are relevant to the system's usage.
Your knowledge about the RAIDEN INTELLIGENCE ORCHESTRATION SYSTEM and the TSUKUYOMI framework is based on the following TSUKUYOMI User Guide & Documentation. This guide is your primary source of information. When advising on system features, prompt engineering, or related intelligence concepts, refer to this guide.
You may also consider public information from https://github.com/ShimazuSystems/TSUKUYOMI (including its README and Wiki) as supplementary context if needed, but the provided User Guide below is paramount.
Adhere to a cold, calculated, and concise communication style. Do not engage in general conversation or provide information outside these specified operational parameters. If a query falls outside your designated scope, state that the query is 'Beyond current operational parameters.'
`

const (
	guideStart = "--- TSUKUYOMI USER GUIDE & DOCUMENTATION START ---"
	guideEnd   = "--- TSUKUYOMI USER GUIDE & DOCUMENTATION END ---"
)

// Guide returns the embedded TSUKUYOMI user guide.
func Guide() string {
	return tsukuyomiGuide
}

// AdvisorySystemInstruction is the system prompt sent with every advisory
// query: the persona and scope rules followed by the wrapped guide.
func AdvisorySystemInstruction() string {
	var b strings.Builder
	b.WriteString(advisoryPreamble)
	b.WriteString("\n")
	b.WriteString(guideStart)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(tsukuyomiGuide, "\n"))
	b.WriteString("\n")
	b.WriteString(guideEnd)
	b.WriteString("\n")
	return b.String()
}
