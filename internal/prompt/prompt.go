// Package prompt assembles the text prompt sent to the generative model.
package prompt

import "strings"

// Build produces the system prompt, a blank line, each history line on its
// own line, and a trailing "Assistant:" marker telling the model where to
// continue. Pure function.
func Build(systemPrompt string, history []string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	for _, line := range history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}
