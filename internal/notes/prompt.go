package notes

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/wordlist"
)

const systemPrompt = `You help language learners memorise vocabulary. For each term you are given, write one short memory hint: an etymology, a mnemonic, a usage example or a contrast with a similar word. Never restate the definition.`

func buildUserMessage(words []wordlist.Word) string {
	var b strings.Builder
	b.WriteString("Terms:\n")
	for _, w := range words {
		if w.Definition != "" {
			fmt.Fprintf(&b, "- %s: %s\n", w.Term, w.Definition)
		} else {
			fmt.Fprintf(&b, "- %s\n", w.Term)
		}
	}
	b.WriteString(`
Instructions:
Return one entry per term. Copy each term exactly as listed. Keep every note under 15 words.`)
	return b.String()
}
