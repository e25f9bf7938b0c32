package gen

import (
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Generator assembles the full output document for one run: preamble,
// rendered message blocks, and namespace close. One content document in, one
// source string out; the whole output is buffered in memory.
type Generator struct {
	opts   *Options
	logger *zap.Logger
}

// NewGenerator creates a generator over loaded options.
func NewGenerator(opts *Options, logger *zap.Logger) *Generator {
	return &Generator{opts: opts, logger: logger}
}

// Generate parses the content document, builds the language table, and
// renders every recognized message in document order. Entries of the
// "chatMessages" array that are not message-shaped are skipped; structural
// failures abort the run with no output.
func (g *Generator) Generate(content []byte) (string, error) {
	if !gjson.ValidBytes(content) {
		return "", &MalformedDocumentError{Msg: "could not parse JSON file - document is not valid JSON"}
	}

	doc := gjson.ParseBytes(content)
	langs, err := BuildLanguageTable(doc, g.logger)
	if err != nil {
		return "", err
	}

	messages := doc.Get("chatMessages")
	if !messages.Exists() || !messages.IsArray() {
		return "", &MalformedDocumentError{Msg: `could not parse JSON file - "chatMessages" field not exists or is not an array`}
	}

	renderer := NewRenderer(g.opts, langs)

	var blocks strings.Builder
	rendered, skipped := 0, 0
	var walkErr error
	messages.ForEach(func(_, entry gjson.Result) bool {
		msg, ok, parseErr := parseMessage(entry)
		if parseErr != nil {
			walkErr = parseErr
			return false
		}
		if !ok {
			skipped++
			return true
		}

		block, renderErr := renderer.Render(msg)
		if renderErr != nil {
			walkErr = renderErr
			return false
		}
		blocks.WriteString(block)
		blocks.WriteString("\n")
		rendered++
		return true
	})
	if walkErr != nil {
		return "", walkErr
	}

	g.logger.Info("rendered chat messages",
		zap.Int("messages", rendered),
		zap.Int("skipped_entries", skipped),
		zap.Int("languages", len(langs)))

	return g.assemble(blocks.String()), nil
}

// assemble frames the concatenated message blocks with the configured
// preamble and postamble.
func (g *Generator) assemble(blocks string) string {
	var out strings.Builder

	if g.opts.UsePragmaOnce {
		out.WriteString("#pragma once\n\n")
	}

	if g.opts.Pch != "" {
		out.WriteString("#include ")
		out.WriteString(g.opts.Pch)
		out.WriteString("\n")
	}

	for _, header := range g.opts.HeaderFiles {
		out.WriteString("#include ")
		out.WriteString(header)
		out.WriteString("\n")
	}

	out.WriteString("\n\n")

	if g.opts.Namespace != "" {
		out.WriteString("namespace ")
		out.WriteString(g.opts.Namespace)
		out.WriteString("\n{\n\n")
	}

	// Shared base marker every generated message derives from.
	out.WriteString("namespace internal {\nstruct ChatMessageBase {};\n}\n\n")

	out.WriteString(blocks)

	if g.opts.Namespace != "" {
		out.WriteString("\n}\n")
	}

	return out.String()
}
