package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// Renderer converts parsed messages into blocks of generated C++ source. The
// two configuration-dependent choices - positional versus enum indexing, and
// FMT_COMPILE wrapping - are kept as separate helpers so each stays a pure
// function of options and table.
type Renderer struct {
	opts  *Options
	langs LanguageTable
}

// NewRenderer creates a renderer over loaded options and a built language
// table. Both are consulted read-only.
func NewRenderer(opts *Options, langs LanguageTable) *Renderer {
	return &Renderer{opts: opts, langs: langs}
}

// Render produces the declaration block for one message. A message with zero
// variants still renders: a zero-sized array with no assignments.
func (r *Renderer) Render(msg *Message) (string, error) {
	var assignments strings.Builder
	for pos, variant := range msg.Variants {
		index, err := r.index(variant, pos)
		if err != nil {
			return "", err
		}
		assignments.WriteString("\t\tresult[")
		assignments.WriteString(index)
		assignments.WriteString("] = ")
		assignments.WriteString(r.literal(variant))
		assignments.WriteString(";\n")
	}

	return fmt.Sprintf("// \"%s\"\n"+
		"class \n\t: public internal::ChatMessageBase\n"+
		"{\n"+
		"\tstatic constexpr auto generateContent = []\n\t{\n"+
		"\t\tstd::array<std::string_view, %d> result;\n"+
		"%s"+
		"\t\treturn result;\n"+
		"\t};\n"+
		"public:\n"+
		"\tstatic constexpr auto text = generateContent();\n"+
		"} inline constexpr %s;\n",
		msg.Comment, len(msg.Variants), assignments.String(), msg.UniqueName), nil
}

// index computes the array-index expression for the variant at position pos:
// the zero-based ordinal when no language enum is configured, otherwise a
// qualified enum member cast to int.
func (r *Renderer) index(variant Variant, pos int) (string, error) {
	if r.opts.LanguageEnum == "" {
		return strconv.Itoa(pos), nil
	}

	name, found := r.langs[variant.LangID]
	if !found {
		return "", &UnknownLanguageError{LangID: variant.LangID}
	}
	return "static_cast<int>(" + r.opts.LanguageEnum + "::" + name + ")", nil
}

// literal quotes the variant text verbatim. The upstream content pipeline is
// responsible for escaping; no characters are rewritten here.
func (r *Renderer) literal(variant Variant) string {
	quoted := `"` + variant.Literal + `"`
	if r.opts.UseCompileMacro {
		return "FMT_COMPILE(" + quoted + ")"
	}
	return quoted
}
