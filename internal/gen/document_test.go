package gen

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const minimalContent = `{
	"languages": [{"id": "en", "name": "English"}],
	"chatMessages": [
		{"uniqueName": "Greeting", "content": {"en": {"comment": "c", "processed": "Hi"}}}
	]
}`

func generate(t *testing.T, opts *Options, content string) string {
	t.Helper()
	out, err := NewGenerator(opts, zap.NewNop()).Generate([]byte(content))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return out
}

func TestGenerate_NamespaceFraming(t *testing.T) {
	opts := DefaultOptions()
	opts.Namespace = "chat_txt"

	out := generate(t, opts, minimalContent)

	if !strings.Contains(out, "namespace chat_txt\n{\n") {
		t.Errorf("Expected namespace open, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n}\n") {
		t.Errorf("Expected namespace close at end, got:\n%s", out)
	}
	if !strings.Contains(out, "std::array<std::string_view, 1> result;") {
		t.Errorf("Expected array size 1, got:\n%s", out)
	}
	if !strings.Contains(out, "result[0] = FMT_COMPILE(\"Hi\");") {
		t.Errorf("Expected assignment at index 0, got:\n%s", out)
	}
	if !strings.Contains(out, "} inline constexpr Greeting;") {
		t.Errorf("Expected Greeting declaration, got:\n%s", out)
	}
}

func TestGenerate_NoNamespaceByDefault(t *testing.T) {
	out := generate(t, DefaultOptions(), minimalContent)

	if strings.Contains(out, "namespace chat_txt") {
		t.Errorf("Expected no user namespace, got:\n%s", out)
	}
	// The shared marker namespace is always present.
	if !strings.Contains(out, "namespace internal {\nstruct ChatMessageBase {};\n}\n") {
		t.Errorf("Expected base marker declaration, got:\n%s", out)
	}
}

func TestGenerate_PragmaOnceToggle(t *testing.T) {
	out := generate(t, DefaultOptions(), minimalContent)
	if !strings.HasPrefix(out, "#pragma once\n") {
		t.Errorf("Expected pragma once as first line by default, got:\n%s", out)
	}

	opts := DefaultOptions()
	opts.UsePragmaOnce = false
	out = generate(t, opts, minimalContent)
	if strings.Contains(out, "#pragma once") {
		t.Errorf("Expected no pragma once, got:\n%s", out)
	}
}

func TestGenerate_Includes(t *testing.T) {
	opts := DefaultOptions()
	opts.Pch = "PROJECT_PCH"
	opts.HeaderFiles = []string{`"A.h"`, `"B.h"`}

	out := generate(t, opts, minimalContent)

	pch := strings.Index(out, "#include PROJECT_PCH\n")
	a := strings.Index(out, "#include \"A.h\"\n")
	b := strings.Index(out, "#include \"B.h\"\n")
	if pch < 0 || a < 0 || b < 0 {
		t.Fatalf("Expected pch and header includes, got:\n%s", out)
	}
	if !(pch < a && a < b) {
		t.Errorf("Expected includes in input order after pch, got:\n%s", out)
	}
}

func TestGenerate_BlockCountMatchesRecognizedEntries(t *testing.T) {
	content := `{
		"languages": [{"id": "en", "name": "English"}],
		"chatMessages": [
			{"uniqueName": "A", "content": {"en": {"comment": "a", "processed": "1"}}},
			"an annotation entry",
			{"note": "no uniqueName or content"},
			{"uniqueName": "B", "content": {"en": {"comment": "b", "processed": "2"}}},
			17
		]
	}`

	out := generate(t, DefaultOptions(), content)

	if got := strings.Count(out, "inline constexpr"); got != 2 {
		t.Errorf("Expected 2 rendered blocks, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "} inline constexpr A;") || !strings.Contains(out, "} inline constexpr B;") {
		t.Errorf("Expected blocks for A and B, got:\n%s", out)
	}
}

func TestGenerate_BlocksSeparatedByBlankLine(t *testing.T) {
	content := `{
		"languages": [],
		"chatMessages": [
			{"uniqueName": "A", "content": {}},
			{"uniqueName": "B", "content": {}}
		]
	}`

	out := generate(t, DefaultOptions(), content)

	if !strings.Contains(out, "} inline constexpr A;\n\n// \"\"\n") {
		t.Errorf("Expected a blank line between blocks, got:\n%s", out)
	}
}

func TestGenerate_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"root not object", `[]`},
		{"languages missing", `{"chatMessages": []}`},
		{"chatMessages missing", `{"languages": []}`},
		{"chatMessages not array", `{"languages": [], "chatMessages": {}}`},
		{"invalid json", `{"languages": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerator(DefaultOptions(), zap.NewNop()).Generate([]byte(tc.content))
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("Expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestGenerate_UnknownLanguageAborts(t *testing.T) {
	opts := DefaultOptions()
	opts.LanguageEnum = "game::Languages"

	content := `{
		"languages": [{"id": "en", "name": "English"}],
		"chatMessages": [
			{"uniqueName": "M", "content": {"xx": {"comment": "c", "processed": "?"}}}
		]
	}`

	_, err := NewGenerator(opts, zap.NewNop()).Generate([]byte(content))
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Expected ErrUnknownLanguage, got %v", err)
	}
}

func TestGenerate_FullDocument(t *testing.T) {
	opts := DefaultOptions()
	opts.Namespace = "chat_txt"

	want := "#pragma once\n\n" +
		"\n\n" +
		"namespace chat_txt\n{\n\n" +
		"namespace internal {\nstruct ChatMessageBase {};\n}\n\n" +
		"// \"c\"\n" +
		"class \n\t: public internal::ChatMessageBase\n" +
		"{\n" +
		"\tstatic constexpr auto generateContent = []\n\t{\n" +
		"\t\tstd::array<std::string_view, 1> result;\n" +
		"\t\tresult[0] = FMT_COMPILE(\"Hi\");\n" +
		"\t\treturn result;\n" +
		"\t};\n" +
		"public:\n" +
		"\tstatic constexpr auto text = generateContent();\n" +
		"} inline constexpr Greeting;\n\n" +
		"\n}\n"

	out := generate(t, opts, minimalContent)
	if out != want {
		t.Errorf("Full document mismatch.\nExpected:\n%q\nGot:\n%q", want, out)
	}
}
