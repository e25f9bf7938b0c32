// Package gen implements the chat message translation pipeline: it parses a
// content document into a message model and renders each message into a block
// of generated C++ source.
package gen

import (
	"github.com/tidwall/gjson"
)

// DefaultChatMessageType is the declared type of each generated message when
// the options document does not override it.
const DefaultChatMessageType = "constexpr auto"

// Options controls the shape of the generated output. All fields are optional
// in the options document; absent fields keep the defaults from
// DefaultOptions. Options are immutable after load.
type Options struct {
	// Pch, if non-empty, is emitted as a precompiled header include line,
	// e.g. "PROJECT_PCH" becomes `#include PROJECT_PCH`.
	Pch string

	// Namespace, if non-empty, wraps the whole output in a named namespace.
	Namespace string

	// LanguageEnum, if non-empty, switches message indexing from positional
	// integers to qualified enum members, e.g. "game::Languages" produces
	// `result[static_cast<int>(game::Languages::English)] = ...`.
	LanguageEnum string

	// HeaderFiles are emitted as include lines after the precompiled header,
	// in input order.
	HeaderFiles []string

	// ChatMessageType is the declared type of each message. Reserved: the
	// renderer does not consume it yet.
	ChatMessageType string

	// UseCompileMacro wraps every string literal in FMT_COMPILE(...). Should
	// stay enabled for C++20 targets.
	UseCompileMacro bool

	// UsePragmaOnce emits `#pragma once` as the first output line.
	UsePragmaOnce bool
}

// DefaultOptions returns the options used when fields are absent from the
// options document.
func DefaultOptions() *Options {
	return &Options{
		ChatMessageType: DefaultChatMessageType,
		UseCompileMacro: true,
		UsePragmaOnce:   true,
	}
}

// LoadOptions parses an options document. Recognized fields must carry the
// expected JSON type; unknown fields are ignored.
func LoadOptions(data []byte) (*Options, error) {
	if !gjson.ValidBytes(data) {
		return nil, &MalformedDocumentError{Msg: "could not parse options file - document is not valid JSON"}
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &MalformedDocumentError{Msg: "could not parse options file - value is not an object"}
	}

	opts := DefaultOptions()

	boolFields := []struct {
		name string
		dst  *bool
	}{
		{"useCompileMacro", &opts.UseCompileMacro},
		{"usePragmaOnce", &opts.UsePragmaOnce},
	}
	for _, field := range boolFields {
		if err := readBool(doc, field.name, field.dst); err != nil {
			return nil, err
		}
	}

	stringFields := []struct {
		name string
		dst  *string
	}{
		{"languageEnum", &opts.LanguageEnum},
		{"pch", &opts.Pch},
		{"namespace", &opts.Namespace},
		{"chatMessageType", &opts.ChatMessageType},
	}
	for _, field := range stringFields {
		if err := readString(doc, field.name, field.dst); err != nil {
			return nil, err
		}
	}

	if headers := doc.Get("headerFiles"); headers.Exists() {
		if !headers.IsArray() {
			return nil, &TypeMismatchError{Field: "headerFiles", Want: "array"}
		}
		// Non-string entries are tolerated garbage, not an error.
		headers.ForEach(func(_, value gjson.Result) bool {
			if value.Type == gjson.String {
				opts.HeaderFiles = append(opts.HeaderFiles, value.String())
			}
			return true
		})
	}

	return opts, nil
}

func readString(doc gjson.Result, field string, dst *string) error {
	value := doc.Get(field)
	if !value.Exists() {
		return nil
	}
	if value.Type != gjson.String {
		return &TypeMismatchError{Field: field, Want: "string"}
	}
	*dst = value.String()
	return nil
}

func readBool(doc gjson.Result, field string, dst *bool) error {
	value := doc.Get(field)
	if !value.Exists() {
		return nil
	}
	if value.Type != gjson.True && value.Type != gjson.False {
		return &TypeMismatchError{Field: field, Want: "boolean"}
	}
	*dst = value.Bool()
	return nil
}
