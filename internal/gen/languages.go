package gen

import (
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// LanguageTable maps a language identifier to the display name used for enum
// member references. Read-only after construction.
type LanguageTable map[string]string

// BuildLanguageTable reads the "languages" array of a content document. Each
// entry must be an object with string "id" and "name" fields. Duplicate ids
// resolve last-write-wins.
func BuildLanguageTable(doc gjson.Result, logger *zap.Logger) (LanguageTable, error) {
	if !doc.IsObject() {
		return nil, &MalformedDocumentError{Msg: "could not parse JSON file - value is not an object"}
	}

	langs := doc.Get("languages")
	if !langs.Exists() || !langs.IsArray() {
		return nil, &MalformedDocumentError{Msg: `could not parse JSON file - "languages" value is not an array`}
	}

	table := make(LanguageTable)
	var buildErr error
	langs.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			buildErr = &MalformedDocumentError{Msg: "could not parse JSON file - language content is not an object"}
			return false
		}

		id := entry.Get("id")
		if id.Type != gjson.String {
			buildErr = &FieldAccessError{Field: "id"}
			return false
		}
		name := entry.Get("name")
		if name.Type != gjson.String {
			buildErr = &FieldAccessError{Field: "name"}
			return false
		}

		// Ids are conventionally BCP 47 tags; an odd one is worth a warning
		// but never aborts the build.
		if _, err := language.Parse(id.String()); err != nil {
			logger.Warn("language id is not a valid BCP 47 tag",
				zap.String("id", id.String()),
				zap.String("name", name.String()))
		}

		table[id.String()] = name.String()
		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}

	return table, nil
}
