package gen

import (
	"github.com/tidwall/gjson"
)

// Variant is one language's rendered form of a single message.
type Variant struct {
	LangID  string
	Literal string
}

// Message is the in-memory representation of one chat message entry: its
// generated identifier, its documentation comment, and its per-language
// variants in document order.
type Message struct {
	UniqueName string
	Comment    string
	Variants   []Variant
}

// parseMessage reads one element of the "chatMessages" array. Elements that
// are not objects, or lack "uniqueName" or "content", are not messages
// (annotation entries and the like) and are reported with ok == false rather
// than an error. The comment is taken from the first variant only; later
// variants' comments are ignored even when they differ.
func parseMessage(entry gjson.Result) (msg *Message, ok bool, err error) {
	if !entry.IsObject() {
		return nil, false, nil
	}

	name := entry.Get("uniqueName")
	content := entry.Get("content")
	if !name.Exists() || !content.Exists() {
		return nil, false, nil
	}

	msg = &Message{UniqueName: name.String()}

	var comment *string
	content.ForEach(func(langID, langContent gjson.Result) bool {
		if comment == nil {
			c := langContent.Get("comment")
			if c.Type != gjson.String {
				err = &FieldAccessError{Field: "comment"}
				return false
			}
			s := c.String()
			comment = &s
		}

		processed := langContent.Get("processed")
		if processed.Type != gjson.String {
			err = &FieldAccessError{Field: "processed"}
			return false
		}

		msg.Variants = append(msg.Variants, Variant{
			LangID:  langID.String(),
			Literal: processed.String(),
		})
		return true
	})
	if err != nil {
		return nil, false, err
	}

	if comment != nil {
		msg.Comment = *comment
	}
	return msg, true, nil
}
