package formatter

import (
	"bytes"
	"encoding/json"
)

const standardIndentation = "    "

// ToStandardJSON returns the indented JSON representation of v, without
// HTML escaping so descriptions keep characters such as '<' intact.
func ToStandardJSON(v any) (string, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", standardIndentation)
	err := encoder.Encode(v)
	return buffer.String(), err
}
