package jsondoc

import (
	"encoding/json"
	"strings"
)

// EncodeIndent serializes v back to JSON text with 2-space indentation,
// preserving member order. Scalars serialize to their plain literal form.
func EncodeIndent(v Value) string {
	var sb strings.Builder
	encode(&sb, v, 0)
	return sb.String()
}

func encode(sb *strings.Builder, v Value, indent int) {
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i, m := range t {
			writeIndent(sb, indent+1)
			sb.WriteString(quote(m.Key))
			sb.WriteString(": ")
			encode(sb, m.Value, indent+1)
			if i < len(t)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		writeIndent(sb, indent)
		sb.WriteString("}")

	case Array:
		if len(t) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, elem := range t {
			writeIndent(sb, indent+1)
			encode(sb, elem, indent+1)
			if i < len(t)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		writeIndent(sb, indent)
		sb.WriteString("]")

	case String:
		sb.WriteString(quote(string(t)))
	case Number:
		sb.WriteString(string(t))
	case Bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Null:
		sb.WriteString("null")
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the raw text if it ever does.
		return `"` + s + `"`
	}
	return string(b)
}
