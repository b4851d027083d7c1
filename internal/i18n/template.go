package i18n

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errUnknownPlaceholder = errors.New("unknown placeholder")
	errUnbalancedBrace    = errors.New("unbalanced brace")
	errBadFormatSpec      = errors.New("unsupported format spec")
	errFormatType         = errors.New("value does not fit format spec")
)

// Params carries named values for {name} placeholders.
type Params map[string]any

// Format substitutes {name} placeholders from params. "{{" and "}}" are
// literal braces. A placeholder may carry a printf verb after a colon,
// e.g. {percent:.1f}. The template is returned untouched on error.
func Format(tmpl string, params Params) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return tmpl, errUnbalancedBrace
			}
			field := tmpl[i+1 : i+1+end]
			name, spec, _ := strings.Cut(field, ":")
			val, ok := params[name]
			if !ok {
				return tmpl, fmt.Errorf("%w: %s", errUnknownPlaceholder, name)
			}
			out, err := formatValue(spec, val)
			if err != nil {
				return tmpl, fmt.Errorf("{%s}: %w", field, err)
			}
			b.WriteString(out)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return tmpl, errUnbalancedBrace
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// formatValue renders val under a spec of the form [+][0][width][.prec][type]
// with type one of d, f, e, g, s or empty. Integers are widened for the
// float types. Alignment, grouping and other spec features are rejected.
func formatValue(spec string, val any) (string, error) {
	if spec == "" {
		return fmt.Sprint(val), nil
	}

	rest := spec
	var flags string
	for len(rest) > 0 && (rest[0] == '+' || rest[0] == '0') {
		flags += rest[:1]
		rest = rest[1:]
	}

	digits := func() string {
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		d := rest[:n]
		rest = rest[n:]
		return d
	}

	width := digits()
	precision := ""
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		precision = digits()
		if precision == "" {
			return "", errBadFormatSpec
		}
	}

	verb := rest
	if len(verb) > 1 {
		return "", errBadFormatSpec
	}

	directive := "%" + flags + width
	if precision != "" {
		directive += "." + precision
	}

	switch verb {
	case "f", "e", "g", "F", "E", "G":
		f, ok := toFloat(val)
		if !ok {
			return "", errFormatType
		}
		return fmt.Sprintf(directive+verb, f), nil
	case "d":
		if precision != "" {
			return "", errBadFormatSpec
		}
		n, ok := toInt(val)
		if !ok {
			return "", errFormatType
		}
		return fmt.Sprintf(directive+"d", n), nil
	case "s":
		str, ok := val.(string)
		if !ok || strings.Contains(flags, "+") {
			return "", errFormatType
		}
		return fmt.Sprintf("%-"+width+precisionPart(precision)+"s", str), nil
	case "":
		if precision != "" {
			switch f := val.(type) {
			case float64:
				return fmt.Sprintf(directive+"g", f), nil
			case float32:
				return fmt.Sprintf(directive+"g", f), nil
			}
			if str, ok := val.(string); ok {
				return fmt.Sprintf("%-"+width+"."+precision+"s", str), nil
			}
			return "", errFormatType
		}
		if str, ok := val.(string); ok {
			return fmt.Sprintf("%-"+width+"s", str), nil
		}
		return fmt.Sprintf(directive+"v", val), nil
	default:
		return "", errBadFormatSpec
	}
}

func precisionPart(p string) string {
	if p == "" {
		return ""
	}
	return "." + p
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		if i, ok := toInt(v); ok {
			return float64(i), true
		}
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// ParseParam types a textual parameter: integers first, then floats,
// otherwise the string itself.
func ParseParam(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
