package specparse

import "strings"

// FieldName converts an element name to a Go identifier. Characters that
// cannot appear in an identifier are dropped and the letter following them
// is upper-cased: "X_EXAMPLE-COM_Mode" becomes "XEXAMPLECOMMode".
func FieldName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upper = true
		case upper:
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
