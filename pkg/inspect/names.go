package inspect

import "strings"

// rootNames maps shorthands to the root objects of the data models.
var rootNames = map[string]string{
	"igd":                   "InternetGatewayDevice",
	"internetgatewaydevice": "InternetGatewayDevice",
	"dev":                   "Device",
	"device":                "Device",
}

// ResolveRootName resolves a root object shorthand (case-insensitive).
func ResolveRootName(name string) (string, bool) {
	root, ok := rootNames[strings.ToLower(name)]
	return root, ok
}

// RootNames returns the canonical root object names.
func RootNames() []string {
	return []string{"Device", "InternetGatewayDevice"}
}
