package specparse

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// BaseTypes are the CWMP base type names.
var BaseTypes = []string{
	"boolean", "int", "unsignedInt", "long", "unsignedLong",
	"string", "dateTime", "base64", "hexBinary",
}

// SharedTypes maps the shared data type names to their base type.
var SharedTypes = map[string]string{
	"IPAddress":        "string",
	"IPv4Address":      "string",
	"IPv6Address":      "string",
	"MACAddress":       "string",
	"Alias":            "string",
	"DiagnosticsState": "string",
	"StatsCounter32":   "unsignedInt",
	"StatsCounter64":   "unsignedLong",
}

// BaseType resolves a type name to its base type.
func BaseType(name string) (string, bool) {
	for _, t := range BaseTypes {
		if t == name {
			return t, true
		}
	}
	base, ok := SharedTypes[name]
	return base, ok
}

// Check reports every structural problem in the objects of one package.
// Children must refer to objects of the same set.
func Check(objects []RawObjectDef) error {
	var errs error
	names := make(map[string]bool)
	paths := make(map[string]bool)

	for _, o := range objects {
		if o.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("object %q: missing name", o.Path))
			continue
		}
		if names[o.Name] {
			errs = multierr.Append(errs, fmt.Errorf("object %s: defined twice", o.Name))
		}
		names[o.Name] = true

		if !strings.HasSuffix(o.Path, ".") {
			errs = multierr.Append(errs, fmt.Errorf("object %s: path %q must end with '.'", o.Name, o.Path))
		}
		if paths[o.Path] {
			errs = multierr.Append(errs, fmt.Errorf("object %s: path %q defined twice", o.Name, o.Path))
		}
		paths[o.Path] = true

		errs = multierr.Append(errs, checkParameters(o))
	}

	for _, o := range objects {
		for _, c := range o.Children {
			if !names[c.Object] {
				errs = multierr.Append(errs, fmt.Errorf("object %s: child %s refers to unknown object %q", o.Name, c.Name, c.Object))
			}
			if c.Style == "wrapped" && c.Wrapper == "" {
				errs = multierr.Append(errs, fmt.Errorf("object %s: wrapped child %s has no wrapper", o.Name, c.Name))
			}
		}
	}
	return errs
}

func checkParameters(o RawObjectDef) error {
	var errs error
	seen := make(map[string]bool)
	for _, p := range o.Parameters {
		if p.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("object %s: parameter without name", o.Name))
			continue
		}
		if seen[p.Name] {
			errs = multierr.Append(errs, fmt.Errorf("object %s: parameter %s defined twice", o.Name, p.Name))
		}
		seen[p.Name] = true

		if _, ok := BaseType(p.Type); !ok {
			errs = multierr.Append(errs, fmt.Errorf("object %s: parameter %s has unknown type %q", o.Name, p.Name, p.Type))
		}
		if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
			errs = multierr.Append(errs, fmt.Errorf("object %s: parameter %s has min > max", o.Name, p.Name))
		}
		if p.WritableIf != "" && !hasParameter(o, p.WritableIf) {
			errs = multierr.Append(errs, fmt.Errorf("object %s: parameter %s is guarded by unknown %s", o.Name, p.Name, p.WritableIf))
		}
	}
	return errs
}

func hasParameter(o RawObjectDef, name string) bool {
	for _, p := range o.Parameters {
		if p.Name == name {
			return true
		}
	}
	return false
}
