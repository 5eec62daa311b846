package inspect

import "testing"

func TestResolveRootName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"igd", "InternetGatewayDevice", true},
		{"IGD", "InternetGatewayDevice", true},
		{"InternetGatewayDevice", "InternetGatewayDevice", true},
		{"dev", "Device", true},
		{"device", "Device", true},
		{"Services", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ResolveRootName(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ResolveRootName(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRootNamesResolveToThemselves(t *testing.T) {
	for _, name := range RootNames() {
		if got, ok := ResolveRootName(name); !ok || got != name {
			t.Errorf("ResolveRootName(%q) = (%q, %v)", name, got, ok)
		}
	}
}
