package inspect

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Path
	}{
		{
			name:  "object path",
			input: "Device.DynamicDNS.",
			want: &Path{
				Segments: []Segment{{Name: "Device"}, {Name: "DynamicDNS"}},
				IsObject: true,
			},
		},
		{
			name:  "parameter path with instance",
			input: "Device.DynamicDNS.Client.3.Enable",
			want: &Path{
				Segments: []Segment{
					{Name: "Device"}, {Name: "DynamicDNS"}, {Name: "Client"},
					{Kind: SegmentInstance, Instance: 3}, {Name: "Enable"},
				},
			},
		},
		{
			name:  "template",
			input: "Device.Routing.Router.{i}.IPv4Forwarding.{i}.",
			want: &Path{
				Segments: []Segment{
					{Name: "Device"}, {Name: "Routing"}, {Name: "Router"},
					{Kind: SegmentPlaceholder}, {Name: "IPv4Forwarding"}, {Kind: SegmentPlaceholder},
				},
				IsObject: true,
			},
		},
		{
			name:  "alias reference",
			input: "Device.DynamicDNS.Client.[home].Username",
			want: &Path{
				Segments: []Segment{
					{Name: "Device"}, {Name: "DynamicDNS"}, {Name: "Client"},
					{Kind: SegmentAlias, Name: "home"}, {Name: "Username"},
				},
			},
		},
		{
			name:  "root shorthand",
			input: "igd.ManagementServer.URL",
			want: &Path{
				Segments: []Segment{{Name: "InternetGatewayDevice"}, {Name: "ManagementServer"}, {Name: "URL"}},
			},
		},
		{
			name:  "vendor extension name",
			input: "Device.X_EXAMPLE-COM_Mode",
			want: &Path{
				Segments: []Segment{{Name: "Device"}, {Name: "X_EXAMPLE-COM_Mode"}},
			},
		},
		{
			name:  "surrounding whitespace",
			input: "  Device.  ",
			want: &Path{
				Segments: []Segment{{Name: "Device"}},
				IsObject: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got.Segments, tt.want.Segments) {
				t.Errorf("Segments = %+v, want %+v", got.Segments, tt.want.Segments)
			}
			if got.IsObject != tt.want.IsObject {
				t.Errorf("IsObject = %v, want %v", got.IsObject, tt.want.IsObject)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyPath},
		{"blank", "   ", ErrEmptyPath},
		{"leading dot", ".Device.", ErrInvalidPath},
		{"double dot", "Device..DynamicDNS.", ErrInvalidPath},
		{"starts with instance", "1.Enable", ErrInvalidPath},
		{"parameter ends with instance", "Device.DynamicDNS.Client.1", ErrInvalidPath},
		{"instance zero", "Device.DynamicDNS.Client.0.", ErrInvalidInstance},
		{"instance overflow", "Device.DynamicDNS.Client.99999999999.", ErrInvalidInstance},
		{"empty alias", "Device.DynamicDNS.Client.[].", ErrInvalidInstance},
		{"unterminated alias", "Device.DynamicDNS.Client.[home.", ErrInvalidInstance},
		{"bad name", "Device.Dyn@mic.", ErrInvalidPath},
		{"name starts with digit", "Device.1abc.", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []string{
		"Device.DynamicDNS.",
		"Device.DynamicDNS.Client.3.Enable",
		"Device.Routing.Router.{i}.IPv4Forwarding.{i}.",
		"Device.DynamicDNS.Client.[home].Hostname.2.",
	}
	for _, input := range tests {
		p, err := ParsePath(input)
		if err != nil {
			t.Fatalf("ParsePath(%q) error = %v", input, err)
		}
		if got := p.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestPathTemplate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Device.DynamicDNS.Client.3.", "Device.DynamicDNS.Client.{i}."},
		{"Device.DynamicDNS.Client.[home].Hostname.2.Name", "Device.DynamicDNS.Client.{i}.Hostname.{i}.Name"},
		{"Device.DynamicDNS.", "Device.DynamicDNS."},
	}
	for _, tt := range tests {
		p, err := ParsePath(tt.input)
		if err != nil {
			t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
		}
		if got := p.Template(); got != tt.want {
			t.Errorf("Template(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPathParameterAndObject(t *testing.T) {
	p, err := ParsePath("Device.DynamicDNS.Client.3.Enable")
	if err != nil {
		t.Fatalf("ParsePath error = %v", err)
	}
	if p.Parameter() != "Enable" {
		t.Errorf("Parameter() = %q, want Enable", p.Parameter())
	}
	if got := p.Object().String(); got != "Device.DynamicDNS.Client.3." {
		t.Errorf("Object() = %q", got)
	}
	if p.IsTemplate() {
		t.Error("IsTemplate() = true for a concrete path")
	}

	obj, _ := ParsePath("Device.DynamicDNS.Client.{i}.")
	if obj.Parameter() != "" {
		t.Errorf("Parameter() = %q for an object path", obj.Parameter())
	}
	if obj.Object() != obj {
		t.Error("Object() of an object path should return the path itself")
	}
	if !obj.IsTemplate() {
		t.Error("IsTemplate() = false for a template")
	}
}

func TestInstantiate(t *testing.T) {
	got, err := Instantiate("Device.Routing.Router.{i}.IPv4Forwarding.{i}.", 1, 4)
	if err != nil {
		t.Fatalf("Instantiate error = %v", err)
	}
	if got != "Device.Routing.Router.1.IPv4Forwarding.4." {
		t.Errorf("Instantiate = %q", got)
	}

	if _, err := Instantiate("Device.Routing.Router.{i}.IPv4Forwarding.{i}.", 1); !errors.Is(err, ErrInvalidInstance) {
		t.Errorf("too few instances: error = %v", err)
	}
	if _, err := Instantiate("Device.Routing.Router.{i}.", 1, 2); !errors.Is(err, ErrInvalidInstance) {
		t.Errorf("too many instances: error = %v", err)
	}
	if _, err := Instantiate("Device.Routing.Router.{i}.", 0); !errors.Is(err, ErrInvalidInstance) {
		t.Errorf("zero instance: error = %v", err)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		template string
		concrete string
		want     bool
	}{
		{"Device.DynamicDNS.Client.{i}.", "Device.DynamicDNS.Client.1.", true},
		{"Device.DynamicDNS.Client.{i}.", "Device.DynamicDNS.Client.[home].", true},
		{"Device.DynamicDNS.Client.{i}.Enable", "Device.DynamicDNS.Client.7.Enable", true},
		{"Device.DynamicDNS.", "Device.DynamicDNS.", true},
		{"Device.DynamicDNS.Client.{i}.", "Device.DynamicDNS.Server.1.", false},
		{"Device.DynamicDNS.Client.{i}.", "Device.DynamicDNS.Client.1.Enable", false},
		{"Device.DynamicDNS.Client.{i}.", "Device.DynamicDNS.Client.{i}.", false},
		{"Device.DynamicDNS.Client.1.", "Device.DynamicDNS.Client.2.", false},
		{"not a path..", "Device.", false},
	}
	for _, tt := range tests {
		if got := Match(tt.template, tt.concrete); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.template, tt.concrete, got, tt.want)
		}
	}
}
