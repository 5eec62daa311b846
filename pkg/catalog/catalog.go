// Package catalog bundles the object descriptors of every supported
// standard and moves them in and out of JSON, YAML and CBOR documents.
//
// An exported catalog is plain data: it carries the paths, parameter
// constraints and metadata of each object but no Go factories, so that
// tools outside this module can validate against the same rules.
package catalog

import (
	"fmt"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/tr098"
	"github.com/cwmp-go/tr069/pkg/tr104"
	"github.com/cwmp-go/tr069/pkg/tr104v2"
	"github.com/cwmp-go/tr069/pkg/tr106"
	"github.com/cwmp-go/tr069/pkg/tr143"
	"github.com/cwmp-go/tr069/pkg/tr181"
	"github.com/cwmp-go/tr069/pkg/tr196"
)

var registrars = []func(*model.Registry) error{
	tr098.Register,
	tr104.Register,
	tr104v2.Register,
	tr106.Register,
	tr143.Register,
	tr181.Register,
	tr196.Register,
}

// Build returns a registry holding the objects of every standard.
func Build() (*model.Registry, error) {
	reg := model.NewRegistry()
	for _, register := range registrars {
		if err := register(reg); err != nil {
			return nil, fmt.Errorf("building catalog: %w", err)
		}
	}
	return reg, nil
}

// Default is Build for callers that treat a broken catalog as a bug.
func Default() *model.Registry {
	reg, err := Build()
	if err != nil {
		panic(err)
	}
	return reg
}
