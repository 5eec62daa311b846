// Package specparse provides the YAML types and loaders for the data model
// definition files under defs/. The generator (tr069-gen) reads them to
// produce the node types of each standard.
//
// A generator config lists the packages to generate:
//
//	module: github.com/cwmp-go/tr069
//	packages:
//	  - name: tr181
//	    dir: pkg/tr181
//	    standard: TR-181
//	    version: "Device:2.12"
//	    files: [defs/tr181/routing.yaml]
//
// Each definition file holds a list of objects with their parameters and
// children.
package specparse
