package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/cwmp-go/tr069/pkg/model"
)

// ErrUnknownFormat is returned for a format name other than json, yaml or
// cbor.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Format is a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat accepts a format name in any case; "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// cborEncMode sorts map keys canonically so equal catalogs encode to
// identical bytes.
var cborEncMode cbor.EncMode

var cborDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create catalog CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create catalog CBOR decoder mode: %v", err))
	}
}

// Export writes every definition of reg to w.
func Export(w io.Writer, reg *model.Registry, format Format) error {
	return Encode(w, NewDocument(reg), format)
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		return cborEncMode.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads a document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatCBOR:
		err = cborDecMode.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Import reads a document from r and rebuilds its descriptors.
func Import(r io.Reader, format Format) (*model.Registry, error) {
	doc, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return doc.Registry()
}
