package normalize

import (
	"io"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/pkg/errors"
)

// Property names consumed by the classifier. A CBOM generator attaches
// these to cryptographic-asset components; every one of them is optional.
const (
	PropertyPrimitive      = "primitive"
	PropertyProvider       = "provider"
	PropertyVulnerability  = "pqm.vulnerability"
	PropertyOperation      = "operation"
	PropertyWeaknesses     = "weaknesses"
	PropertyOutboundImpact = "impact.outbound.count"
)

// Vulnerability classification values with defined tier semantics. Any
// other value is carried verbatim and rendered as the neutral tier.
const (
	ClassificationQuantumVulnerable = "quantum-vulnerable"
	ClassificationSymmetricSafe     = "symmetric-safe"
)

// ValueUnknown is the sentinel for absent or empty classification tags.
// Components tagged unknown still count toward every statistic.
const ValueUnknown = "unknown"

// ParseError is returned when an uploaded document is not a syntactically
// valid CycloneDX JSON BOM. Semantic gaps (missing fields, dangling refs)
// are never a ParseError - they are absorbed downstream.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string {
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// DecodeCBOM parses a CycloneDX CBOM from r. It performs no validation
// beyond JSON decoding - absent components, dependencies or metadata are
// left nil and handled by the accessors below.
func DecodeCBOM(r io.Reader) (*cdx.BOM, error) {
	var bom cdx.BOM
	if err := cdx.NewBOMDecoder(r, cdx.BOMFileFormatJSON).Decode(&bom); err != nil {
		return nil, &ParseError{err: errors.Wrap(err, "could not decode document as CycloneDX BOM")}
	}
	return &bom, nil
}

func Components(bom *cdx.BOM) []cdx.Component {
	if bom == nil || bom.Components == nil {
		return []cdx.Component{}
	}
	return *bom.Components
}

func Dependencies(bom *cdx.BOM) []cdx.Dependency {
	if bom == nil || bom.Dependencies == nil {
		return []cdx.Dependency{}
	}
	return *bom.Dependencies
}

func Timestamp(bom *cdx.BOM) string {
	if bom == nil || bom.Metadata == nil {
		return ""
	}
	return bom.Metadata.Timestamp
}

// FlattenProperties builds the lookup table for a component's property
// bag. Property names are NOT unique - generators emit duplicates - so
// the later occurrence wins. A property without a value flattens to the
// empty string.
func FlattenProperties(component cdx.Component) map[string]string {
	props := make(map[string]string)
	if component.Properties == nil {
		return props
	}
	for _, p := range *component.Properties {
		props[p.Name] = p.Value
	}
	return props
}

// PropertyOrUnknown reads a flattened property, mapping absent or empty
// values to the unknown sentinel.
func PropertyOrUnknown(props map[string]string, name string) string {
	if v := props[name]; v != "" {
		return v
	}
	return ValueUnknown
}

// Weakness returns the trimmed weaknesses property of a component and
// whether it constitutes a finding. Blank values contribute nothing.
func Weakness(props map[string]string) (string, bool) {
	v := strings.TrimSpace(props[PropertyWeaknesses])
	return v, v != ""
}

// FirstOccurrenceLocation returns the file path of the first evidence
// occurrence substantiating a component, or the unknown sentinel if the
// component carries no evidence.
func FirstOccurrenceLocation(component cdx.Component) string {
	if component.Evidence == nil || component.Evidence.Occurrences == nil {
		return ValueUnknown
	}
	for _, occurrence := range *component.Evidence.Occurrences {
		if occurrence.Location != "" {
			return occurrence.Location
		}
	}
	return ValueUnknown
}
