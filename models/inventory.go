package models

import (
	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/l3montree-dev/cbomlens/normalize"
)

// ComponentKind is the closed variant over the CycloneDX component type.
// Everything that is neither a source file nor a cryptographic asset maps
// to KindOther so downstream code has to handle it deliberately.
type ComponentKind string

const (
	KindFile  ComponentKind = "file"
	KindData  ComponentKind = "data"
	KindOther ComponentKind = "other"
)

func KindFromComponentType(componentType cdx.ComponentType) ComponentKind {
	switch componentType {
	case cdx.ComponentTypeFile:
		return KindFile
	case cdx.ComponentTypeData:
		return KindData
	default:
		return KindOther
	}
}

// RiskTier is the abstract severity classification derived from kind and
// vulnerability classification. Concrete color encoding belongs to the
// presentation layer.
type RiskTier string

const (
	TierRed   RiskTier = "red"
	TierGreen RiskTier = "green"
	TierGray  RiskTier = "gray"
	TierBlue  RiskTier = "blue"
)

// TierFor derives the risk tier. Source files always render neutral blue
// regardless of their properties; only cryptographic assets carry risk.
func TierFor(kind ComponentKind, classification string) RiskTier {
	if kind == KindFile {
		return TierBlue
	}
	if kind != KindData {
		return TierGray
	}
	switch classification {
	case normalize.ClassificationQuantumVulnerable:
		return TierRed
	case normalize.ClassificationSymmetricSafe:
		return TierGreen
	default:
		return TierGray
	}
}

// ClassifiedComponent is a CBOM component plus its derived scalar tags.
// It is recomputed from scratch on every document load, never mutated.
type ClassifiedComponent struct {
	Component *cdx.Component

	Kind           ComponentKind
	Primitive      string
	Provider       string
	Classification string
	Operation      string
	Tier           RiskTier

	// OutboundImpact is the verbatim impact.outbound.count property of
	// file components. It is display metadata, never aggregated.
	OutboundImpact string

	// Properties is the flattened last-occurrence-wins view of the
	// component's property bag.
	Properties map[string]string
}

func (c ClassifiedComponent) GetID() string {
	return c.Component.BOMRef
}

func (c ClassifiedComponent) GetName() string {
	return c.Component.Name
}

// AllPrimitives is the category sentinel that disables primitive
// filtering. Concrete categories match case-sensitively, so a real
// primitive named "unknown" has to be requested explicitly.
const AllPrimitives = "*"

// WeaknessFinding flags a cryptographic asset whose weaknesses property
// is non-blank. Location points at the first evidence occurrence.
type WeaknessFinding struct {
	ComponentName string `json:"componentName"`
	Description   string `json:"description"`
	Location      string `json:"location"`
}

// InventoryStatistics are the aggregate counts over the cryptographic
// assets of one document. All four groupings key the unknown sentinel
// like any other tag value.
type InventoryStatistics struct {
	Total            int               `json:"total"`
	ByPrimitive      map[string]int    `json:"byPrimitive"`
	ByProvider       map[string]int    `json:"byProvider"`
	ByClassification map[string]int    `json:"byClassification"`
	ByOperation      map[string]int    `json:"byOperation"`
	Weaknesses       []WeaknessFinding `json:"weaknesses"`
}

func NewInventoryStatistics() InventoryStatistics {
	return InventoryStatistics{
		ByPrimitive:      map[string]int{},
		ByProvider:       map[string]int{},
		ByClassification: map[string]int{},
		ByOperation:      map[string]int{},
		Weaknesses:       []WeaknessFinding{},
	}
}
