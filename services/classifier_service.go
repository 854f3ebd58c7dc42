package services

import (
	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/shared"
	"github.com/l3montree-dev/cbomlens/utils"
)

type classifierService struct{}

func NewClassifierService() shared.ClassifierService {
	return &classifierService{}
}

// Classify derives the scalar tags of a single component. It is total -
// malformed or absent properties degrade to the unknown sentinel, there
// is no error path.
func (s *classifierService) Classify(component cdx.Component) models.ClassifiedComponent {
	props := normalize.FlattenProperties(component)
	kind := models.KindFromComponentType(component.Type)
	classification := normalize.PropertyOrUnknown(props, normalize.PropertyVulnerability)

	return models.ClassifiedComponent{
		Component:      &component,
		Kind:           kind,
		Primitive:      normalize.PropertyOrUnknown(props, normalize.PropertyPrimitive),
		Provider:       normalize.PropertyOrUnknown(props, normalize.PropertyProvider),
		Classification: classification,
		Operation:      normalize.PropertyOrUnknown(props, normalize.PropertyOperation),
		Tier:           models.TierFor(kind, classification),
		OutboundImpact: props[normalize.PropertyOutboundImpact],
		Properties:     props,
	}
}

func (s *classifierService) ClassifyAll(components []cdx.Component) []models.ClassifiedComponent {
	return utils.Map(components, s.Classify)
}

// FilterByPrimitive returns the subset of components whose derived
// primitive equals category exactly. The AllPrimitives sentinel returns
// the input unfiltered. Order is preserved either way.
func FilterByPrimitive(components []models.ClassifiedComponent, category string) []models.ClassifiedComponent {
	if category == models.AllPrimitives {
		return components
	}
	return utils.Filter(components, func(component models.ClassifiedComponent) bool {
		return component.Primitive == category
	})
}
