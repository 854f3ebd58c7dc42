package services

import (
	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/shared"
)

type graphService struct{}

func NewGraphService() shared.GraphService {
	return &graphService{}
}

// BuildGraph materializes the file-to-asset dependency graph over all
// components of a document, file and data kinds alike. Dangling declared
// edges are dropped silently and only surface in the graph's counter.
func (s *graphService) BuildGraph(components []models.ClassifiedComponent, dependencies []cdx.Dependency) *normalize.Graph[models.ClassifiedComponent] {
	return normalize.BuildDependencyGraph(components, dependencies)
}
