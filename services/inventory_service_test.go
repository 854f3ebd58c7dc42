package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/services"
	"github.com/l3montree-dev/cbomlens/shared"
)

const testDocument = `{
	"bomFormat": "CycloneDX",
	"specVersion": "1.6",
	"metadata": {"timestamp": "2025-06-01T12:00:00Z"},
	"components": [
		{
			"bom-ref": "file:src/main.c",
			"type": "file",
			"name": "src/main.c",
			"properties": [
				{"name": "impact.outbound.count", "value": "2"}
			]
		},
		{
			"bom-ref": "asset:aes-128-gcm",
			"type": "data",
			"name": "AES-128-GCM",
			"properties": [
				{"name": "primitive", "value": "blockcipher"},
				{"name": "provider", "value": "openssl"},
				{"name": "pqm.vulnerability", "value": "symmetric-safe"},
				{"name": "operation", "value": "encrypt"}
			]
		},
		{
			"bom-ref": "asset:rsa-2048",
			"type": "data",
			"name": "RSA-2048",
			"properties": [
				{"name": "primitive", "value": "signature"},
				{"name": "provider", "value": "openssl"},
				{"name": "pqm.vulnerability", "value": "quantum-vulnerable"},
				{"name": "weaknesses", "value": "factorable by shor"}
			],
			"evidence": {
				"occurrences": [
					{"location": "src/main.c", "line": 12}
				]
			}
		}
	],
	"dependencies": [
		{"ref": "file:src/main.c", "dependsOn": ["asset:aes-128-gcm", "asset:rsa-2048", "asset:ghost"]}
	]
}`

func newInventoryService() shared.InventoryService {
	return services.NewInventoryService(
		services.NewClassifierService(),
		services.NewStatisticsService(),
		services.NewGraphService(),
	)
}

func TestInventoryService(t *testing.T) {
	t.Run("accessors before the first load", func(t *testing.T) {
		inventory := newInventoryService()

		_, ok := inventory.Info()
		assert.False(t, ok)
		_, ok = inventory.Statistics()
		assert.False(t, ok)
		_, ok = inventory.DependencyGraph()
		assert.False(t, ok)
		assert.Empty(t, inventory.CryptoAssets(models.AllPrimitives))
		_, ok = inventory.Lookup("asset:rsa-2048")
		assert.False(t, ok)
	})

	t.Run("load commits a consistent snapshot", func(t *testing.T) {
		inventory := newInventoryService()

		info, err := inventory.LoadDocument(strings.NewReader(testDocument))

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-01T12:00:00Z", info.Timestamp)
		assert.Equal(t, 3, info.ComponentCount)
		assert.Equal(t, 2, info.CryptoAssetCount)
		assert.Equal(t, 2, info.EdgeCount)
		assert.Equal(t, 1, info.DroppedEdgeCount)

		stats, ok := inventory.Statistics()
		assert.True(t, ok)
		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, map[string]int{"blockcipher": 1, "signature": 1}, stats.ByPrimitive)
		assert.Len(t, stats.Weaknesses, 1)
		assert.Equal(t, "src/main.c", stats.Weaknesses[0].Location)

		graph, ok := inventory.DependencyGraph()
		assert.True(t, ok)
		assert.Equal(t, 3, graph.NodeCount())
		assert.Equal(t, 2, graph.EdgeCount())
		assert.Equal(t, 1, graph.DroppedEdges)
	})

	t.Run("crypto assets honor the primitive filter", func(t *testing.T) {
		inventory := newInventoryService()
		_, err := inventory.LoadDocument(strings.NewReader(testDocument))
		assert.NoError(t, err)

		all := inventory.CryptoAssets(models.AllPrimitives)
		assert.Len(t, all, 2)
		assert.Equal(t, "AES-128-GCM", all[0].GetName())

		signatures := inventory.CryptoAssets("signature")
		assert.Len(t, signatures, 1)
		assert.Equal(t, "RSA-2048", signatures[0].GetName())

		assert.Empty(t, inventory.CryptoAssets("streamcipher"))
	})

	t.Run("lookup resolves file and asset nodes", func(t *testing.T) {
		inventory := newInventoryService()
		_, err := inventory.LoadDocument(strings.NewReader(testDocument))
		assert.NoError(t, err)

		node, ok := inventory.Lookup("file:src/main.c")
		assert.True(t, ok)
		assert.Equal(t, models.KindFile, node.Element.Kind)
		assert.Equal(t, "2", node.Element.OutboundImpact)

		_, ok = inventory.Lookup("asset:ghost")
		assert.False(t, ok)
	})

	t.Run("parse failure keeps the previous snapshot", func(t *testing.T) {
		inventory := newInventoryService()
		first, err := inventory.LoadDocument(strings.NewReader(testDocument))
		assert.NoError(t, err)

		_, err = inventory.LoadDocument(strings.NewReader(`{"components": [`))
		assert.Error(t, err)
		var parseError *normalize.ParseError
		assert.True(t, errors.As(err, &parseError))

		info, ok := inventory.Info()
		assert.True(t, ok)
		assert.Equal(t, first.ID, info.ID)
	})

	t.Run("a new load replaces the snapshot entirely", func(t *testing.T) {
		inventory := newInventoryService()
		first, err := inventory.LoadDocument(strings.NewReader(testDocument))
		assert.NoError(t, err)

		second, err := inventory.LoadDocument(strings.NewReader(`{
			"bomFormat": "CycloneDX",
			"specVersion": "1.6",
			"components": [
				{"bom-ref": "asset:sha-256", "type": "data", "name": "SHA-256"}
			]
		}`))
		assert.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		stats, ok := inventory.Statistics()
		assert.True(t, ok)
		assert.Equal(t, 1, stats.Total)

		_, ok = inventory.Lookup("asset:rsa-2048")
		assert.False(t, ok)
	})
}
