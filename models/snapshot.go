package models

import "github.com/google/uuid"

// SnapshotInfo summarizes a committed document load. The ID correlates
// log lines and upload responses with the snapshot currently served.
type SnapshotInfo struct {
	ID               uuid.UUID `json:"id"`
	Timestamp        string    `json:"timestamp,omitempty"`
	ComponentCount   int       `json:"componentCount"`
	CryptoAssetCount int       `json:"cryptoAssetCount"`
	EdgeCount        int       `json:"edgeCount"`
	DroppedEdgeCount int       `json:"droppedEdgeCount"`
}
