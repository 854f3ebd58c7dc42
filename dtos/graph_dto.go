package dtos

type GraphNodeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Tier string `json:"tier"`
}

type GraphEdgeDTO struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

type GraphDTO struct {
	Nodes            []GraphNodeDTO `json:"nodes"`
	Edges            []GraphEdgeDTO `json:"edges"`
	DroppedEdgeCount int            `json:"droppedEdgeCount"`
}
