package dtos

// WeaknessFindingDTO is one flagged cryptographic asset. Location is the
// file path of the first evidence occurrence, or "unknown".
type WeaknessFindingDTO struct {
	ComponentName string `json:"componentName"`
	Description   string `json:"description"`
	Location      string `json:"location"`
}

type StatisticsDTO struct {
	Total            int                  `json:"total"`
	ByPrimitive      map[string]int       `json:"byPrimitive"`
	ByProvider       map[string]int       `json:"byProvider"`
	ByClassification map[string]int       `json:"byClassification"`
	ByOperation      map[string]int       `json:"byOperation"`
	Weaknesses       []WeaknessFindingDTO `json:"weaknesses"`
}
