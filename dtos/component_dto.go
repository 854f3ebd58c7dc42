package dtos

// ComponentDTO is the list representation of a classified component.
type ComponentDTO struct {
	Ref            string `json:"ref"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	Primitive      string `json:"primitive"`
	Provider       string `json:"provider"`
	Classification string `json:"classification"`
	Operation      string `json:"operation"`
	Tier           string `json:"tier"`
	OutboundImpact string `json:"outboundImpact,omitempty"`
}

type HashDTO struct {
	Algorithm string `json:"alg,omitempty"`
	Content   string `json:"content"`
}

type OccurrenceDTO struct {
	File    string `json:"file,omitempty"`
	Line    *int   `json:"line,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// ComponentDetailDTO extends the list representation with everything the
// detail pane shows: the raw property bag, content hashes and evidence
// occurrences.
type ComponentDetailDTO struct {
	ComponentDTO
	Properties  map[string]string `json:"properties"`
	Hashes      []HashDTO         `json:"hashes"`
	Occurrences []OccurrenceDTO   `json:"occurrences"`
}
