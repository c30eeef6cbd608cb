package dtos

// SarifDocument covers the parts of SARIF 2.1.0 needed to extract findings.
type SarifDocument struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []SarifRun `json:"runs"`
}

type SarifText struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
}

type SarifRule struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ShortDescription SarifText      `json:"shortDescription"`
	FullDescription  SarifText      `json:"fullDescription"`
	Help             SarifText      `json:"help"`
	HelpURI          string         `json:"helpUri"`
	Properties       map[string]any `json:"properties"`
	// defaultConfiguration.level is used if a result has no level
	DefaultConfiguration struct {
		Level string `json:"level"`
	} `json:"defaultConfiguration"`
}

type SarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []SarifRule `json:"rules"`
}

type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

type SarifRun struct {
	Tool    SarifTool     `json:"tool"`
	Results []SarifResult `json:"results"`
}

type SarifArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId,omitempty"`
}

type SarifRegion struct {
	StartLine   FlexInt   `json:"startLine"`
	StartColumn FlexInt   `json:"startColumn"`
	EndLine     FlexInt   `json:"endLine"`
	EndColumn   FlexInt   `json:"endColumn"`
	Snippet     SarifText `json:"snippet"`
}

type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           SarifRegion           `json:"region"`
}

type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

type SarifResult struct {
	RuleID     string          `json:"ruleId"`
	RuleIndex  *int            `json:"ruleIndex"`
	Level      string          `json:"level"`
	Kind       string          `json:"kind"`
	Message    SarifText       `json:"message"`
	Locations  []SarifLocation `json:"locations"`
	Properties map[string]any  `json:"properties,omitempty"`
}
