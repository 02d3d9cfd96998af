package guidance

// ToolConfig is the YAML definition of one guidance tool. Guidance tools do
// not touch the store themselves; they hand the agent curated SPARQL patterns
// for a family of questions about the spendcast graph.
type ToolConfig struct {
	// Name is the unique tool identifier (e.g. "analyze-spending").
	Name string `yaml:"name"`

	// Description is the operational description of the tool.
	Description string `yaml:"description"`

	// Intent tells the agent WHEN to reach for this tool.
	Intent string `yaml:"intent,omitempty"`

	// Examples are worked question/query pairs.
	Examples []ExampleConfig `yaml:"examples,omitempty"`

	// ReferenceSchema hints at the relevant graph vocabulary.
	ReferenceSchema *ReferenceSchemaConfig `yaml:"reference_schema,omitempty"`

	// Parameters defines typed inputs the agent should substitute into the
	// reference queries before execution.
	Parameters []ParameterConfig `yaml:"parameters,omitempty"`

	// Category is derived from the folder structure (e.g. "finance"), not
	// read from YAML.
	Category string `yaml:"-"`
}

// ExampleConfig pairs a natural-language question with its canonical SPARQL.
type ExampleConfig struct {
	Question string `yaml:"question"`
	SPARQL   string `yaml:"sparql"`
}

// ReferenceSchemaConfig lists graph vocabulary relevant to the tool.
type ReferenceSchemaConfig struct {
	// Classes are pfm: classes the queries revolve around.
	Classes []string `yaml:"classes,omitempty"`

	// Properties are pfm: properties commonly needed.
	Properties []string `yaml:"properties,omitempty"`

	// Prefixes are PREFIX declarations the queries must carry.
	Prefixes []string `yaml:"prefixes,omitempty"`
}

// ParameterConfig defines a typed input parameter.
type ParameterConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	Default     any    `yaml:"default,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}
