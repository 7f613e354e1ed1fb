package manifest

// Manifest is the decoded form of a YAML build description.
type Manifest struct {
	// Env holds values visible to every when expression.
	Env map[string]any `yaml:"env,omitempty"`
	// Escape controls whether paths and outputs are escaped.
	// Nil means true.
	Escape     *bool   `yaml:"escape,omitempty"`
	Statements []Entry `yaml:"statements"`
}

// Entry is one element of the statements sequence. Exactly one of the
// statement fields must be set.
type Entry struct {
	Comment  *string   `yaml:"comment,omitempty"`
	Variable *Variable `yaml:"variable,omitempty"`
	Pool     *Pool     `yaml:"pool,omitempty"`
	Rule     *Rule     `yaml:"rule,omitempty"`
	Build    *Build    `yaml:"build,omitempty"`
	Phony    *Build    `yaml:"phony,omitempty"`
	Default  *[]string `yaml:"default,omitempty"`
	Subninja *string   `yaml:"subninja,omitempty"`
	Include  *string   `yaml:"include,omitempty"`
	When     string    `yaml:"when,omitempty"`
}

// Variable is a name = value binding.
type Variable struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Pool declares a named pool.
type Pool struct {
	Name      string     `yaml:"name"`
	Depth     int        `yaml:"depth"`
	Variables []Variable `yaml:"variables,omitempty"`
}

// Rule declares a rule and, optionally, the build edges that use it.
type Rule struct {
	Name           string     `yaml:"name"`
	Command        string     `yaml:"command"`
	Description    string     `yaml:"description,omitempty"`
	Depfile        string     `yaml:"depfile,omitempty"`
	Deps           string     `yaml:"deps,omitempty"`
	MSVCDepsPrefix string     `yaml:"msvc_deps_prefix,omitempty"`
	Pool           string     `yaml:"pool,omitempty"`
	Rspfile        string     `yaml:"rspfile,omitempty"`
	RspfileContent string     `yaml:"rspfile_content,omitempty"`
	InNewline      string     `yaml:"in_newline,omitempty"`
	Variables      []Variable `yaml:"variables,omitempty"`
	Builds         []Build    `yaml:"builds,omitempty"`
	Generator      bool       `yaml:"generator,omitempty"`
	Restat         bool       `yaml:"restat,omitempty"`
}

// Build declares a build edge. Rule is ignored for edges nested under a rule
// and for phony entries.
type Build struct {
	Rule            string     `yaml:"rule,omitempty"`
	Dyndep          string     `yaml:"dyndep,omitempty"`
	Pool            string     `yaml:"pool,omitempty"`
	When            string     `yaml:"when,omitempty"`
	Outputs         []string   `yaml:"outputs"`
	ImplicitOutputs []string   `yaml:"implicit_outputs,omitempty"`
	Inputs          []string   `yaml:"inputs,omitempty"`
	Implicit        []string   `yaml:"implicit,omitempty"`
	OrderOnly       []string   `yaml:"order_only,omitempty"`
	Validations     []string   `yaml:"validations,omitempty"`
	Variables       []Variable `yaml:"variables,omitempty"`
}

// key returns the statement key set in e and how many are set.
func (e *Entry) key() (string, int) {
	var (
		name string
		n    int
	)

	for k, set := range map[string]bool{
		"comment":  e.Comment != nil,
		"variable": e.Variable != nil,
		"pool":     e.Pool != nil,
		"rule":     e.Rule != nil,
		"build":    e.Build != nil,
		"phony":    e.Phony != nil,
		"default":  e.Default != nil,
		"subninja": e.Subninja != nil,
		"include":  e.Include != nil,
	} {
		if set {
			name = k
			n++
		}
	}

	return name, n
}
