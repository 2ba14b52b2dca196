package logs

// Spec is implemented by every managed server log category. The lifecycle is
// Parse -> Validate -> ConfigMapData/AddToTemplate; a Spec instance is
// constructed fresh for each reconciliation pass and discarded afterwards.
type Spec interface {
	Kind() Kind

	// Parse reads the log category's fragment of the specification document.
	// A nil or empty fragment is a no-op, fields missing from the fragment
	// keep their defaults. The prefix is the dotted path of the fragment and
	// is embedded in every error raised from it.
	Parse(fragment map[string]interface{}, prefix string) error

	// Validate checks the cross-field constraints of the parsed fragment.
	Validate() error

	// ConfigMapData renders the my.cnf drop-in for this log category, keyed by
	// its config file name.
	ConfigMapData() map[string]string

	// AddToTemplate merges the config-file volume and container mount into the
	// given pod template.
	AddToTemplate(template Template, containerName string, configMapName string) error
}

// NewSpecs returns one Spec per managed log category.
func NewSpecs() []Spec {
	return []Spec{
		NewErrorLog(),
		NewGeneralLog(),
		NewSlowQueryLog(),
	}
}
