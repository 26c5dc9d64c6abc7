package domform

// Config holds configuration for the form manager
type Config struct {
	// Identity
	IDAttribute string `json:"id_attribute" yaml:"id_attribute"`
	IDPrefix    string `json:"id_prefix" yaml:"id_prefix"`

	// Validation
	ErrorClass      string `json:"error_class" yaml:"error_class"`
	RequiredMessage string `json:"required_message" yaml:"required_message"`

	// Paths: the largest bracket index that addresses a list element.
	// Larger digit keys are stored as map keys.
	MaxListIndex int `json:"max_list_index" yaml:"max_list_index"`

	// Metrics
	MetricsNamespace string `json:"metrics_namespace" yaml:"metrics_namespace"`
}
