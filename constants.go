package domform

import "github.com/cybergodev/domform/internal"

const (
	// Identity
	DefaultIDAttribute = "data-form-id"
	DefaultIDPrefix    = "form-"

	// Validation
	DefaultErrorClass      = "border-red-500"
	DefaultRequiredMessage = "This field is required"
	ShortRequiredMessage   = "Required"

	// Paths
	DefaultMaxListIndex = internal.DefaultMaxListIndex
	MaxListIndexLimit   = 1 << 20

	// Metrics
	DefaultMetricsNamespace = "domform"

	// Logging
	MaxLoggedPathLength  = 100
	MaxLoggedErrorLength = 200
)

// Event types the Manager subscribes to
const (
	EventInput  = "input"
	EventChange = "change"
	EventBlur   = "blur"
	EventSubmit = "submit"
)
