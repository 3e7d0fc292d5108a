package entity

// ConfigKeyInfo documents one configuration key for `lectern config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "presentation.autoplay_interval_ms".
	Key string `json:"key"`
	// Type is the Go type name of the value.
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists accepted values for string enums.
	Values []string `json:"values,omitempty"`
	// Range describes numeric constraints such as ">0".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}
