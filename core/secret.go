package core

// Secret holds an API key or other credential.
// Formatting, JSON and text marshaling all print [REDACTED].
//
//	key := NewSecret("sk-abc123")
//	fmt.Println(key)  // [REDACTED]
//	key.Expose()      // "sk-abc123"
type Secret struct {
	value string
}

// NewSecret creates a new Secret from a string value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

func (s Secret) String() string {
	return "[REDACTED]"
}

func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON keeps the key out of JSON log lines.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText keeps the key out of YAML and slog text output.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// Expose returns the actual value, for use in an Authorization header.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether no value is set.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
