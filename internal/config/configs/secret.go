package configs

const redacted = "<redacted>"

// Secret is a string that must not show up in logs or dumps. Formatting
// verbs and text marshalling print a placeholder; use [Secret.Expose] to
// read the value.
type Secret string

// Expose returns the underlying value.
func (s Secret) Expose() string {
	return string(s)
}

// IsSet reports whether the secret holds a non-empty value.
func (s Secret) IsSet() bool {
	return s != ""
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
