// file: internal/project/serialize.go
package project

// Serialization adapters. A Name serializes to exactly its underlying
// string, and every decoding path funnels back through full validation;
// there is no looser acceptance path for deserialized input.

// String renders the name as its raw underlying string.
func (n Name) String() string {
	return n.value
}

// MarshalText implements encoding.TextMarshaler. The encoded form is the
// underlying string with no escaping or wrapping. encoding/json and
// gopkg.in/yaml.v3 both pick this up, so a Name field serializes as a
// plain string in either format.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by re-running full
// validation on the decoded string. A malformed value fails decoding with
// ErrInvalidName rather than producing a silently defaulted Name.
func (n *Name) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
