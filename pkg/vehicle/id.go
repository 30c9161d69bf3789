package vehicle

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID is an opaque record identifier assigned by the remote store on creation
// and immutable thereafter. It decodes from either a JSON string or a JSON
// number. A canonical number token (digits only, no sign, no leading zero)
// re-encodes as a JSON number, so an id the store assigned numerically is
// never silently turned into a quoted string on the wire; every other id
// re-encodes as a string, which keeps ids like "007" valid JSON.
type ID string

// IsZero reports whether the id has not been assigned yet.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both "42" and 42.
func (id *ID) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		*id = ""
		return nil
	}
	if len(token) >= 2 && token[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON re-emits canonical number tokens as JSON numbers and
// everything else as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte(`""`), nil
	}
	if isCanonicalNumber(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// isCanonicalNumber reports whether s is a JSON number token that survives a
// decode/encode round trip byte for byte: digits only, no sign, no leading
// zero. Ids like "007" or "+42" fail this and must stay quoted to remain
// valid JSON.
func isCanonicalNumber(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
