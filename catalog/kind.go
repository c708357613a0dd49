package catalog

import (
	"fmt"
	"strings"
)

// Kind groups statements by the purpose they serve in a pipeline run.
// The zero value is invalid so a forgotten Kind is caught by validation.
type Kind int

const (
	Drop Kind = iota + 1
	Create
	Copy
	Insert
)

// Kinds lists every Kind in the order an orchestrator must execute them.
var Kinds = []Kind{Drop, Create, Copy, Insert}

var kindNames = map[Kind]string{
	Drop:   "drop",
	Create: "create",
	Copy:   "copy",
	Insert: "insert",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText lets Kind render by name in YAML and JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown statement kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseKind converts a case-insensitive kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for k, v := range kindNames {
		if v == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown statement kind %q: use one of drop, create, copy, insert", s)
}
