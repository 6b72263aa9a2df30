package types

import "fmt"

// Status is the bond status of a validator on the provider.
type Status int

const (
	Bonded Status = iota
	Unbonding
	Unbonded
)

var statusNames = map[Status]string{
	Bonded:    "bonded",
	Unbonding: "unbonding",
	Unbonded:  "unbonded",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for k, v := range statusNames {
		if v == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
