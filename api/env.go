package api

import "fmt"

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

func (e Environment) String() string {
	switch e {
	case LOCAL:
		return "LOCAL"
	case PROD:
		return "PROD"
	default:
		return fmt.Sprintf("Environment(%d)", int(e))
	}
}

// UnmarshalText lets Environment be read straight from env vars.
func (e *Environment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "LOCAL", "local":
		*e = LOCAL
	case "PROD", "prod":
		*e = PROD
	default:
		return fmt.Errorf("unknown environment %q", string(text))
	}
	return nil
}
