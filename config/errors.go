package config

import "fmt"

// Error is returned by Load for any unreadable or invalid configuration.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
