package domain

import "time"

// Account represents a registered user of the network.
//
// Password is stored exactly as supplied at signup. That matches the
// observable behavior this service reproduces and is a known weakness,
// not an oversight; see DESIGN.md before changing it.
type Account struct {
	ID         int64
	Name       string
	Email      string
	Password   string
	Birthday   string
	Network    string
	AvatarPath string
	CreatedAt  time.Time
}
