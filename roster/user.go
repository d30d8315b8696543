package roster

import (
	"fmt"

	"github.com/tradepost/cmdargs/matching"
)

var _ matching.Candidate = (*User)(nil)

// User is one connected user of the trading post.
type User struct {
	UUID  string `yaml:"id" json:"id"`
	Nick  string `yaml:"name" json:"name"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	// Vanished users are hidden from callers the visibility predicate
	// does not let through.
	Vanished bool `yaml:"vanished,omitempty" json:"vanished,omitempty"`
	Admin    bool `yaml:"admin,omitempty" json:"admin,omitempty"`
}

func (u *User) ID() string { return u.UUID }

func (u *User) Name() string { return u.Nick }

// DisplayName returns the decorated label, empty when the user has none.
func (u *User) DisplayName() string { return u.Label }

func (u *User) String() string {
	return fmt.Sprintf("%s (%s)", u.Nick, u.UUID)
}
