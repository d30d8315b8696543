package roster

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/tradepost/cmdargs/matching"
)

var (
	ErrNameTaken = errors.New("name already taken")
	ErrIDTaken   = errors.New("id already taken")
	ErrNotFound  = errors.New("user not found")
)

var (
	_ matching.Pool[*User]       = (*Roster)(nil)
	_ matching.NameLookup[*User] = (*Roster)(nil)
)

// Roster is the live set of connected users, in join order. Names are
// unique case-insensitively, so a Roster can back UniqueNames matching.
type Roster struct {
	mut    sync.RWMutex
	users  []*User
	byName map[string]*User
	byID   map[string]*User
}

// New returns a roster holding users. Duplicates are rejected.
func New(users ...*User) (*Roster, error) {
	r := &Roster{
		byName: make(map[string]*User),
		byID:   make(map[string]*User),
	}
	for _, u := range users {
		if err := r.Join(u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Candidates returns a snapshot of the connected users.
func (r *Roster) Candidates() []*User {
	r.mut.RLock()
	defer r.mut.RUnlock()
	out := make([]*User, len(r.users))
	copy(out, r.users)
	return out
}

// LookupName finds the user whose name equals name, ignoring case.
func (r *Roster) LookupName(name string) (*User, bool) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	u, ok := r.byName[matching.Normalize(name)]
	return u, ok
}

// Lookup finds a user by id.
func (r *Roster) Lookup(id string) (*User, bool) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	u, ok := r.byID[matching.Normalize(id)]
	return u, ok
}

// Join adds u. A missing id is generated.
func (r *Roster) Join(u *User) error {
	if u.Nick == "" {
		return errors.New("user name is empty")
	}
	if u.UUID == "" {
		u.UUID = uuid.NewString()
	}

	r.mut.Lock()
	defer r.mut.Unlock()
	if _, ok := r.byName[matching.Normalize(u.Nick)]; ok {
		return errors.Wrapf(ErrNameTaken, "join %s", u.Nick)
	}
	if _, ok := r.byID[matching.Normalize(u.UUID)]; ok {
		return errors.Wrapf(ErrIDTaken, "join %s", u.UUID)
	}
	r.users = append(r.users, u)
	r.byName[matching.Normalize(u.Nick)] = u
	r.byID[matching.Normalize(u.UUID)] = u
	return nil
}

// Leave removes the user with id.
func (r *Roster) Leave(id string) (*User, error) {
	r.mut.Lock()
	defer r.mut.Unlock()
	u, ok := r.byID[matching.Normalize(id)]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "leave %s", id)
	}
	r.users = lo.Filter(r.users, func(other *User, _ int) bool { return other != u })
	delete(r.byName, matching.Normalize(u.Nick))
	delete(r.byID, matching.Normalize(u.UUID))
	return u, nil
}

// Rename changes the name of the user with id.
func (r *Roster) Rename(id, name string) error {
	r.mut.Lock()
	defer r.mut.Unlock()
	u, ok := r.byID[matching.Normalize(id)]
	if !ok {
		return errors.Wrapf(ErrNotFound, "rename %s", id)
	}
	if other, ok := r.byName[matching.Normalize(name)]; ok && other != u {
		return errors.Wrapf(ErrNameTaken, "rename %s", name)
	}
	delete(r.byName, matching.Normalize(u.Nick))
	u.Nick = name
	r.byName[matching.Normalize(name)] = u
	return nil
}

// Len returns the number of connected users.
func (r *Roster) Len() int {
	r.mut.RLock()
	defer r.mut.RUnlock()
	return len(r.users)
}

type rosterFile struct {
	Users []*User `yaml:"users"`
}

// Load reads a roster file:
//
//	users:
//	  - id: 3f1c2a44-0d5e-4e8b-9a3b-1f2e3d4c5b6a
//	    name: Anna
//	    label: "§dAnna"
func Load(path string) (*Roster, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read roster file")
	}
	var f rosterFile
	if err := yaml.Unmarshal(bs, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to parse roster file %s", path)
	}
	return New(f.Users...)
}
