package element

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"data-array/pkg/atom"
)

// namespace scopes element UUIDs so they never collide with UUIDs minted elsewhere.
var namespace = uuid.MustParse("5b0f6a1e-3c47-4d2b-9a55-0d8e4f7c2a91")

// Identity names an element. The pair is stable across runs and processes.
type Identity struct {
	Name    string
	Version uint32
}

func (id Identity) String() string {
	return id.Name + "@" + strconv.FormatUint(uint64(id.Version), 10)
}

// UUID returns the name-based UUID of the identity.
func (id Identity) UUID() uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(id.Name+"#"+strconv.FormatUint(uint64(id.Version), 10)))
}

// TypeID derives the atom type tag from the identity. Distinct identities can
// collide; Registry.Register detects that.
func (id Identity) TypeID() atom.TypeID {
	u := id.UUID()
	return atom.TypeID(uint32(xxhash.Sum64(u[:])))
}

// TypeFor is shorthand for Identity{name, version}.TypeID().
func TypeFor(name string, version uint32) atom.TypeID {
	return Identity{Name: name, Version: version}.TypeID()
}
