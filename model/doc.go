// Package model classifies the properties of persistence model types.
//
// Reflect[T] reads the declarative metadata of T once and partitions its
// properties into ordered sets that statement builders consume: keys,
// generated, concurrency tokens, and the selectable, insertable and
// updatable columns. Every set is ordered by explicit order first (columns
// without one last), then by name.
//
// Metadata comes from struct tags,
//
//	type User struct {
//		ID      int64  `model:"key,generated=identity"`
//		Name    string `model:"order=0"`
//		Version int    `model:"concurrency"`
//		Cache   []byte `model:"-"`
//	}
//
// from a Table method for the table identity, or from a Schema registered
// at startup, which may itself be decoded from YAML with ParseSchema.
// A registered schema takes precedence over tags.
package model
