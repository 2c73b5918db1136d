// Package memory provides the in-memory ClientRepository implementations:
// Repository, an unbounded map, and LimitedRepository, a fixed-capacity store
// that evicts the oldest inserted client first.
//
// Both types are safe for concurrent use. Save takes the write lock; ByID and
// the inspection methods take the read lock.
package memory
