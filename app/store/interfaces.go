package store

// PriorityStore persists the single tile priority hint under one
// well-known key. An empty value means no override is in effect.
type PriorityStore interface {
	Get() (string, error)
	Set(value string) error
	Clear() error
}
