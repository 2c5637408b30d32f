package interfaces

// SnapshotStoreInterface keeps one opaque snapshot per key. Save replaces the
// whole value; Load returns nil data and no error for a key never saved.
type SnapshotStoreInterface interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Close()
}
