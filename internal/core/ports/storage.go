package ports

// Durable key space shared with previously stored sessions.
const (
	KeyCurrentUser = "currentUser"
	KeyLanguage    = "language"
)

// KeyValueStore is the best-effort local persistence boundary. Operations are
// synchronous and never return errors: a failed write is logged by the
// implementation and reported as false, and the caller carries on as if
// nothing was persisted. There are no retries.
type KeyValueStore interface {
	// Get unmarshals the stored value into v and reports whether the key existed
	// and decoded cleanly.
	Get(key string, v any) bool
	Set(key string, v any) bool
	Remove(key string) bool
}
