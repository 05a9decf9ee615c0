package session

// Keys of the durable session record. Both entries are written together on
// login and removed together on logout.
const (
	TokenKey = "wms_token"
	UserKey  = "wms_user"
)

// Storage is the durable key-value backing of the session record.
type Storage interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes the value for key, creating or replacing it.
	Set(key, value string) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}
