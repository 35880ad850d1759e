package session

// Persisted preference keys. The names are kept stable so an existing
// preference database survives upgrades.
const (
	KeyFilters    = "leetcode_filters"         // FilterState as JSON
	KeySortBy     = "leetcode_sort_by"         // SortOption string
	KeyHideTags   = "leetcode_hide_tags"       // "true"/"false"
	KeyHideSolved = "leetcode_hide_solved"     // "true"/"false"
	KeySolved     = "leetcode_solved_problems" // JSON array of question ids
	KeyUsername   = "leetcode_username"        // plain handle string
)

// Store is the key/value persistence capability the session depends on.
//
// Implementations are scoped to one local installation (see
// repositories.PrefRepository). The session treats the store as an interface
// and never assumes a specific storage technology.
type Store interface {
	// Get returns the stored value for key and whether the key was present.
	Get(key string) (string, bool, error)

	// Set writes key to value, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
