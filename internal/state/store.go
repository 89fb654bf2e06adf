package state

// Record captures the five persisted fields of one audit pass. It is written
// and read as a single unit so a partially updated prior result can never be
// observed.
type Record struct {
	Has32      bool   `yaml:"has32"`
	Has64      bool   `yaml:"has64"`
	Has64First bool   `yaml:"has64_first"`
	Path32     string `yaml:"path32"`
	Path64     string `yaml:"path64"`
}

// ResultStore persists the prior audit record between invocations within one
// session. Implementations treat missing state as "not found" rather than an
// error; callers treat errors as equivalent to missing state.
type ResultStore interface {
	Load() (Record, bool, error)
	Save(record Record) error
}

// MemoryStore keeps the prior record in process memory. Suitable for hosts
// that invoke the audit repeatedly within one process lifetime.
type MemoryStore struct {
	record Record
	stored bool
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored record and whether one has been saved.
func (store *MemoryStore) Load() (Record, bool, error) {
	return store.record, store.stored, nil
}

// Save overwrites the stored record.
func (store *MemoryStore) Save(record Record) error {
	store.record = record
	store.stored = true
	return nil
}
