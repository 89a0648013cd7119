package segment

import "encoding/json"

// Store is the in-memory segment collection for one audio file. Insertion
// order is preserved, with one exception: re-adding an existing name removes
// the old entry first and appends the new one, so the segment moves to the
// end. At most one segment exists per name.
//
// A Store belongs to the session that loaded the current file and is
// replaced wholesale when a new file is opened; it is not safe for
// concurrent use.
type Store struct {
	segments []Segment
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts a segment, replacing any existing segment with the same name.
func (st *Store) Add(seg Segment) {
	st.Remove(seg.Name)
	st.segments = append(st.segments, seg)
}

// Remove deletes every segment with the given name.
func (st *Store) Remove(name string) {
	kept := st.segments[:0]
	for _, s := range st.segments {
		if s.Name != name {
			kept = append(kept, s)
		}
	}
	st.segments = kept
}

// Get returns the first segment with the given name.
func (st *Store) Get(name string) (Segment, bool) {
	for _, s := range st.segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

// List returns a snapshot of the segments in order. Mutating the returned
// slice does not affect the store.
func (st *Store) List() []Segment {
	out := make([]Segment, len(st.segments))
	copy(out, st.segments)
	return out
}

// Len returns the number of segments.
func (st *Store) Len() int {
	return len(st.segments)
}

type storeJSON struct {
	Segments []Segment `json:"segments"`
}

// MarshalJSON encodes the store as {"segments": [...]} in order.
func (st *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(storeJSON{Segments: st.List()})
}

// UnmarshalJSON rebuilds the store through Add, so a malformed file holding
// duplicate names collapses to one entry per name: the last occurrence wins
// and ends up at the end of the order.
func (st *Store) UnmarshalJSON(data []byte) error {
	var raw storeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st.segments = nil
	for _, seg := range raw.Segments {
		st.Add(seg)
	}
	return nil
}
