package segment

import (
	"encoding/json"
	"testing"
)

func TestSegment_Duration(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want float64
	}{
		{"normal", Segment{Name: "Verse", Start: 10, End: 25}, 15},
		{"empty", Segment{Name: "Mark", Start: 10, End: 10}, 0},
		{"reversed clamps to zero", Segment{Name: "Bad", Start: 10, End: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStore_AddUpsertsAndMovesToEnd(t *testing.T) {
	st := NewStore()
	st.Add(Segment{Name: "Verse", Start: 0, End: 10})
	st.Add(Segment{Name: "Chorus", Start: 10, End: 20})
	st.Add(Segment{Name: "Verse", Start: 5, End: 15})

	list := st.List()
	if len(list) != 2 {
		t.Fatalf("Len() = %d, want 2", len(list))
	}
	if list[0].Name != "Chorus" {
		t.Errorf("list[0].Name = %q, want Chorus", list[0].Name)
	}
	if list[1].Name != "Verse" || list[1].Start != 5 || list[1].End != 15 {
		t.Errorf("list[1] = %+v, want replaced Verse at end", list[1])
	}
}

func TestStore_Remove(t *testing.T) {
	st := NewStore()
	st.Add(Segment{Name: "Verse", Start: 0, End: 10})
	st.Add(Segment{Name: "Chorus", Start: 10, End: 20})

	st.Remove("Verse")

	if _, ok := st.Get("Verse"); ok {
		t.Error("Get(Verse) found segment after Remove")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}

	// Removing an absent name is fine.
	st.Remove("Bridge")
	if st.Len() != 1 {
		t.Errorf("Len() = %d after removing absent name, want 1", st.Len())
	}
}

func TestStore_Get(t *testing.T) {
	st := NewStore()
	st.Add(Segment{Name: "Verse", Start: 3, End: 9})

	seg, ok := st.Get("Verse")
	if !ok {
		t.Fatal("Get(Verse) not found")
	}
	if seg.Start != 3 || seg.End != 9 {
		t.Errorf("Get(Verse) = %+v", seg)
	}

	if _, ok := st.Get("Chorus"); ok {
		t.Error("Get(Chorus) found, want absent")
	}
}

func TestStore_ListIsSnapshot(t *testing.T) {
	st := NewStore()
	st.Add(Segment{Name: "Verse", Start: 0, End: 10})

	list := st.List()
	list[0].Name = "Mutated"

	if got, _ := st.Get("Verse"); got.Name != "Verse" {
		t.Error("mutating List() result changed store contents")
	}
}

func TestStore_JSONRoundTrip(t *testing.T) {
	st := NewStore()
	st.Add(Segment{Name: "Intro", Start: 0, End: 8.5})
	st.Add(Segment{Name: "Solo", Start: 92.25, End: 118})

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := NewStore()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := st.List()
	gotList := got.List()
	if len(gotList) != len(want) {
		t.Fatalf("len = %d, want %d", len(gotList), len(want))
	}
	for i := range want {
		if gotList[i] != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, gotList[i], want[i])
		}
	}
}

func TestStore_UnmarshalDuplicateNamesLastWins(t *testing.T) {
	data := []byte(`{"segments":[
		{"name":"Verse","start_sec":0,"end_sec":10},
		{"name":"Chorus","start_sec":10,"end_sec":20},
		{"name":"Verse","start_sec":30,"end_sec":40}
	]}`)

	st := NewStore()
	if err := json.Unmarshal(data, st); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	list := st.List()
	if len(list) != 2 {
		t.Fatalf("Len() = %d, want 2", len(list))
	}
	// The later duplicate overwrites and moves to the end.
	if list[0].Name != "Chorus" {
		t.Errorf("list[0].Name = %q, want Chorus", list[0].Name)
	}
	if list[1].Name != "Verse" || list[1].Start != 30 {
		t.Errorf("list[1] = %+v, want last Verse occurrence", list[1])
	}
}
