package score

import "testing"

func TestAcidTrackReproducible(t *testing.T) {
	e1 := drain(AcidTrack())
	e2 := drain(AcidTrack())

	if len(e1) != len(e2) {
		t.Fatalf("event counts differ: %d vs %d", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i] != e2[i] {
			t.Fatalf("event %d differs: %+v vs %+v", i, e1[i], e2[i])
		}
	}
}

func TestAcidTrackWithinArrangement(t *testing.T) {
	for _, e := range drain(AcidTrack()) {
		if e.Tick < 0 {
			t.Fatalf("negative tick: %+v", e)
		}
		// Events may hang over the last bar by a note duration, but not
		// by more than a beat.
		if e.Tick > TrackTicks+TicksPerBeat {
			t.Fatalf("event beyond arrangement: %+v", e)
		}
		if e.Key > 127 || e.Value > 127 {
			t.Fatalf("out of range event: %+v", e)
		}
	}
}

func TestAcidTrackUsesAllVoices(t *testing.T) {
	voices := map[string]bool{}
	for _, e := range drain(AcidTrack()) {
		voices[e.Instrument] = true
	}
	for _, ins := range TrackInstruments() {
		if !voices[ins.Name] {
			t.Errorf("voice %s has no events", ins.Name)
		}
	}
}

func TestFindInstrument(t *testing.T) {
	ins, ok := Find(TrackInstruments(), BassSub)
	if !ok {
		t.Fatal("BassSub not found")
	}
	if ins.Channel != 8 || ins.FarmPort != "virtual-8" {
		t.Errorf("BassSub = %+v", ins)
	}

	if _, ok := Find(AcidInstruments(), BassSub); ok {
		t.Error("BassSub should not be an acid voice")
	}
}
