package score

import "math/rand"

// Generated track shape: 32 bars of 4 beats at 4 ticks per beat.
const (
	TrackBars   = 32
	BeatsPerBar = 4
	TrackTicks  = TrackBars * BeatsPerBar * TicksPerBeat
	trackSeed   = 42 // fixed so the arrangement is reproducible
)

// AcidTrack builds the full eight-voice arrangement: acid bassline with
// overlapping slides, sub bass, dense 909 drums, lead stabs, an
// arpeggiator, ambient pads, vocal chops and a riser in the breakdown.
func AcidTrack() *Queue {
	rng := rand.New(rand.NewSource(trackSeed))
	q := &Queue{}

	// TB303: acid bassline with slides and dynamic CCs
	for bar := 0; bar < TrackBars; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		pattern := [8]int{0, 3, 5, 0, 7, 10, 3, 5}
		if bar%2 != 0 {
			pattern = [8]int{0, 5, 10, 0, 3, 7, 5, 3}
		}
		for i := 0; i < 8; i++ {
			tick := start + i*2
			if rng.Float64() >= 0.95 {
				continue
			}
			note := clampNote(TrackNoteBase + minorPentatonic[pattern[i]%len(minorPentatonic)])
			velocity := uint8(90 + rng.Intn(21) - 10)
			duration := 2
			if rng.Float64() < 0.7 {
				duration = 3 // longer for slides
			}
			q.Add(Event{tick, TB303, NoteOn, note, velocity})
			q.Add(Event{tick + duration, TB303, NoteOff, note, 0})
			slide := uint8(0)
			if rng.Float64() < 0.8 {
				slide = 127
			}
			q.Add(Event{tick, TB303, CC, 5, slide})
			q.Add(Event{tick + duration, TB303, CC, 5, 0})
			q.Add(Event{tick, TB303, CC, 71, uint8(80 + rng.Intn(41))})
			q.Add(Event{tick, TB303, CC, 74, uint8(60 + rng.Intn(51))})
		}
	}

	// BassSub: deep sub bass from bar 2
	for bar := 2; bar < TrackBars; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		for beat := 0; beat < 4; beat++ {
			tick := start + beat*TicksPerBeat
			note := clampNote(TrackNoteBase - Octave)
			q.Add(Event{tick, BassSub, NoteOn, note, 100})
			q.Add(Event{tick + 2, BassSub, NoteOff, note, 0})
		}
	}

	// BP909: dense drum pattern with variation
	for bar := 0; bar < TrackBars; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		for beat := 0; beat < 4; beat++ {
			tick := start + beat*TicksPerBeat

			// Kick on every beat, occasional offbeat double
			q.Add(Event{tick, BP909, NoteOn, drumNotes["kick"], 100})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["kick"], 0})
			if rng.Float64() < 0.2 && beat%2 == 1 {
				q.Add(Event{tick + 2, BP909, NoteOn, drumNotes["kick"], 80})
				q.Add(Event{tick + 3, BP909, NoteOff, drumNotes["kick"], 0})
			}
			// Snare on 2 and 4
			if beat%2 == 1 {
				q.Add(Event{tick, BP909, NoteOn, drumNotes["snare"], 90})
				q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["snare"], 0})
			}
			// Clap on offbeats once the track is going
			if beat%2 == 1 && bar >= 4 {
				q.Add(Event{tick + 2, BP909, NoteOn, drumNotes["clap"], 85})
				q.Add(Event{tick + 3, BP909, NoteOff, drumNotes["clap"], 0})
			}
			// 16th-note closed hats
			for i := 0; i < 4; i++ {
				htick := tick + i
				q.Add(Event{htick, BP909, NoteOn, drumNotes["ch"], uint8(70 + rng.Intn(21) - 10)})
				q.Add(Event{htick + 1, BP909, NoteOff, drumNotes["ch"], 0})
			}
			// Open hat on offbeats
			if beat%2 == 1 {
				q.Add(Event{tick + 2, BP909, NoteOn, drumNotes["oh"], 80})
				q.Add(Event{tick + 3, BP909, NoteOff, drumNotes["oh"], 0})
			}
			// Toms and rimshots for variation
			if bar >= 8 && rng.Float64() < 0.3 {
				tom := "ltom"
				if rng.Float64() >= 0.5 {
					tom = "htom"
				}
				q.Add(Event{tick + 3, BP909, NoteOn, drumNotes[tom], 80})
				q.Add(Event{tick + 4, BP909, NoteOff, drumNotes[tom], 0})
			}
			if bar >= 12 && rng.Float64() < 0.2 {
				q.Add(Event{tick + 1, BP909, NoteOn, drumNotes["rim"], 75})
				q.Add(Event{tick + 2, BP909, NoteOff, drumNotes["rim"], 0})
			}
			// Crash every 4 bars
			if beat == 0 && bar%4 == 0 {
				q.Add(Event{tick, BP909, NoteOn, drumNotes["crash"], 90})
				q.Add(Event{tick + 2, BP909, NoteOff, drumNotes["crash"], 0})
			}
		}
	}

	// LeadSynth: melodic stabs from bar 4
	for bar := 4; bar < TrackBars; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		for _, beat := range [2]int{0, 2} {
			tick := start + beat*TicksPerBeat
			note := clampNote(TrackNoteBase + Octave + minorPentatonic[rng.Intn(5)])
			q.Add(Event{tick, LeadSynth, NoteOn, note, 80})
			q.Add(Event{tick + 2, LeadSynth, NoteOff, note, 0})
		}
	}

	// ArpSynth: arpeggiated pattern from bar 8
	arpNotes := [6]int{0, 3, 7, 10, 7, 3}
	for bar := 8; bar < TrackBars; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		for i := 0; i < 8; i++ {
			tick := start + i*2
			note := clampNote(TrackNoteBase + Octave*2 + minorPentatonic[arpNotes[i%len(arpNotes)]%len(minorPentatonic)])
			q.Add(Event{tick, ArpSynth, NoteOn, note, 75})
			q.Add(Event{tick + 1, ArpSynth, NoteOff, note, 0})
		}
	}

	// PadSynth: ambient chords bars 2-27
	for bar := 2; bar < 28; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		chordRoot := TrackNoteBase + Octave + minorPentatonic[0]
		for _, offset := range padChordNotes {
			note := clampNote(chordRoot + offset)
			q.Add(Event{start, PadSynth, NoteOn, note, 60})
			q.Add(Event{start + 16, PadSynth, NoteOff, note, 0})
		}
	}

	// SampleBank1: vocal chops every 4 bars
	for bar := 4; bar < TrackBars; bar += 4 {
		start := bar * BeatsPerBar * TicksPerBeat
		q.Add(Event{start, SampleBank1, NoteOn, sampleBankNotes["vocal1"], 100})
		q.Add(Event{start + 4, SampleBank1, NoteOff, sampleBankNotes["vocal1"], 0})
		if bar >= 12 {
			q.Add(Event{start + 8, SampleBank1, NoteOn, sampleBankNotes["vocal2"], 100})
			q.Add(Event{start + 12, SampleBank1, NoteOff, sampleBankNotes["vocal2"], 0})
		}
	}

	// SampleBank2: riser through the breakdown
	for bar := 20; bar < 24; bar++ {
		start := bar * BeatsPerBar * TicksPerBeat
		q.Add(Event{start, SampleBank2, NoteOn, sampleBankNotes["riser"], 90})
		q.Add(Event{start + 16, SampleBank2, NoteOff, sampleBankNotes["riser"], 0})
	}

	return q
}

var sampleBankNotes = map[string]uint8{
	"vocal1": 48, // C4 ("acid!")
	"vocal2": 50, // D4 ("get down!")
	"riser":  52, // E4 (riser FX)
	"sweep":  53, // F4 (sweep FX)
}
