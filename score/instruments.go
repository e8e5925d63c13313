package score

// Instrument binds a generator voice to the virtual source port it plays
// through, the farm pass-through port it should be routed to, and a MIDI
// channel (1-16).
type Instrument struct {
	Name       string
	SourcePort string
	FarmPort   string
	Channel    uint8
}

// Voice names shared by the generators
const (
	TB303       = "TB303"
	BP909       = "BP909"
	LeadSynth   = "LeadSynth"
	PadSynth    = "PadSynth"
	Samples     = "Samples"
	SampleBank1 = "SampleBank1"
	SampleBank2 = "SampleBank2"
	ArpSynth    = "ArpSynth"
	BassSub     = "BassSub"
)

// AcidInstruments are the four voices of the acid2midi encoder
func AcidInstruments() []Instrument {
	return []Instrument{
		{TB303, "TextMIDI_TB303", "virtual-1", 1},
		{BP909, "TextMIDI_BP909", "virtual-2", 1},
		{LeadSynth, "TextMIDI_LeadSynth", "virtual-3", 1},
		{PadSynth, "TextMIDI_PadSynth", "virtual-4", 1},
	}
}

// SpeedcoreInstruments add a sample trigger voice on its own channel
func SpeedcoreInstruments() []Instrument {
	return append(AcidInstruments(),
		Instrument{Samples, "TextMIDI_Samples", "virtual-5", 5},
	)
}

// TrackInstruments are the eight voices of the generated acid track,
// one MIDI channel each
func TrackInstruments() []Instrument {
	return []Instrument{
		{TB303, "AcidTrack_TB303", "virtual-1", 1},
		{BP909, "AcidTrack_BP909", "virtual-2", 2},
		{LeadSynth, "AcidTrack_LeadSynth", "virtual-3", 3},
		{PadSynth, "AcidTrack_PadSynth", "virtual-4", 4},
		{SampleBank1, "AcidTrack_Sample1", "virtual-5", 5},
		{SampleBank2, "AcidTrack_Sample2", "virtual-6", 6},
		{ArpSynth, "AcidTrack_ArpSynth", "virtual-7", 7},
		{BassSub, "AcidTrack_BassSub", "virtual-8", 8},
	}
}

// Find returns the instrument with the given voice name
func Find(instruments []Instrument, name string) (Instrument, bool) {
	for _, ins := range instruments {
		if ins.Name == name {
			return ins, true
		}
	}
	return Instrument{}, false
}

// Scale and drum mapping shared by the generators. Note numbers follow
// the C4=48 convention of the target DAW.
const (
	NoteBase      = 48 // C4, bassline root for the encoders
	TrackNoteBase = 36 // C3, bassline root for the generated track
	Octave        = 12
	TicksPerBeat  = 4
)

var (
	minorPentatonic = [5]int{0, 3, 5, 7, 10} // C, Eb, F, G, Bb
	padChordNotes   = [3]int{0, 3, 7}        // root, minor 3rd, 5th
)

var drumNotes = map[string]uint8{
	"kick":  48, // C4
	"snare": 50, // D4
	"ltom":  52, // E4
	"htom":  53, // F4
	"rim":   55, // G4
	"clap":  57, // A4
	"ch":    59, // B4
	"oh":    60, // C5
	"crash": 62, // D5
	"ride":  64, // E5
}

// clampNote keeps a computed note inside the MIDI range
func clampNote(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}
