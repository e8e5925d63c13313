package score

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
	CC      uint8 = 0xB0
)

// Event is one scheduled MIDI event for a generator voice
type Event struct {
	Tick       int
	Instrument string
	Type       uint8 // NoteOn, NoteOff, CC
	Key        uint8 // note number, or controller number for CC
	Value      uint8 // velocity, or controller value
}

// CharTick pairs a character of the source text with the tick it lands
// on, so the player can echo the text as it sounds
type CharTick struct {
	Tick  int
	Index int
	Ch    rune
}
