package score

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"unicode"
)

// Character classes driving the encoders. Vowel and consonant rank
// orders are fixed so the mapping stays decodable.
const (
	vowelOrder     = "aeiou"
	consonantOrder = "tnshrdlucmfwypvbgkqjxz"
	punctuation    = ".,"
)

func isVowel(r rune) bool {
	return strings.ContainsRune(vowelOrder, r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func consonantRank(r rune) int {
	return strings.IndexRune(consonantOrder, r)
}

func isEncodable(r rune) bool {
	return isVowel(r) || isDigit(r) || consonantRank(r) >= 0
}

// seedFor derives a stable RNG seed from the text, so the same text
// always produces the same pattern.
func seedFor(text string) int64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return int64(h.Sum64())
}

// DefaultAcidText is played when no text is given on the command line
const DefaultAcidText = "....... Ahhhhhhhhhhhhhhh 1234567890, What is this? What is this? It is text2midi 1234567890 WOW WOW ..nice.. Make the make the music make the music with no skill. Out now. Out now. TTTTHHHHXXXX. Welcome to text-2-midi ACID music converter. Yeeeeeeeeeeeeeessssssssssssshh .. 1234567890 Lets get lets get lets get the party going. 1230 1234560 ACID music is the shit. Peace out."

// EncodeAcid maps text onto the four acid voices. Vowels, digits and
// consonants become minor-pentatonic bassline notes with matching drum
// hits; spaces and punctuation trigger sustained pad chords and a
// resonance tweak. Deterministic per text.
func EncodeAcid(text string) (*Queue, []CharTick) {
	rng := rand.New(rand.NewSource(seedFor(text)))
	q := &Queue{}
	var chars []CharTick
	tick := 0

	for i, ch := range text {
		low := unicode.ToLower(ch)

		if ch == ' ' || strings.ContainsRune(punctuation, low) {
			chars = append(chars, CharTick{tick, i, ch})
			// TB303: resonance tweak
			q.Add(Event{tick, TB303, CC, 71, 60})
			// PadSynth: sustained minor chord, one octave above the bassline
			chordRoot := NoteBase + minorPentatonic[0] + Octave
			for _, offset := range padChordNotes {
				note := clampNote(chordRoot + offset)
				q.Add(Event{tick, PadSynth, NoteOn, note, 60})
				q.Add(Event{tick + 4, PadSynth, NoteOff, note, 0})
			}
			tick++
			continue
		}

		if !isEncodable(low) {
			chars = append(chars, CharTick{tick, i, ch})
			continue
		}

		// Bassline
		switch {
		case isVowel(low):
			rank := strings.IndexRune(vowelOrder, low)
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)])
			duration := 1
			if rng.Float64() < 0.6 {
				duration = 2
			}
			q.Add(Event{tick, TB303, NoteOn, note, 80})
			q.Add(Event{tick + duration, TB303, NoteOff, note, 0})
			if duration > 1 {
				// Glide
				q.Add(Event{tick, TB303, CC, 5, 127})
				q.Add(Event{tick + duration, TB303, CC, 5, 0})
			}
		case isDigit(low):
			rank := int(low - '0')
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)])
			q.Add(Event{tick, TB303, NoteOn, note, 70})
			q.Add(Event{tick + 1, TB303, NoteOff, note, 0})
		default:
			rank := consonantRank(low)
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)])
			q.Add(Event{tick, TB303, NoteOn, note, 100})
			q.Add(Event{tick + 1, TB303, NoteOff, note, 0})
			q.Add(Event{tick, TB303, CC, 71, 80})
		}

		// Drums
		switch {
		case isVowel(low):
			q.Add(Event{tick, BP909, NoteOn, drumNotes["kick"], 100})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["kick"], 0})
		case isDigit(low):
			q.Add(Event{tick, BP909, NoteOn, drumNotes["oh"], 80})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["oh"], 0})
		default:
			drum := "ch"
			velocity := uint8(70)
			if i%4 == 2 {
				drum, velocity = "snare", 90
			} else if i%4 == 0 {
				drum, velocity = "clap", 90
			}
			q.Add(Event{tick, BP909, NoteOn, drumNotes[drum], velocity})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes[drum], 0})
		}

		chars = append(chars, CharTick{tick, i, ch})
		tick++
	}

	return q, chars
}
