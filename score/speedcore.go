package score

import (
	"math/rand"
	"strings"
	"unicode"
)

// Characters that fire the sample bank instead of notes
var sampleNotes = map[rune]uint8{
	'@': 0,
	',': 1,
}

// DefaultSpeedcoreText is played when no text is given on the command line
const DefaultSpeedcoreText = "YEEEEE 1234567890 BLAST OFF!!! SPEEDCORE EXTRATONE MADNESS!!! 666 KICK IT HARD!!! ..BZZZZZ.. 1230 RAVE RAVE RAVE!!! TTTTHHHHXXXXX BOOM BOOM 7890 LETS GO INSANE!!! ..ZAP.. PEACE OUT!!!"

// randRange returns a random value in [lo, hi], matching the inclusive
// ranges the pattern design was tuned with.
func randRange(rng *rand.Rand, lo, hi int) uint8 {
	return uint8(lo + rng.Intn(hi-lo+1))
}

// EncodeSpeedcore is the harder sibling of EncodeAcid: a kick on every
// character, randomized velocities, filter sweeps on breaks, lead stabs
// on vowels, and sample triggers for the marker characters. Timing stays
// one tick per character; shorter increments stack events at the start
// and synths drop them.
func EncodeSpeedcore(text string) (*Queue, []CharTick) {
	rng := rand.New(rand.NewSource(seedFor(text)))
	q := &Queue{}
	var chars []CharTick
	tick := 0

	for i, ch := range text {
		low := unicode.ToLower(ch)

		if note, ok := sampleNotes[ch]; ok {
			chars = append(chars, CharTick{tick, i, ch})
			// Note-on only: the sample plays out its full duration
			q.Add(Event{tick, Samples, NoteOn, note, 127})
			tick++
			continue
		}

		if ch == ' ' || strings.ContainsRune(punctuation, low) {
			chars = append(chars, CharTick{tick, i, ch})
			// TB303: filter sweep
			q.Add(Event{tick, TB303, CC, 74, randRange(rng, 80, 127)})
			// PadSynth: detuned stab instead of a sustained chord
			chordRoot := NoteBase + minorPentatonic[0] + Octave
			for _, offset := range padChordNotes {
				note := clampNote(chordRoot + offset + rng.Intn(5) - 2)
				q.Add(Event{tick, PadSynth, NoteOn, note, randRange(rng, 60, 90)})
				q.Add(Event{tick + 1, PadSynth, NoteOff, note, 0})
			}
			// BP909: crash
			q.Add(Event{tick, BP909, NoteOn, drumNotes["crash"], randRange(rng, 90, 127)})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["crash"], 0})
			tick++
			continue
		}

		if !isEncodable(low) {
			tick++
			continue
		}

		// Bassline
		switch {
		case isVowel(low):
			rank := strings.IndexRune(vowelOrder, low)
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)])
			velocity := randRange(rng, 80, 127)
			duration := 1
			if rng.Float64() < 0.6 {
				duration = 2
			}
			q.Add(Event{tick, TB303, NoteOn, note, velocity})
			q.Add(Event{tick + duration, TB303, NoteOff, note, 0})
			if duration > 1 {
				// Glide
				q.Add(Event{tick, TB303, CC, 5, 127})
				q.Add(Event{tick + duration, TB303, CC, 5, 0})
			}
			q.Add(Event{tick, TB303, CC, 74, randRange(rng, 60, 127)})
		case isDigit(low):
			rank := int(low - '0')
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)])
			q.Add(Event{tick, TB303, NoteOn, note, randRange(rng, 70, 110)})
			q.Add(Event{tick + 1, TB303, NoteOff, note, 0})
		default:
			rank := consonantRank(low)
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)])
			q.Add(Event{tick, TB303, NoteOn, note, randRange(rng, 100, 127)})
			q.Add(Event{tick + 1, TB303, NoteOff, note, 0})
			q.Add(Event{tick, TB303, CC, 71, randRange(rng, 80, 127)})
		}

		// Kick on every character
		q.Add(Event{tick, BP909, NoteOn, drumNotes["kick"], randRange(rng, 100, 127)})
		q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["kick"], 0})
		// Rapid hi-hats
		if rng.Float64() < 0.7 {
			drum := "ch"
			if rng.Float64() >= 0.8 {
				drum = "oh"
			}
			q.Add(Event{tick, BP909, NoteOn, drumNotes[drum], randRange(rng, 60, 90)})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes[drum], 0})
		}
		// Snares, claps, rimshots
		switch {
		case isVowel(low):
			q.Add(Event{tick, BP909, NoteOn, drumNotes["kick"], randRange(rng, 100, 127)})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["kick"], 0})
		case isDigit(low):
			q.Add(Event{tick, BP909, NoteOn, drumNotes["oh"], randRange(rng, 60, 90)})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes["oh"], 0})
		default:
			drum := "rim"
			base := 70
			if i%4 == 2 {
				drum, base = "snare", 90
			} else if i%4 == 0 {
				drum, base = "clap", 90
			}
			q.Add(Event{tick, BP909, NoteOn, drumNotes[drum], randRange(rng, base, 127)})
			q.Add(Event{tick + 1, BP909, NoteOff, drumNotes[drum], 0})
		}

		// Screamy leads on vowels
		if isVowel(low) && rng.Float64() < 0.4 {
			rank := strings.IndexRune(vowelOrder, low)
			note := clampNote(NoteBase + minorPentatonic[rank%len(minorPentatonic)] + Octave*2)
			q.Add(Event{tick, LeadSynth, NoteOn, note, randRange(rng, 80, 127)})
			q.Add(Event{tick + 1, LeadSynth, NoteOff, note, 0})
			q.Add(Event{tick, LeadSynth, CC, 71, 127})
		}

		chars = append(chars, CharTick{tick, i, ch})
		tick++
	}

	return q, chars
}
