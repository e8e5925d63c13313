package midiport

import "testing"

const aconnectSample = `client 0: 'System' [type=kernel]
    0 'Timer           '
    1 'Announce        '
client 14: 'Midi Through' [type=kernel]
    0 'Midi Through Port-0'
client 128: 'virtual-1' [type=user,pid=4242]
    0 'virtual-1       '
client 129: 'TextMIDI_TB303' [type=user,pid=4243]
    0 'TextMIDI_TB303  '
`

func TestParseAconnect(t *testing.T) {
	routes := ParseAconnect(aconnectSample)

	cases := map[string]string{
		"System:Timer":                     "0:0",
		"System:Announce":                  "0:1",
		"Midi Through:Midi Through Port-0": "14:0",
		"virtual-1:virtual-1":              "128:0",
		"TextMIDI_TB303:TextMIDI_TB303":    "129:0",
	}
	for key, want := range cases {
		if got := routes[key]; got != want {
			t.Errorf("routes[%q] = %q, want %q", key, got, want)
		}
	}
	if len(routes) != len(cases) {
		t.Errorf("parsed %d routes, want %d", len(routes), len(cases))
	}
}

func TestRoutesFind(t *testing.T) {
	routes := ParseAconnect(aconnectSample)

	addr, ok := routes.Find("TB303")
	if !ok || addr != "129:0" {
		t.Errorf("Find(TB303) = %q, %v; want 129:0, true", addr, ok)
	}

	if _, ok := routes.Find("no-such-port"); ok {
		t.Error("Find matched a port that does not exist")
	}
}

func TestParseAconnectEmpty(t *testing.T) {
	if routes := ParseAconnect(""); len(routes) != 0 {
		t.Errorf("empty input produced %d routes", len(routes))
	}
}
