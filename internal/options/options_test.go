package options

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeMap(t *testing.T) {
	m, err := DecodeMap(strings.NewReader(`{"turnTimer": 5, "useAtB": true, "name": "Gray Death"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m[TurnTimer]; got != json.Number("5") {
		t.Errorf("turnTimer = %v (%T), want json.Number 5", got, got)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"name", "turnTimer", "useAtB"}) {
		t.Errorf("Keys = %v", got)
	}
}

func TestDecodeMapInvalid(t *testing.T) {
	for _, input := range []string{"", "[1,2]", "{not json"} {
		if _, err := DecodeMap(strings.NewReader(input)); err == nil {
			t.Errorf("DecodeMap(%q): expected error", input)
		}
	}
}

func TestMapRoundTripAfterMigrate(t *testing.T) {
	m, err := DecodeMap(strings.NewReader(`{"turnTimer":5,"other":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	New(TurnTimerToSeconds).Migrate(MustParseVersion("0.49.0"), m)

	var buf bytes.Buffer
	if err := m.Encode(&buf, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{"other":1,"turnTimer":300}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMapGetSet(t *testing.T) {
	var c Collection = Map{}
	if _, ok := c.Get("x"); ok {
		t.Error("expected missing key")
	}
	c.Set("x", 1)
	if v, ok := c.Get("x"); !ok || v != 1 {
		t.Errorf("Get = %v, %v", v, ok)
	}
}
