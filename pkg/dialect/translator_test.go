package dialect

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/netdut-project/netdut/pkg/util"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator(EOS, map[Dialect][]Rule{
		MOS: {{Pattern: `l1 source interface (\w+)`, Replace: `source $1`}},
	}, SnakeCaseKeys)
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	return tr
}

func TestTranslateCommandsCanonicalIdentity(t *testing.T) {
	tr := newTestTranslator(t)
	cmds := []string{"interface Ethernet10", "l1 source interface Ethernet12"}

	got, err := tr.TranslateCommands(EOS, cmds)
	if err != nil {
		t.Fatalf("TranslateCommands: %v", err)
	}
	if !reflect.DeepEqual(got, cmds) {
		t.Errorf("canonical dialect must be the identity: got %v, want %v", got, cmds)
	}
}

func TestTranslateCommandsMOS(t *testing.T) {
	tr := newTestTranslator(t)

	got, err := tr.TranslateCommands(MOS, []string{
		"interface Ethernet10",
		"l1 source interface Ethernet12",
	})
	if err != nil {
		t.Fatalf("TranslateCommands: %v", err)
	}
	want := []string{"interface Ethernet10", "source Ethernet12"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TranslateCommands = %v, want %v", got, want)
	}
}

func TestTranslateCommandsUnknownDialect(t *testing.T) {
	tr := newTestTranslator(t)

	_, err := tr.TranslateCommands("ios", []string{"show version"})
	if err == nil {
		t.Fatal("unregistered dialect should be a configuration error")
	}
	if !errors.Is(err, util.ErrUnknownDialect) {
		t.Errorf("error should wrap ErrUnknownDialect, got %v", err)
	}
	if !strings.Contains(err.Error(), "ios") {
		t.Errorf("error should name the dialect: %v", err)
	}
}

func TestTranslateCommandsPassThrough(t *testing.T) {
	tr := newTestTranslator(t)
	cmds := []string{"show version", "show clock", "enable"}

	got, err := tr.TranslateCommands(MOS, cmds)
	if err != nil {
		t.Fatalf("TranslateCommands: %v", err)
	}
	if !reflect.DeepEqual(got, cmds) {
		t.Errorf("unmatched commands must pass through element-wise: got %v, want %v", got, cmds)
	}
}

func TestTranslateResponse(t *testing.T) {
	tr := newTestTranslator(t)
	resp := map[string]interface{}{
		"modelName": "DCS-7130",
		"daemons": map[string]interface{}{
			"sleeper": map[string]interface{}{
				"startTime": 0.0,
			},
		},
	}

	got, err := tr.TranslateResponse(MOS, resp)
	if err != nil {
		t.Fatalf("TranslateResponse: %v", err)
	}
	want := map[string]interface{}{
		"model_name": "DCS-7130",
		"daemons": map[string]interface{}{
			"sleeper": map[string]interface{}{
				"start_time": 0.0,
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TranslateResponse = %#v, want %#v", got, want)
	}
}

func TestTranslateResponseIdempotent(t *testing.T) {
	tr := newTestTranslator(t)
	resp := map[string]interface{}{
		"appName": "null",
		"peers":   []interface{}{map[string]interface{}{"peerAddress": "10.0.0.1"}},
	}

	once, err := tr.TranslateResponse(MOS, resp)
	if err != nil {
		t.Fatalf("first TranslateResponse: %v", err)
	}
	twice, err := tr.TranslateResponse(MOS, once)
	if err != nil {
		t.Fatalf("second TranslateResponse: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization not idempotent: %#v then %#v", once, twice)
	}
}

func TestTranslateResponseStructurePreserved(t *testing.T) {
	tr := newTestTranslator(t)
	resp := map[string]interface{}{
		"interfaceList": []interface{}{"et1", "et2", "et3"},
		"counters": []interface{}{
			map[string]interface{}{"rxBytes": 1.0},
			map[string]interface{}{"rxBytes": 2.0},
		},
		"enabled": true,
		"uptime":  nil,
	}

	got, err := tr.TranslateResponse(MOS, resp)
	if err != nil {
		t.Fatalf("TranslateResponse: %v", err)
	}
	m := got.(map[string]interface{})

	list := m["interface_list"].([]interface{})
	if len(list) != 3 || list[0] != "et1" || list[2] != "et3" {
		t.Errorf("list length/order not preserved: %v", list)
	}
	counters := m["counters"].([]interface{})
	if counters[0].(map[string]interface{})["rx_bytes"] != 1.0 {
		t.Errorf("nested sequence element not normalized: %v", counters)
	}
	if m["enabled"] != true {
		t.Errorf("scalar changed: %v", m["enabled"])
	}
	if v, ok := m["uptime"]; !ok || v != nil {
		t.Errorf("null scalar changed: %v", v)
	}
}

func TestTranslateResponseScalar(t *testing.T) {
	tr := newTestTranslator(t)

	got, err := tr.TranslateResponse(MOS, "Application is already running")
	if err != nil {
		t.Fatalf("TranslateResponse: %v", err)
	}
	if got != "Application is already running" {
		t.Errorf("scalar response should pass through, got %v", got)
	}
}

func TestTranslateResponseKeyCollision(t *testing.T) {
	tr := newTestTranslator(t)
	resp := map[string]interface{}{
		"appName":  "one",
		"app_name": "two",
	}

	_, err := tr.TranslateResponse(MOS, resp)
	if err == nil {
		t.Fatal("colliding normalized keys should fail")
	}
	if !errors.Is(err, util.ErrKeyCollision) {
		t.Errorf("error should wrap ErrKeyCollision, got %v", err)
	}
	if !strings.Contains(err.Error(), "app_name") {
		t.Errorf("error should name the colliding key: %v", err)
	}
}

func TestTranslateResponseCanonicalIdentity(t *testing.T) {
	tr := newTestTranslator(t)
	resp := map[string]interface{}{"modelName": "DCS-7050"}

	got, err := tr.TranslateResponse(EOS, resp)
	if err != nil {
		t.Fatalf("TranslateResponse: %v", err)
	}
	if !reflect.DeepEqual(got, resp) {
		t.Errorf("canonical dialect must be the identity: %#v", got)
	}
}

func TestMOSTranslatorDefaults(t *testing.T) {
	tr, err := NewMOSTranslator()
	if err != nil {
		t.Fatalf("NewMOSTranslator: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"interface ap1/3", "interface ap3"},
		{"l1 source interface ap1/7", "source ap7"},
		{"l1 source interface ap7", "CAN NOT TRANSLATE"},
		{"l1 source interface Ethernet12", "source Ethernet12"},
		{"l1 source mac", "source mac"},
		{"no l1 source", "no source"},
		{"traffic-loopback source network device phy", "loopback internal"},
		{"traffic-loopback source system device phy", "loopback"},
		{"no traffic-loopback", "no loopback"},
		{"show version", "show version"},
	}

	for _, tt := range tests {
		got, err := tr.TranslateCommands(MOS, []string{tt.in})
		if err != nil {
			t.Fatalf("TranslateCommands(%q): %v", tt.in, err)
		}
		if got[0] != tt.want {
			t.Errorf("TranslateCommands(%q) = %q, want %q", tt.in, got[0], tt.want)
		}
	}
}
