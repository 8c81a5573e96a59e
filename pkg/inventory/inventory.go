// Package inventory loads testbed files: the YAML description of the
// devices a test session may connect to, with their addresses, transports,
// credentials, and dialects.
package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netdut-project/netdut/pkg/dialect"
	"github.com/netdut-project/netdut/pkg/util"
)

// Transport kinds a testbed device may declare.
const (
	TransportEAPI = "eapi"
	TransportSSH  = "ssh"
)

// Testbed is a parsed testbed file.
type Testbed struct {
	Devices []*DeviceSpec `yaml:"devices"`
}

// DeviceSpec describes one device in the testbed.
type DeviceSpec struct {
	Name      string `yaml:"name"`
	Address   string `yaml:"address"`
	Transport string `yaml:"transport,omitempty"` // "eapi" (default) or "ssh"
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`
	Dialect   string `yaml:"dialect,omitempty"` // "eos" (default) or "mos"
}

// Load reads and validates a testbed file.
func Load(path string) (*Testbed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading testbed %s: %w", path, err)
	}
	tb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("testbed %s: %w", path, err)
	}
	return tb, nil
}

// Parse parses and validates testbed YAML. Validation fails fast: a
// malformed testbed is a configuration error, surfaced before any device
// is contacted.
func Parse(data []byte) (*Testbed, error) {
	var tb Testbed
	if err := yaml.Unmarshal(data, &tb); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	applyDefaults(&tb)
	if err := validate(&tb); err != nil {
		return nil, err
	}
	return &tb, nil
}

// Device returns the named device spec.
func (t *Testbed) Device(name string) (*DeviceSpec, error) {
	for _, d := range t.Devices {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("device %q not in testbed", name)
}

func applyDefaults(tb *Testbed) {
	for _, d := range tb.Devices {
		if d.Transport == "" {
			d.Transport = TransportEAPI
		}
		if d.Dialect == "" {
			d.Dialect = string(dialect.EOS)
		}
	}
}

func validate(tb *Testbed) error {
	v := &util.ValidationBuilder{}
	v.Add(len(tb.Devices) > 0, "testbed has no devices")

	seen := make(map[string]bool, len(tb.Devices))
	for i, d := range tb.Devices {
		prefix := fmt.Sprintf("device[%d]", i)
		if d.Name != "" {
			prefix = d.Name
		}

		v.Add(d.Name != "", fmt.Sprintf("%s: name is required", prefix))
		v.Add(d.Address != "", fmt.Sprintf("%s: address is required", prefix))
		if seen[d.Name] {
			v.AddErrorf("%s: duplicate device name", prefix)
		}
		seen[d.Name] = true

		switch d.Transport {
		case TransportEAPI, TransportSSH:
		default:
			v.AddErrorf("%s: unknown transport %q", prefix, d.Transport)
		}
		switch dialect.Dialect(d.Dialect) {
		case dialect.EOS, dialect.MOS:
		default:
			v.AddErrorf("%s: unknown dialect %q", prefix, d.Dialect)
		}
		if d.Transport == TransportSSH {
			v.Add(d.Username != "", fmt.Sprintf("%s: ssh transport requires a username", prefix))
		}
	}
	return v.Build()
}
