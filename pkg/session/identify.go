package session

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/netdut-project/netdut/pkg/dialect"
)

// DeviceInfo is what "show version" reveals about a device.
type DeviceInfo struct {
	SKU          string // model identifier, e.g. "DCS-7130-48L"
	Serial       string
	MicroVersion string // system management controller version, when present
	Dialect      dialect.Dialect
}

var (
	skuRe    = regexp.MustCompile(`(DCS-7\S*)`)
	serialRe = regexp.MustCompile(`Serial number:[ \t]*(\S+)`)
	microRe  = regexp.MustCompile(`System management controller version: (\d+)`)
)

// ParseShowVersion extracts device identity from "show version" text
// output. The dialect is sniffed from the output itself: MOS has no
// "Hardware version" field, so its presence means EOS.
func ParseShowVersion(output string) DeviceInfo {
	info := DeviceInfo{Dialect: dialect.MOS}
	if m := skuRe.FindStringSubmatch(output); m != nil {
		info.SKU = m[1]
	}
	if m := serialRe.FindStringSubmatch(output); m != nil {
		info.Serial = m[1]
	}
	if m := microRe.FindStringSubmatch(output); m != nil {
		info.MicroVersion = m[1]
	}
	if strings.Contains(output, "Hardware version:") {
		info.Dialect = dialect.EOS
	}
	return info
}

// Identify runs "show version" and returns the device's identity. Text
// replies (SSH transports) are parsed with ParseShowVersion, including the
// dialect sniff. Structured replies (eAPI transports) carry the model and
// serial as fields; the dialect stays whatever the session was configured
// with, since a structured reply does not expose the sniffable text.
func (s *Session) Identify(ctx context.Context) (DeviceInfo, error) {
	resp, err := s.Run(ctx, "show version")
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("identify %s: %w", s.name, err)
	}

	switch v := resp.(type) {
	case string:
		info := ParseShowVersion(v)
		s.log.Debugf("identified sku=%s serial=%s dialect=%s", info.SKU, info.Serial, info.Dialect)
		return info, nil
	case map[string]interface{}:
		info := DeviceInfo{Dialect: s.dialect}
		info.SKU = stringField(v, "model_name", "modelName")
		info.Serial = stringField(v, "serial_number", "serialNumber")
		return info, nil
	default:
		return DeviceInfo{}, fmt.Errorf("identify %s: unexpected reply type %T", s.name, resp)
	}
}

// stringField returns the first present key's value as a string.
func stringField(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	}
	return ""
}
