// Package session ties one device connection to the translation layer.
// A Session owns a Transport and an optional Translator; commands pass
// through the translator on the way in, replies pass through it on the way
// out, so callers always author commands and read results in the canonical
// dialect regardless of what the device speaks.
package session

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/netdut-project/netdut/pkg/dialect"
	"github.com/netdut-project/netdut/pkg/util"
)

// Session is a single device connection with an active dialect. Sessions
// are independent: parallel test executions each hold their own Session and
// share no state. The translator reference is explicit; there is no
// process-wide current-translator singleton.
type Session struct {
	name       string
	dialect    dialect.Dialect
	transport  Transport
	translator *dialect.Translator
	log        *logrus.Entry
}

// New creates a session for the named device speaking dialect d over the
// given transport. No translator is set initially; commands and replies
// pass through verbatim until SetTranslator is called.
func New(name string, d dialect.Dialect, transport Transport) *Session {
	return &Session{
		name:      name,
		dialect:   d,
		transport: transport,
		log:       util.WithDevice(name).WithField("dialect", string(d)),
	}
}

// Name returns the device name.
func (s *Session) Name() string {
	return s.name
}

// Dialect returns the session's active dialect.
func (s *Session) Dialect() dialect.Dialect {
	return s.dialect
}

// SetTranslator replaces the session's translator. Passing nil disables
// translation. Swapping the translation behavior means supplying a
// different Translator instance, not mutating the current one.
func (s *Session) SetTranslator(t *dialect.Translator) {
	s.translator = t
}

// Translator returns the active translator, or nil when translation is
// disabled.
func (s *Session) Translator() *dialect.Translator {
	return s.translator
}

// Run executes one canonical command and returns its normalized reply.
func (s *Session) Run(ctx context.Context, cmd string) (interface{}, error) {
	cmds, err := s.translateCommands([]string{cmd})
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Run(ctx, cmds[0])
	if err != nil {
		return nil, err
	}
	return s.translateResponse(resp)
}

// RunRaw executes one command without translation in either direction.
func (s *Session) RunRaw(ctx context.Context, cmd string) (interface{}, error) {
	return s.transport.Run(ctx, cmd)
}

// RunBatch executes an ordered command sequence and returns one normalized
// reply per line, in order.
func (s *Session) RunBatch(ctx context.Context, cmds []string) ([]interface{}, error) {
	translated, err := s.translateCommands(cmds)
	if err != nil {
		return nil, err
	}
	replies, err := s.transport.RunBatch(ctx, translated)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(replies))
	for i, r := range replies {
		out[i], err = s.translateResponse(r)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RunScript splits a newline-separated command block into lines and
// executes them as a batch. Indentation and blank lines in the block are
// ignored, so test authors can paste config blocks verbatim:
//
//	replies, err := s.RunScript(ctx, `
//	    enable
//	    configure
//	        interface Ethernet10
//	        l1 source interface Ethernet12
//	`)
func (s *Session) RunScript(ctx context.Context, block string) ([]interface{}, error) {
	return s.RunBatch(ctx, util.SplitCommands(block))
}

// Close closes the underlying transport.
func (s *Session) Close() error {
	return s.transport.Close()
}

func (s *Session) translateCommands(cmds []string) ([]string, error) {
	if s.translator == nil {
		return cmds, nil
	}
	return s.translator.TranslateCommands(s.dialect, cmds)
}

func (s *Session) translateResponse(resp interface{}) (interface{}, error) {
	if s.translator == nil {
		return resp, nil
	}
	return s.translator.TranslateResponse(s.dialect, resp)
}
