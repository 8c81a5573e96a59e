package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/netdut-project/netdut/pkg/dialect"
	"github.com/netdut-project/netdut/pkg/eapi"
	"github.com/netdut-project/netdut/pkg/inventory"
	"github.com/netdut-project/netdut/pkg/session"
	"github.com/netdut-project/netdut/pkg/sshcli"
)

// openSession loads the testbed, connects the named device over its
// declared transport, and wires up the translator its dialect needs.
func openSession(testbedPath, device string) (*session.Session, error) {
	tb, err := inventory.Load(testbedPath)
	if err != nil {
		return nil, err
	}
	spec, err := tb.Device(device)
	if err != nil {
		return nil, err
	}

	password := spec.Password
	if password == "" && spec.Username != "" {
		password, err = promptPassword(spec)
		if err != nil {
			return nil, err
		}
	}

	var transport session.Transport
	switch spec.Transport {
	case inventory.TransportSSH:
		transport, err = sshcli.Dial(spec.Address, spec.Username, password)
		if err != nil {
			return nil, err
		}
	default:
		var opts []eapi.Option
		if spec.Username != "" {
			opts = append(opts, eapi.WithCredentials(spec.Username, password))
		}
		transport = eapi.NewClient(spec.Address, opts...)
	}

	sess := session.New(spec.Name, dialect.Dialect(spec.Dialect), transport)
	if sess.Dialect() == dialect.MOS {
		tr, err := dialect.NewMOSTranslator()
		if err != nil {
			sess.Close()
			return nil, err
		}
		sess.SetTranslator(tr)
	}
	return sess, nil
}

// promptPassword reads a password from the terminal when the testbed file
// omits one, so credentials never have to live on disk.
func promptPassword(spec *inventory.DeviceSpec) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no password for %s in testbed and stdin is not a terminal", spec.Name)
	}
	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", spec.Username, spec.Address)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}
