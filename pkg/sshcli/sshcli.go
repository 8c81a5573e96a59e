// Package sshcli is a text-mode CLI transport over SSH. Each command runs
// in its own exec session; the reply is the cleaned terminal output as a
// string scalar. Devices report CLI errors as lines starting with "% ",
// which surface as CommandErrors rather than output.
package sshcli

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"

	"github.com/netdut-project/netdut/pkg/util"
)

// DefaultDialTimeout bounds the TCP/SSH handshake.
const DefaultDialTimeout = 10 * time.Second

// Client is an SSH connection to one device CLI.
type Client struct {
	addr   string
	client *ssh.Client
	log    *logrus.Entry
}

// Dial opens an SSH connection to host (host or host:port; port 22 is
// assumed when absent) with password authentication.
func Dial(host, user, pass string) (*Client, error) {
	addr := host
	if !strings.Contains(addr, ":") {
		addr += ":22"
	}

	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(pass),
		},
		// Lab/test environment — production would verify host keys.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         DefaultDialTimeout,
	}

	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("SSH dial %s: %w", addr, err)
	}

	return &Client{
		addr:   addr,
		client: client,
		log:    util.WithDevice(host),
	}, nil
}

// Run executes one command line and returns its terminal output as a
// string. The output has control codes and carriage returns stripped; a
// "% ..." error line in it becomes a CommandError carrying the command.
func (c *Client) Run(ctx context.Context, cmd string) (interface{}, error) {
	sess, err := c.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("SSH session on %s: %w", c.addr, err)
	}
	defer sess.Close()

	c.log.Debugf("ssh run: %s", cmd)

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := sess.CombinedOutput(cmd)
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		// Closing the session unblocks the goroutine.
		return nil, ctx.Err()
	case r := <-done:
		output := sanitizeOutput(string(r.out))
		if msg, failed := cliError(output); failed {
			return nil, &util.CommandError{Command: cmd, Output: msg}
		}
		if r.err != nil {
			return nil, fmt.Errorf("ssh run %q: %w", cmd, r.err)
		}
		return output, nil
	}
}

// RunBatch executes commands in order, one session each, and returns one
// output string per command. It stops at the first failure.
func (c *Client) RunBatch(ctx context.Context, cmds []string) ([]interface{}, error) {
	out := make([]interface{}, 0, len(cmds))
	for _, cmd := range cmds {
		reply, err := c.Run(ctx, cmd)
		if err != nil {
			return nil, err
		}
		out = append(out, reply)
	}
	return out, nil
}

// Close closes the SSH connection.
func (c *Client) Close() error {
	return c.client.Close()
}

var (
	controlCodeRe = regexp.MustCompile(`\x1B([@-_][0-?]*[ -/]*[@-~]|.)`)
	cliErrorRe    = regexp.MustCompile(`(?m)^% (.*)$`)
)

// sanitizeOutput strips terminal control codes and carriage returns.
func sanitizeOutput(s string) string {
	s = controlCodeRe.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "\r", "")
}

// cliError reports whether the output contains a device CLI error line
// ("% ..."), returning its message.
func cliError(output string) (string, bool) {
	if m := cliErrorRe.FindStringSubmatch(output); m != nil {
		return m[1], true
	}
	return "", false
}
