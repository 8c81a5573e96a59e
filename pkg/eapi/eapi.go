// Package eapi implements the JSON-RPC command API transport ("eAPI")
// spoken by EOS- and MOS-flavored devices over HTTP. It satisfies the
// session Transport interface: commands go in as strings, replies come back
// as decoded JSON structures.
package eapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/netdut-project/netdut/pkg/util"
)

// DefaultTimeout bounds a single HTTP round trip when the caller's context
// carries no deadline.
const DefaultTimeout = 30 * time.Second

// Client is an eAPI connection to one device.
type Client struct {
	url    string
	user   string
	pass   string
	httpc  *http.Client
	log    *logrus.Entry
	nextID atomic.Int64
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets HTTP basic auth credentials.
func WithCredentials(user, pass string) Option {
	return func(c *Client) {
		c.user = user
		c.pass = pass
	}
}

// WithHTTPS switches the transport to https.
func WithHTTPS() Option {
	return func(c *Client) {
		c.url = "https://" + hostOf(c.url)
	}
}

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// NewClient creates an eAPI client for host (hostname or host:port). The
// command endpoint is http://host/command-api; use WithHTTPS for https.
func NewClient(host string, opts ...Option) *Client {
	c := &Client{
		url:   "http://" + host,
		httpc: &http.Client{Timeout: DefaultTimeout},
		log:   util.WithDevice(host),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func hostOf(url string) string {
	for _, prefix := range []string{"http://", "https://"} {
		if len(url) > len(prefix) && url[:len(prefix)] == prefix {
			return url[len(prefix):]
		}
	}
	return url
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      string    `json:"id"`
}

type rpcParams struct {
	Version int      `json:"version"`
	Cmds    []string `json:"cmds"`
	Format  string   `json:"format"`
}

type rpcResponse struct {
	Result []json.RawMessage `json:"result"`
	Error  *APIError         `json:"error"`
}

// APIError is a device-reported eAPI failure.
type APIError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    []json.RawMessage `json:"data"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eapi error %d: %s", e.Code, e.Message)
}

// Run sends one command line and returns its decoded reply.
func (c *Client) Run(ctx context.Context, cmd string) (interface{}, error) {
	replies, err := c.RunBatch(ctx, []string{cmd})
	if err != nil {
		return nil, err
	}
	return replies[0], nil
}

// RunBatch sends an ordered command sequence in a single runCmds call and
// returns one decoded reply per command, in order.
func (c *Client) RunBatch(ctx context.Context, cmds []string) ([]interface{}, error) {
	id := strconv.FormatInt(c.nextID.Add(1), 10)
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "runCmds",
		Params:  rpcParams{Version: 1, Cmds: cmds, Format: "json"},
		ID:      id,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/command-api", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.pass)
	}

	c.log.Debugf("eapi runCmds id=%s cmds=%q", id, cmds)
	httpResp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eapi request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("eapi http %d: %s", httpResp.StatusCode, bytes.TrimSpace(body))
	}

	var resp rpcResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("eapi decode: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if len(resp.Result) != len(cmds) {
		return nil, fmt.Errorf("eapi returned %d results for %d commands", len(resp.Result), len(cmds))
	}

	out := make([]interface{}, len(resp.Result))
	for i, raw := range resp.Result {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("eapi decode result for %q: %w", cmds[i], err)
		}
		out[i] = v
	}
	return out, nil
}

// Close releases idle HTTP connections. The eAPI is stateless, so there is
// no session teardown beyond that.
func (c *Client) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
