// Package kernel talks to the external OSland kernel process over its
// line-oriented text protocol: newline-terminated ASCII commands on
// stdin (`version`, `save <path>`, `load <path>`, `run`, `build`),
// human-readable status lines on stdout. The client is injected into
// whichever component needs it; there is no shared global instance.
package kernel

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
)

// DefaultExecutable is looked up on PATH when no path is configured.
const DefaultExecutable = "osland"

// ErrNotRunning is returned when a command is sent before Start (or
// after the process exited).
var ErrNotRunning = errors.New("kernel process is not running")

// Options configures a Client.
type Options struct {
	// Path to the kernel binary; DefaultExecutable when empty.
	Path string
	// Args passed to the binary; defaults to ["--headless"].
	Args []string
	// Logger for lifecycle and IO events; slog.Default() when nil.
	Logger *slog.Logger
	// OnMessage receives each stdout line from the kernel.
	OnMessage func(line string)
	// OnError receives read-loop failures.
	OnError func(err error)
}

// Client owns one kernel process with an explicit lifecycle.
type Client struct {
	path      string
	args      []string
	log       *slog.Logger
	onMessage func(string)
	onError   func(error)

	mu    sync.Mutex
	cmd   *exec.Cmd
	stdin io.WriteCloser
	done  chan struct{}
}

// New creates a client; the process is not started yet.
func New(opts Options) *Client {
	if opts.Path == "" {
		opts.Path = DefaultExecutable
	}
	if opts.Args == nil {
		opts.Args = []string{"--headless"}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Client{
		path:      opts.Path,
		args:      opts.Args,
		log:       opts.Logger,
		onMessage: opts.OnMessage,
		onError:   opts.OnError,
	}
}

// Start spawns the kernel process and begins relaying its stdout lines
// to OnMessage. Starting an already-running client is an error.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd != nil {
		return errors.New("kernel process already started")
	}

	cmd := exec.CommandContext(ctx, c.path, c.args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("kernel stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("kernel stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start kernel: %w", err)
	}

	c.cmd = cmd
	c.stdin = stdin
	c.done = make(chan struct{})
	c.log.Info("kernel started", "path", c.path, "pid", cmd.Process.Pid)

	go c.readLoop(stdout)
	return nil
}

// readLoop relays stdout lines until the process closes its end.
func (c *Client) readLoop(stdout io.Reader) {
	defer close(c.done)
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		c.log.Debug("kernel message", "line", line)
		if c.onMessage != nil {
			c.onMessage(line)
		}
	}
	if err := scanner.Err(); err != nil {
		c.log.Error("kernel read failed", "err", err)
		if c.onError != nil {
			c.onError(err)
		}
	}
}

// Stop closes the kernel's stdin and waits for it to exit. No-op when
// not running.
func (c *Client) Stop() error {
	c.mu.Lock()
	cmd := c.cmd
	stdin := c.stdin
	done := c.done
	c.cmd = nil
	c.stdin = nil
	c.mu.Unlock()

	if cmd == nil {
		return nil
	}
	if stdin != nil {
		stdin.Close()
	}
	<-done
	err := cmd.Wait()
	c.log.Info("kernel stopped", "err", err)
	return err
}

// IsRunning reports whether the process has been started and not yet
// stopped or exited.
func (c *Client) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Version asks the kernel for its version line.
func (c *Client) Version() error { return c.send("version") }

// Save tells the kernel to write the current project to path.
func (c *Client) Save(path string) error { return c.send("save " + path) }

// Load tells the kernel to read the project at path.
func (c *Client) Load(path string) error { return c.send("load " + path) }

// Run starts execution of the loaded project.
func (c *Client) Run() error { return c.send("run") }

// Build builds the loaded project.
func (c *Client) Build() error { return c.send("build") }

func (c *Client) send(command string) error {
	c.mu.Lock()
	stdin := c.stdin
	c.mu.Unlock()
	if stdin == nil {
		return ErrNotRunning
	}
	c.log.Debug("kernel command", "cmd", command)
	if _, err := fmt.Fprintln(stdin, command); err != nil {
		return fmt.Errorf("send %q: %w", command, err)
	}
	return nil
}
