package xctrace

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Runner drives xctrace record/export invocations.
type Runner struct {
	xcrunPath string
	template  string
	log       *zap.Logger
}

// NewRunner creates a runner. xcrunPath is the xcrun launcher binary,
// template the xctrace recording template name.
func NewRunner(xcrunPath, template string, log *zap.Logger) *Runner {
	return &Runner{
		xcrunPath: xcrunPath,
		template:  template,
		log:       log,
	}
}

// Recording is the on-disk result of one capture.
type Recording struct {
	// Bundle is the .trace bundle path.
	Bundle string
	// Start is the wall-clock time recording began.
	Start time.Time

	tempDir string
}

// Cleanup removes the bundle's temporary directory. A no-op for bundles
// kept outside a temp dir.
func (r *Recording) Cleanup() error {
	if r.tempDir == "" {
		return nil
	}
	return os.RemoveAll(r.tempDir)
}

// Record captures one command run into a temporary .trace bundle. The
// command's stdout and stderr pass through; xctrace's own status output
// is streamed, filtered and logged. SIGINT and SIGTERM received while
// recording are forwarded to xctrace so the capture ends cleanly.
func (r *Runner) Record(ctx context.Context, command []string) (*Recording, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, fmt.Errorf("no command to record")
	}

	tempDir, err := os.MkdirTemp("", "sctrace-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	bundle := filepath.Join(tempDir, "capture.trace")

	args := []string{"xctrace", "record",
		"--template", r.template,
		"--output", bundle,
		"--target-stdout", "-",
		"--launch", "--",
	}
	args = append(args, command...)

	cmd := exec.CommandContext(ctx, r.xcrunPath, args...)
	cmd.Stdout = os.Stdout
	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	start := time.Now()
	r.log.Info("recording", zap.String("template", r.template), zap.Strings("command", command))
	if err := cmd.Start(); err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, fmt.Errorf("failed to start xctrace: %w", err)
	}

	stopForwarding := forwardSignals(cmd.Process.Pid)
	r.streamStatus(stderr)
	err = cmd.Wait()
	stopForwarding()

	if err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, fmt.Errorf("xctrace record failed: %w", err)
	}

	return &Recording{Bundle: bundle, Start: start, tempDir: tempDir}, nil
}

// forwardSignals relays SIGINT/SIGTERM to the recording process until the
// returned stop function is called.
func forwardSignals(pid int) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case sig := <-ch:
				if s, ok := sig.(unix.Signal); ok {
					_ = unix.Kill(pid, s)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// Recording progress chatter that would drown the command's own output.
var noisyStatus = regexp.MustCompile(`^(Starting recording|Recording in progress|Waiting for.*to launch|Output file saved|Target app exited|Ctrl-C to stop)`)

// streamStatus reads xctrace's status stream line by line, logging
// everything that is not recording-progress noise.
func (r *Runner) streamStatus(stream io.Reader) {
	lines := bufio.NewScanner(stream)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" || noisyStatus.MatchString(line) {
			continue
		}
		r.log.Info("xctrace", zap.String("status", line))
	}
}

// TOC exports the bundle's table of contents for schema discovery.
func (r *Runner) TOC(ctx context.Context, bundle string) ([]byte, error) {
	return r.export(ctx, bundle, "--toc")
}

// Export exports the syscall table of the bundle's first run as XML.
func (r *Runner) Export(ctx context.Context, bundle string) ([]byte, error) {
	return r.export(ctx, bundle, "--xpath", SyscallTableXPath)
}

// SyscallTableXPath selects the syscall table of the first run.
const SyscallTableXPath = `/trace-toc/run[@number="1"]/data/table[@schema="syscall"]`

// HasSyscallTable scans an exported table of contents for the syscall
// table schema.
func HasSyscallTable(toc []byte) bool {
	return bytes.Contains(toc, []byte(`schema="syscall"`))
}

func (r *Runner) export(ctx context.Context, bundle string, args ...string) ([]byte, error) {
	full := append([]string{"xctrace", "export", "--input", bundle}, args...)
	cmd := exec.CommandContext(ctx, r.xcrunPath, full...)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("xctrace export failed: %w (%s)", err, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
