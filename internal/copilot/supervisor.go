package copilot

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"
)

// readChunkSize bounds each read against the child's stdout
const readChunkSize = 4096

// tailBytes bounds the output tail delivered to the render callback
const tailBytes = 800

// pollInterval paces the control loop so the timeout is re-checked even
// when the child produces no output.
const pollInterval = 100 * time.Millisecond

// pipeGrace bounds how long a kill waits for the pipe readers to reach
// EOF before the supervisor closes its own ends. Orphaned grandchildren
// can inherit the child's stdout/stderr and hold them open indefinitely.
const pipeGrace = time.Second

// Result reduces a supervised execution to a success flag and captured
// text: full stdout on success, stderr (falling back to stdout) on
// failure, empty on timeout or launch failure. TimedOut is set only when
// the wall-clock bound forced termination.
type Result struct {
	Succeeded bool
	TimedOut  bool
	Output    string
}

// Run launches argv in dir and supervises it until exit or timeout.
//
// Stdout is drained incrementally; each appended chunk triggers onOutput
// with a bounded tail of the accumulated output, in emission order. Stderr
// is drained concurrently so a chatty child cannot deadlock on a full pipe
// buffer. When the wall clock exceeds timeout the child is killed
// immediately and partial output is discarded. A timeout of zero disables
// the bound. Run never panics and always reaps the child before returning.
func Run(ctx context.Context, argv []string, dir string, timeout time.Duration, onOutput func(tail string)) Result {
	if len(argv) == 0 {
		return Result{}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	setSysProcAttr(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{Output: err.Error()}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		stdout.Close()
		return Result{Output: err.Error()}
	}

	if err := cmd.Start(); err != nil {
		// Launch failure: not found, permission denied. Both pipes are
		// closed by Start on error.
		return Result{}
	}

	// Reader goroutines. Each pipe is read to EOF, which arrives when the
	// child exits or is killed; Wait then closes the descriptors.
	chunks := make(chan []byte, 16)
	outDone := make(chan struct{})
	go func() {
		defer close(outDone)
		defer close(chunks)
		buf := make([]byte, readChunkSize)
		for {
			n, err := stdout.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				chunks <- chunk
			}
			if err != nil {
				return
			}
		}
	}()

	var errBuf bytes.Buffer
	errDone := make(chan struct{})
	go func() {
		defer close(errDone)
		io.Copy(&errBuf, stderr)
	}()

	// Wait must not race the pipe readers, so it runs after both finish.
	// The channel is buffered so the goroutine never leaks.
	exited := make(chan error, 1)
	go func() {
		<-outDone
		<-errDone
		exited <- cmd.Wait()
	}()

	// kill terminates the child's whole process group and reaps the
	// child, draining (and discarding) any stdout still in flight so the
	// reader goroutine cannot block on a full channel while we wait. If
	// the readers still have not reached EOF after a grace period — a
	// surviving grandchild holding the inherited pipes — the supervisor
	// closes its own pipe ends to unblock them.
	kill := func(chunks chan []byte) {
		killProcessGroup(cmd)
		grace := time.NewTimer(pipeGrace)
		defer grace.Stop()
		for {
			select {
			case _, ok := <-chunks:
				if !ok {
					chunks = nil
				}
			case <-grace.C:
				stdout.Close()
				stderr.Close()
			case <-exited:
				return
			}
		}
	}

	var out bytes.Buffer
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case chunk, ok := <-chunks:
			if ok {
				out.Write(chunk)
				if onOutput != nil {
					onOutput(tail(out.Bytes()))
				}
			} else {
				chunks = nil // stdout drained; wait for exit
			}

		case err := <-exited:
			// Drain chunks the control loop has not consumed yet. The
			// channel is already closed because outDone precedes Wait.
			if chunks != nil {
				for chunk := range chunks {
					out.Write(chunk)
				}
			}
			if err == nil {
				return Result{Succeeded: true, Output: out.String()}
			}
			if errText := strings.TrimSpace(errBuf.String()); errText != "" {
				return Result{Output: errBuf.String()}
			}
			return Result{Output: out.String()}

		case <-ctx.Done():
			kill(chunks)
			return Result{}

		case <-ticker.C:
			// Fall through to the timeout check.
		}

		if timeout > 0 && time.Since(start) > timeout {
			kill(chunks)
			// Partial output is discarded: a killed agent's truncated
			// stdout must not read like a final answer.
			return Result{TimedOut: true}
		}
	}
}

// tail returns the trailing bytes of buf, capped at tailBytes
func tail(buf []byte) string {
	if len(buf) <= tailBytes {
		return string(buf)
	}
	return string(buf[len(buf)-tailBytes:])
}
