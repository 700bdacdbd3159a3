// Package tracelog writes one CSV row per frame the engine sends or
// receives, rotated daily. It is grounded on the teacher's log.go (which
// rotates a packet log by day using a strftime-style name pattern) and
// tq.go/xmit.go's existing use of github.com/lestrrat-go/strftime for
// timestamp formatting.
package tracelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/sebmillet/rflink/engine"
)

// DefaultNamePattern rotates the trace file daily, the way log.go names
// its daily packet logs.
const DefaultNamePattern = "rflink-%Y%m%d.csv"

const csvHeader = "timestamp,direction,dest,src,flags,pktid,len\n"

// Logger appends one CSV line per traced frame to a daily-rotated file
// under dir.
type Logger struct {
	dir     string
	pattern string

	mu          sync.Mutex
	currentName string
	f           *os.File
}

// New returns a Logger writing under dir, using namePattern (an
// strftime pattern) for the rotating file name. An empty namePattern
// uses DefaultNamePattern. namePattern is validated immediately via a
// throwaway strftime.Format call so a bad pattern fails at construction
// rather than on the first rotation.
func New(dir, namePattern string) (*Logger, error) {
	if namePattern == "" {
		namePattern = DefaultNamePattern
	}
	if _, err := strftime.Format(namePattern, time.Now()); err != nil {
		return nil, fmt.Errorf("tracelog: bad name pattern %q: %w", namePattern, err)
	}
	return &Logger{dir: dir, pattern: namePattern}, nil
}

// Trace records one frame's header fields, direction "TX" or "RX", at
// time now.
func (l *Logger) Trace(direction string, h engine.Header, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	name, err := strftime.Format(l.pattern, now)
	if err != nil {
		return fmt.Errorf("tracelog: format name: %w", err)
	}
	if name != l.currentName {
		if l.f != nil {
			_ = l.f.Close()
		}
		path := filepath.Join(l.dir, name)
		fresh := true
		if _, err := os.Stat(path); err == nil {
			fresh = false
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("tracelog: open %s: %w", path, err)
		}
		if fresh {
			if _, err := f.WriteString(csvHeader); err != nil {
				_ = f.Close()
				return err
			}
		}
		l.f = f
		l.currentName = name
	}

	_, err := fmt.Fprintf(l.f, "%s,%s,%d,%d,0x%02x,%d,%d\n",
		now.Format(time.RFC3339Nano), direction, h.Dest, h.Src, h.Flags, h.PacketID, h.Len)
	return err
}

// Close closes the currently open trace file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// Radio decorates an engine.Radio, tracing through logger every frame
// it sends (before passing it to inner) and every frame inner
// successfully receives (after inner returns it).
// Tracing errors are logged, not propagated, since a failed trace write
// must never interrupt the link.
type Radio struct {
	inner  engine.Radio
	logger *Logger
}

// Wrap returns a Radio that traces inner's traffic through logger.
func Wrap(inner engine.Radio, logger *Logger) *Radio {
	return &Radio{inner: inner, logger: logger}
}

func (r *Radio) Init(resetOnly bool) (int, error) { return r.inner.Init(resetOnly) }

func (r *Radio) Send(frame []byte) engine.Status {
	if h, ok := decodeHeaderSafely(frame); ok {
		r.traceErr(r.logger.Trace("TX", h, time.Now()))
	}
	return r.inner.Send(frame)
}

func (r *Radio) Receive(buf []byte) (int, error) {
	n, err := r.inner.Receive(buf)
	if err == nil && n > 0 {
		if h, ok := decodeHeaderSafely(buf[:n]); ok {
			r.traceErr(r.logger.Trace("RX", h, time.Now()))
		}
	}
	return n, err
}

func (r *Radio) SetOption(opt engine.Option, data []byte) error { return r.inner.SetOption(opt, data) }
func (r *Radio) SetInterrupt(fn func())                         { r.inner.SetInterrupt(fn) }
func (r *Radio) ResetInterrupt()                                { r.inner.ResetInterrupt() }

func (r *Radio) traceErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "tracelog: write failed:", err)
	}
}

func decodeHeaderSafely(b []byte) (engine.Header, bool) {
	if len(b) < engine.HeaderSize {
		return engine.Header{}, false
	}
	return engine.DecodeHeader(b[:engine.HeaderSize]), true
}
