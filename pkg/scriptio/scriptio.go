// 16 Oct 2026

// Package scriptio reads files of literals, one per line, and writes
// back what the codec makes of them. Files may be gzipped.
package scriptio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/andrew-torda/molscript/pkg/escape"
	"github.com/andrew-torda/molscript/pkg/zwrap"
	"github.com/edsrzf/mmap-go"
)

// Mode says what to do with each line.
type Mode byte

const (
	ModeUnescape Mode = iota // point, bit-set or matrix, printed readably
	ModeUnicode              // \uXXXX sequences
	ModeStrings              // ["a", "b"] string arrays
)

var modeNames = [...]string{"unescape", "unicode", "strings"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Options controls Run. LogFile is where the chatter goes. "" throws it
// away and "stdout" means standard output.
type Options struct {
	Mode    Mode
	LogFile string
}

// a fakecloser is a wrapper around a io.Writer which turns it into
// a WriteCloser.
type fakecloser struct {
	io.Writer
}

func (fakecloser) Close() error { return nil }

// logWhere sets up a logger writing to outinfo.
func logWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.WriteCloser
	switch outinfo {
	case "":
		iowriter = fakecloser{io.Discard}
	case "stdout":
		iowriter = fakecloser{os.Stdout}
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
	}
	return log.New(iowriter, "", log.Lshortfile), iowriter, nil
}

// splitLines breaks b at newlines and copies each line out. A
// carriage return before the newline is dropped, and so is the empty
// string after a final newline.
func splitLines(b []byte) []string {
	if len(b) == 0 {
		return []string{}
	}
	parts := bytes.Split(b, []byte{'\n'})
	if len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(bytes.TrimSuffix(p, []byte{'\r'}))
	}
	return lines
}

// byMmap maps the file and splits it. The strings are copies, so the
// map can go once we are finished.
func byMmap(fp *os.File) ([]string, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map zero bytes
		return []string{}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	return splitLines(mm), nil
}

// ReadLines returns the lines of fname. A gzipped file is read through
// the decompressor, anything else is mapped into memory.
func ReadLines(fname string) ([]string, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fz, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	defer fz.Close()
	if !fz.Compressed() {
		return byMmap(fp)
	}
	b, err := io.ReadAll(fz)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", fname, err)
	}
	return splitLines(b), nil
}

// convert does one line. ok is false if the line could not be read as
// what the mode expects.
func convert(mode Mode, n int, line string) (out string, ok bool) {
	switch mode {
	case ModeUnescape:
		v := escape.UABsM(line)
		s := escape.ToReadable(fmt.Sprintf("line%d", n), v)
		return strings.TrimPrefix(s, "\n"), v.Kind() != escape.KindString
	case ModeUnicode:
		s := escape.UnescapeUnicode(line)
		return s, s != line
	case ModeStrings:
		list, ok := escape.UnescapeStringArray(line)
		if !ok {
			return "", false
		}
		return escape.EAS(list, true), true
	}
	return "", false
}

// Run reads fname and writes one result for each line that is not
// blank. Lines the mode cannot make sense of are counted, and
// reported in the log.
func Run(opts *Options, fname string, w io.Writer) error {
	if opts.Mode > ModeStrings {
		return fmt.Errorf("unknown mode %s", opts.Mode)
	}
	logger, closer, err := logWhere(opts.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	lines, err := ReadLines(fname)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var nDone, nMissed int
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		nDone++
		out, ok := convert(opts.Mode, i+1, line)
		if !ok {
			nMissed++
			logger.Printf("%s line %d not parsed as %s: %.40q", fname, i+1, opts.Mode, line)
			if opts.Mode == ModeStrings {
				continue
			}
		}
		if _, err := fmt.Fprintln(bw, out); err != nil {
			return err
		}
	}
	logger.Printf("%s: %d lines, %d not parsed", fname, nDone, nMissed)
	return bw.Flush()
}
