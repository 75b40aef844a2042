package calib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const whitespace = "\n\r\t "

// ReadOptions configures ReadRecords.
type ReadOptions struct {
	// Charset names the input encoding (see DecodeReader). Empty means
	// the bytes are used as they are.
	Charset string

	// OnLine, when set, is called with every line read after trailing
	// whitespace has been removed, including skipped lines.
	OnLine func(lineNo int, text string)
}

// RecordFunc receives each completed record. The buffer is reset after fn
// returns, so fn must not keep it.
type RecordFunc func(buf *Buffer) error

// ReadRecords splits a calibration stream into records and hands each one
// to fn in stream order.
//
// Lines have no length limit. Empty lines and lines starting with ';' are
// ignored; a line of only whitespace is not empty. A "[title]" line
// closes the pending record and starts the next one. A line starting with
// a space continues the previous logical line; if there is none the input
// is malformed and a *MalformedError is returned immediately. The final
// pending record is dispatched at end of input.
//
// Errors returned by fn stop the scan and are returned unchanged.
func ReadRecords(r io.Reader, fn RecordFunc, opts ReadOptions) error {
	r, err := DecodeReader(r, opts.Charset)
	if err != nil {
		return err
	}

	buf := NewBuffer()
	dispatch := func() error {
		if buf.Empty() {
			return nil
		}
		err := fn(buf)
		buf.Reset()
		return err
	}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read calibration input: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		lineNo++
		text := trimTrailing(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		if opts.OnLine != nil {
			opts.OnLine(lineNo, text)
		}

		if err := classify(buf, text, lineNo, dispatch); err != nil {
			return err
		}
		if readErr == io.EOF {
			break
		}
	}

	return dispatch()
}

// classify adds one input line to buf, dispatching the pending record
// first when text is a title.
func classify(buf *Buffer, text string, lineNo int, dispatch func() error) error {
	if text == "" || text[0] == ';' {
		return nil
	}

	if isTitle(text) {
		if err := dispatch(); err != nil {
			return err
		}
	}

	if text[0] == ' ' {
		trimmed := strings.Trim(text, whitespace)
		if err := buf.AppendLine(trimmed); err != nil {
			return &MalformedError{Line: lineNo, Text: trimmed, Err: err}
		}
		return nil
	}
	buf.AddLine(strings.Trim(text, whitespace))
	return nil
}

// trimTrailing removes trailing whitespace. A line made only of whitespace
// is returned unchanged: " " continues the previous line with an empty one.
func trimTrailing(s string) string {
	if t := strings.TrimRight(s, whitespace); t != "" {
		return t
	}
	return s
}

func isTitle(text string) bool {
	return len(text) > 0 && text[0] == '[' && text[len(text)-1] == ']'
}
