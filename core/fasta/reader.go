// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is a single FASTA record. Desc is the free text after the id on the
// header line, empty when absent.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Stream parses FASTA from r and calls emit once per complete record.
// Sequence lines are concatenated verbatim (minus surrounding whitespace).
func Stream(r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		rec  Record
		open bool
	)
	flush := func() error {
		if !open {
			return nil
		}
		out := rec
		out.Seq = append([]byte(nil), rec.Seq...)
		return emit(out)
	}

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := splitHeader(line[1:])
			rec = Record{ID: id, Desc: desc}
			open = true
			continue
		}
		if !open {
			continue // leading junk before the first header
		}
		rec.Seq = append(rec.Seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func splitHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
