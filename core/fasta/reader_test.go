package fasta

import (
	"errors"
	"strings"
	"testing"
)

const plain = `>seq1 some description
ACGT
ACGT
>seq2
NNNN
`

func TestStream(t *testing.T) {
	var recs []Record
	err := Stream(strings.NewReader(plain), func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || recs[0].Desc != "some description" {
		t.Fatalf("header parse: %+v", recs[0])
	}
	if string(recs[0].Seq) != "ACGTACGT" {
		t.Fatalf("sequence concat: %q", recs[0].Seq)
	}
	if recs[1].ID != "seq2" || recs[1].Desc != "" || string(recs[1].Seq) != "NNNN" {
		t.Fatalf("second record: %+v", recs[1])
	}
}

func TestStreamEmitError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Stream(strings.NewReader(plain), func(Record) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected early stop after 1 record, got calls=%d err=%v", calls, err)
	}
}

func TestStreamEmpty(t *testing.T) {
	count := 0
	if err := Stream(strings.NewReader(""), func(Record) error { count++; return nil }); err != nil {
		t.Fatalf("stream: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no records, got %d", count)
	}
}
