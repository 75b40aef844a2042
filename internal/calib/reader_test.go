package calib

import (
	"errors"
	"strings"
	"testing"
)

const twoRecords = `; CHARTCAL.DIR written by MapCal
[ONE.BMP]
FN=ONE.BMP
NA=First chart
CR=line one
 line two   

[TWO.BMP]
FN=TWO.BMP
NA=Second chart
`

func collect(t *testing.T, input string, opts ReadOptions) ([][]string, error) {
	t.Helper()
	var records [][]string
	err := ReadRecords(strings.NewReader(input), func(b *Buffer) error {
		records = append(records, b.Lines())
		return nil
	}, opts)
	return records, err
}

func TestReadRecords(t *testing.T) {
	records, err := collect(t, twoRecords, ReadOptions{})
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	want := []string{"[ONE.BMP]", "FN=ONE.BMP", "NA=First chart", "CR=line one\nline two"}
	if strings.Join(first, "|") != strings.Join(want, "|") {
		t.Errorf("first record = %q, want %q", first, want)
	}
	if records[1][0] != "[TWO.BMP]" {
		t.Errorf("second record starts with %q", records[1][0])
	}
}

func TestReadRecordsOrphanContinuation(t *testing.T) {
	_, err := collect(t, " dangling\n[A]\nFN=A\n", ReadOptions{})
	if !errors.Is(err, ErrBadCalibration) {
		t.Fatalf("ReadRecords() error = %v, want ErrBadCalibration", err)
	}
	var me *MalformedError
	if !errors.As(err, &me) {
		t.Fatalf("error %T is not *MalformedError", err)
	}
	if me.Line != 1 {
		t.Errorf("MalformedError.Line = %d, want 1", me.Line)
	}
	if !errors.Is(err, ErrNoLineToAppend) {
		t.Errorf("MalformedError should unwrap to ErrNoLineToAppend")
	}
}

func TestReadRecordsStopsOnCallbackError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := ReadRecords(strings.NewReader(twoRecords), func(*Buffer) error {
		calls++
		return boom
	}, ReadOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("ReadRecords() error = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestReadRecordsOnLine(t *testing.T) {
	var seen []int
	_, err := collect(t, "[A]\n\n;c\nFN=A\n", ReadOptions{
		OnLine: func(n int, _ string) { seen = append(seen, n) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 4 {
		t.Errorf("OnLine called for %v, want 4 lines", seen)
	}
}

func TestReadRecordsEmptyInput(t *testing.T) {
	records, err := collect(t, "; only a comment\n\n", ReadOptions{})
	if err != nil || len(records) != 0 {
		t.Errorf("ReadRecords() = %d records, %v; want none", len(records), err)
	}
}

func TestReadRecordsCharset(t *testing.T) {
	input := "[A]\nNA=45\xb0N\n"

	records, err := collect(t, input, ReadOptions{Charset: "windows-1252"})
	if err != nil {
		t.Fatal(err)
	}
	if got := records[0][1]; got != "NA=45°N" {
		t.Errorf("decoded line = %q, want %q", got, "NA=45°N")
	}

	_, err = collect(t, input, ReadOptions{Charset: "ebcdic"})
	var ce *ErrUnknownCharset
	if !errors.As(err, &ce) {
		t.Errorf("unknown charset error = %v", err)
	}
}

func TestReadRecordsWhitespaceOnlyLines(t *testing.T) {
	records, err := collect(t, "[A.BMP]\nFN=A.BMP\nCR=first\n \n second\n", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if got, want := records[0][2], "CR=first\n\nsecond"; got != want {
		t.Errorf("continued line = %q, want %q", got, want)
	}

	_, err = collect(t, "  \n[A.BMP]\nFN=A.BMP\n", ReadOptions{})
	if !errors.Is(err, ErrBadCalibration) {
		t.Errorf("leading blank continuation error = %v, want ErrBadCalibration", err)
	}
}

func TestReadRecordsLongLine(t *testing.T) {
	long := strings.Repeat("x", 20*1024*1024)
	records, err := collect(t, "[A]\nCR="+long+"\nNA=after", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if got := len(records[0][1]); got != len(long)+3 {
		t.Errorf("long line length = %d, want %d", got, len(long)+3)
	}
	if got := records[0][2]; got != "NA=after" {
		t.Errorf("line without trailing newline = %q", got)
	}
}

func TestReadRecordsCRLF(t *testing.T) {
	records, err := collect(t, "[A]\r\nFN=A.BMP\r\n\r\nNA=x\r\n", ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"[A]", "FN=A.BMP", "NA=x"}
	if strings.Join(records[0], "|") != strings.Join(want, "|") {
		t.Errorf("record = %q, want %q", records[0], want)
	}
}
