package flip

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// fileType is the format family of the input records.
type fileType int

const (
	fastaType fileType = iota
	fastqType
)

// Record is a single sequence record read from the unitig file.
type Record struct {
	// Head is the header line, without its leading '>' or '@'
	Head string

	// Seq is the record's sequence, upper-cased
	Seq []byte

	// Qual is the per-base quality string. Empty for FASTA records.
	Qual []byte
}

// SeqDB is a random-access, read-only store of the input's records
// in file order. Unitig ids are indexes into it.
type SeqDB struct {
	records  []Record
	filetype fileType
}

// Count returns the number of unitigs in the store.
func (db *SeqDB) Count() int {
	return len(db.records)
}

// Get returns the i'th unitig's sequence bytes.
func (db *SeqDB) Get(i int) []byte {
	return db.records[i].Seq
}

// Record returns the i'th full record.
func (db *SeqDB) Record(i int) Record {
	return db.records[i]
}

// readSeqDB reads the unitig file at path into memory. Gzip'd input is
// decompressed. The format family is decided by the file's suffix, falling
// back to the first byte of its contents ('>' FASTA vs '@' FASTQ).
func readSeqDB(path string) (*SeqDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open unitig file: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip input %s: %v", path, err)
		}
		defer gz.Close()

		r = gz
		name = strings.TrimSuffix(name, ".gz")
	}

	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	switch {
	case hasAnySuffix(name, ".fq", ".fastq"):
		return parseFastq(path, dat)
	case hasAnySuffix(name, ".fa", ".fasta", ".fna"):
		return parseFasta(path, dat)
	}

	// unrecognized suffix, sniff the first byte
	if len(dat) > 0 && dat[0] == '@' {
		return parseFastq(path, dat)
	}

	return parseFasta(path, dat)
}

func hasAnySuffix(name string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}

	return false
}

// parseFasta parses the (multi) FASTA contents to records. Sequences may
// span multiple lines and are upper-cased, but bases are not otherwise
// cleaned: an invalid base has to surface as an error later, not vanish.
func parseFasta(path string, dat []byte) (*SeqDB, error) {
	db := &SeqDB{filetype: fastaType}

	var head string
	var seq []byte
	inRecord := false

	flush := func() {
		db.records = append(db.records, Record{
			Head: head,
			Seq:  bytes.ToUpper(seq),
		})
	}

	for _, line := range splitLines(dat) {
		if line[0] == '>' {
			if inRecord {
				flush()
			}
			head = string(line[1:])
			seq = nil
			inRecord = true
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("failed to parse %s: sequence before first FASTA header", path)
		}
		seq = append(seq, line...)
	}
	if inRecord {
		flush()
	}

	// opened and parsed the file but found nothing
	if len(db.records) < 1 {
		return nil, fmt.Errorf("failed to parse any records from %s", path)
	}

	return db, nil
}

// parseFastq parses four-line-per-record FASTQ contents to records.
func parseFastq(path string, dat []byte) (*SeqDB, error) {
	db := &SeqDB{filetype: fastqType}

	lines := splitLines(dat)
	if len(lines)%4 != 0 {
		return nil, fmt.Errorf("failed to parse %s: FASTQ line count isn't a multiple of four", path)
	}

	for i := 0; i < len(lines); i += 4 {
		head, seq, plus, qual := lines[i], lines[i+1], lines[i+2], lines[i+3]

		if head[0] != '@' {
			return nil, fmt.Errorf("failed to parse %s: record %d doesn't start with '@'", path, i/4)
		}
		if plus[0] != '+' {
			return nil, fmt.Errorf("failed to parse %s: record %d is missing its '+' separator", path, i/4)
		}
		if len(qual) != len(seq) {
			return nil, fmt.Errorf("failed to parse %s: record %d quality length doesn't match its sequence", path, i/4)
		}

		db.records = append(db.records, Record{
			Head: string(head[1:]),
			Seq:  bytes.ToUpper(seq),
			Qual: append([]byte(nil), qual...),
		})
	}

	if len(db.records) < 1 {
		return nil, fmt.Errorf("failed to parse any records from %s", path)
	}

	return db, nil
}

// splitLines splits file contents on newlines, trimming carriage returns
// and dropping empty lines.
func splitLines(dat []byte) [][]byte {
	var lines [][]byte
	for _, line := range bytes.Split(dat, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
