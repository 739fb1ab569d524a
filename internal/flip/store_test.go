package flip

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// Test reading of a multi-FASTA unitig file
func Test_ReadSeqDB_fasta(t *testing.T) {
	db, err := readSeqDB("../../test/unitigs.fa")
	if err != nil {
		t.Fatal(err)
	}

	if db.Count() != 3 {
		t.Fatalf("read %d records, expected 3", db.Count())
	}
	if db.filetype != fastaType {
		t.Error("expected the store to be FASTA typed")
	}
	if db.Record(2).Head != "three lone unitig" {
		t.Errorf("third header was %q", db.Record(2).Head)
	}
	if string(db.Get(0)) != "AATCG" {
		t.Errorf("first sequence was %s, not AATCG", db.Get(0))
	}
}

// sequences spanning multiple lines are joined
func Test_ReadSeqDB_multilineFasta(t *testing.T) {
	db, err := readSeqDB("../../test/reverse.fa")
	if err != nil {
		t.Fatal(err)
	}

	if string(db.Get(0)) != "AATCG" {
		t.Errorf("joined sequence was %s, not AATCG", db.Get(0))
	}
}

func Test_ReadSeqDB_fastq(t *testing.T) {
	db, err := readSeqDB("../../test/unitigs.fq")
	if err != nil {
		t.Fatal(err)
	}

	if db.Count() != 2 {
		t.Fatalf("read %d records, expected 2", db.Count())
	}
	if db.filetype != fastqType {
		t.Error("expected the store to be FASTQ typed")
	}
	if string(db.Record(0).Qual) != "ABCDE" {
		t.Errorf("first quality was %s, not ABCDE", db.Record(0).Qual)
	}
}

// gzip'd input is decompressed transparently
func Test_ReadSeqDB_gzip(t *testing.T) {
	dat, err := os.ReadFile("../../test/unitigs.fa")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "unitigs.fa.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err = gz.Write(dat); err != nil {
		t.Fatal(err)
	}
	if err = gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	db, err := readSeqDB(path)
	if err != nil {
		t.Fatal(err)
	}
	if db.Count() != 3 {
		t.Errorf("read %d records from gzip'd input, expected 3", db.Count())
	}
}

// an unrecognized suffix falls back to sniffing the first byte
func Test_ReadSeqDB_sniffing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unitigs.txt")
	if err := os.WriteFile(path, []byte("@u1\nAATCG\n+\nABCDE\n"), 0644); err != nil {
		t.Fatal(err)
	}

	db, err := readSeqDB(path)
	if err != nil {
		t.Fatal(err)
	}
	if db.filetype != fastqType {
		t.Error("expected a '@'-led file to be read as FASTQ")
	}
}

func Test_ReadSeqDB_empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fa")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := readSeqDB(path); err == nil {
		t.Error("expected an error reading an empty unitig file")
	}
}

func Test_ReadSeqDB_missingFile(t *testing.T) {
	if _, err := readSeqDB("../../test/no-such-file.fa"); err == nil {
		t.Error("expected an error for a missing unitig file")
	}
}

func Test_ReadSeqDB_malformedFastq(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.fq")
	if err := os.WriteFile(path, []byte("@u1\nAATCG\n+\nABC\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := readSeqDB(path); err == nil {
		t.Error("expected an error for a quality string shorter than its sequence")
	}
}
