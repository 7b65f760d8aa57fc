package diagnostics

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_diagnostics01(tst *testing.T) {

	chk.PrintTitle("diagnostics01: Warnf accumulates entries in emission order")

	var log Log
	if !log.Empty() {
		tst.Fatal("expected a fresh log to be empty")
	}
	log.Warnf("member %q skipped (length %.2f)", "b1", 0.0)
	log.Warnf("K* asymmetry %.2e exceeds tolerance", 1e-9)

	entries := log.Entries()
	chk.IntAssert(len(entries), 2)
	if entries[0] != `member "b1" skipped (length 0.00)` {
		tst.Fatalf("unexpected first entry: %q", entries[0])
	}
	if log.Empty() {
		tst.Fatal("expected a non-empty log after Warnf")
	}
}

func Test_diagnostics02(tst *testing.T) {

	chk.PrintTitle("diagnostics02: Entries returns an independent copy")

	var log Log
	log.Warnf("first")
	entries := log.Entries()
	entries[0] = "mutated"
	if log.Entries()[0] != "first" {
		tst.Fatal("expected Log's internal entries to be unaffected by mutating a returned slice")
	}
}
