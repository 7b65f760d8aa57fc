package errs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_errs01(tst *testing.T) {

	chk.PrintTitle("errs01: New builds a plain error with no sub-kind")

	err := New(InvalidModel, "member %q is bad", "b1")
	if !Is(err, InvalidModel) {
		tst.Fatal("expected Is to report InvalidModel")
	}
	if Is(err, Unstable) {
		tst.Fatal("expected Is to reject a non-matching kind")
	}
	want := `InvalidModel: member "b1" is bad`
	if err.Error() != want {
		tst.Fatalf("got %q want %q", err.Error(), want)
	}
}

func Test_errs02(tst *testing.T) {

	chk.PrintTitle("errs02: NewUnstable carries its sub-kind through Error() and IsUnstable")

	err := NewUnstable(Mechanism, "K_ff is singular")
	if !IsUnstable(err, Mechanism) {
		tst.Fatal("expected IsUnstable to match Mechanism")
	}
	if IsUnstable(err, IllConditioned) {
		tst.Fatal("expected IsUnstable to reject a different sub-kind")
	}
	if !IsUnstable(err, NoSub) {
		tst.Fatal("expected NoSub to match any sub-kind")
	}
	want := "Unstable/Mechanism: K_ff is singular"
	if err.Error() != want {
		tst.Fatalf("got %q want %q", err.Error(), want)
	}
}

func Test_errs03(tst *testing.T) {

	chk.PrintTitle("errs03: Is and IsUnstable reject non-*E errors without panicking")

	plain := fmtError("boom")
	if Is(plain, InvalidModel) {
		tst.Fatal("expected Is to reject a non-*E error")
	}
	if IsUnstable(plain, NoSub) {
		tst.Fatal("expected IsUnstable to reject a non-*E error")
	}
}

type fmtError string

func (e fmtError) Error() string { return string(e) }
