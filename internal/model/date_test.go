package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundtrip(t *testing.T) {
	type payload struct {
		ReleaseDate *Date `json:"releaseDate"`
	}

	var got payload
	if err := json.Unmarshal([]byte(`{"releaseDate":"1967-03-25"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ReleaseDate == nil || got.ReleaseDate.String() != "1967-03-25" {
		t.Fatalf("unexpected date: %v", got.ReleaseDate)
	}

	out, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"releaseDate":"1967-03-25"}` {
		t.Fatalf("unexpected JSON: %s", out)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"25-03-1967"`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(1967, time.March, 25, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "1967-03-25" {
		t.Fatalf("time component must be dropped, got %v", d)
	}

	if err := d.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestErrorKinds(t *testing.T) {
	verr := NewValidationError("bad input")
	if !IsValidation(verr) {
		t.Fatal("expected validation kind")
	}
	if IsNotFound(verr) {
		t.Fatal("validation error must not be not-found")
	}

	nf := NewNotFoundError("film", 7)
	if !IsNotFound(nf) {
		t.Fatal("expected not-found kind")
	}
	if nf.Error() != "no film with id=7" {
		t.Fatalf("unexpected message %q", nf.Error())
	}
}
