package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-03-09 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2025-03-09" {
		t.Errorf("got %q", d.String())
	}
	if _, err := ParseDate("09/03/2025"); err == nil {
		t.Error("expected error for non-ISO input")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-09"` {
		t.Errorf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip: got %v, want %v", back, d)
	}
}

func TestDateScanDropsTimeComponent(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, time.March, 9, 17, 45, 12, 0, time.Local)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if d.String() != "2025-03-09" {
		t.Errorf("got %q", d.String())
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("time component survived scan: %02d:%02d:%02d", h, m, s)
	}
}
