package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alovak/helpcard/cardview"
)

func TestReadCard(t *testing.T) {
	card, err := readCard(strings.NewReader(`{"cardId":"AS2024001234","expiryDate":"2025-03-07","members":[{"firstName":"Rina","lastName":"Das","relation":"Spouse","dob":"1990-01-01"}]}`))
	if err != nil {
		t.Fatalf("readCard err: %v", err)
	}
	if card.CardID != "AS2024001234" || len(card.Members) != 1 {
		t.Fatalf("readCard got %+v", card)
	}

	// unknown fields are ignored, as by the HTTP API
	if _, err := readCard(strings.NewReader(`{"cardId":"X1","card_id":"extra"}`)); err != nil {
		t.Fatalf("readCard with unknown field err: %v", err)
	}

	cases := []string{
		``,
		`{"cardId": 12}`,
		`{"expiryDate": "soon"}`,
	}
	for _, in := range cases {
		if _, err := readCard(strings.NewReader(in)); err == nil {
			t.Fatalf("readCard(%q) expected error", in)
		}
	}
}

func TestReadCardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	if err := os.WriteFile(path, []byte(`{"cardId":"AS2024001234","expiryDate":"2025-03-07"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	card, err := readCardFile(path)
	if err != nil || card.CardID != "AS2024001234" {
		t.Fatalf("readCardFile got %+v err=%v", card, err)
	}
	if _, err := readCardFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRenderLocal(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		ny = time.UTC
	}
	r := cardview.New(cardview.DefaultBranding(), cardview.WithLocation(ny))
	card, _ := readCard(strings.NewReader(`{"cardId":"AS2024001234","expiryDate":"2025-03-07"}`))

	page, err := renderLocal(r, card, false)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if !strings.HasPrefix(string(page), "<!DOCTYPE html>") || !strings.Contains(string(page), "07/03/2025") {
		t.Fatalf("unexpected page output")
	}

	fragment, err := renderLocal(r, card, true)
	if err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	if strings.Contains(string(fragment), "<!DOCTYPE html>") || !strings.Contains(string(fragment), "AS20 2400 1234") {
		t.Fatalf("unexpected fragment output")
	}
}
