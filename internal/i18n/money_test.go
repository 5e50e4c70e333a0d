package i18n

import (
	"testing"
	"time"
)

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(1234.56); got != "R$ 1.234,56" {
		t.Fatalf("expected R$ 1.234,56 got %s", got)
	}
	if got := FormatBRL(0); got != "R$ 0,00" {
		t.Fatalf("expected R$ 0,00 got %s", got)
	}
	if got := FormatBRL(7500); got != "R$ 7.500,00" {
		t.Fatalf("expected R$ 7.500,00 got %s", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "20/05/2024" {
		t.Fatalf("expected 20/05/2024 got %s", got)
	}
}

func TestFormatInt(t *testing.T) {
	if got := FormatInt(1000000); got != "1.000.000" {
		t.Fatalf("expected 1.000.000 got %s", got)
	}
}
