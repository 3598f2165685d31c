package entities

import "testing"

func TestParseAmountBRL(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 745,00", 745.00},
		{"R$ 1.120,00", 1120.00},
		{"R$ 1.234.567,89", 1234567.89},
		{"745,00", 745.00},
		{"R$ 598,00", 598.00},
	}
	for _, c := range cases {
		got, err := ParseAmountBRL(c.in)
		if err != nil {
			t.Fatalf("ParseAmountBRL(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseAmountBRL(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseAmountBRL("grátis"); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	if _, err := ParseAmountBRL(""); err == nil {
		t.Fatal("expected error for empty amount")
	}
}

func TestPaymentSlipIssueDate(t *testing.T) {
	slip := PaymentSlip{Date: "15/01/2025"}
	d, err := slip.IssueDate()
	if err != nil {
		t.Fatalf("IssueDate failed: %v", err)
	}
	if d.Day() != 15 || d.Month() != 1 || d.Year() != 2025 {
		t.Fatalf("unexpected date: %v", d)
	}

	if _, err := (PaymentSlip{Date: "2025-01-15"}).IssueDate(); err == nil {
		t.Fatal("expected error for ISO-formatted date")
	}
}

func TestFilterCriteria(t *testing.T) {
	t.Run("defaults are neutral", func(t *testing.T) {
		if got := DefaultFilterCriteria().ActiveCount(); got != 0 {
			t.Fatalf("expected 0 active filters, got %d", got)
		}
	})

	t.Run("active count tracks non-neutral fields", func(t *testing.T) {
		c := DefaultFilterCriteria()
		c.SearchTerm = "corolla"
		c.Make = "Toyota"
		c.LicensePlate = "DEF"
		if got := c.ActiveCount(); got != 3 {
			t.Fatalf("expected 3 active filters, got %d", got)
		}
	})

	t.Run("clear resets one field", func(t *testing.T) {
		c := DefaultFilterCriteria()
		c.Make = "Toyota"
		c.Year = "2022"
		if !c.Clear(FilterFieldMake) {
			t.Fatal("Clear(make) reported failure")
		}
		if c.Make != FilterValueAll || c.Year != "2022" {
			t.Fatalf("unexpected criteria after clear: %+v", c)
		}
	})

	t.Run("unknown field reports false", func(t *testing.T) {
		c := DefaultFilterCriteria()
		if c.Clear("color") {
			t.Fatal("Clear accepted an unknown field")
		}
	})
}
