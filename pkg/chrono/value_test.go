package chrono

import (
	"math/rand"
	"testing"
	"time"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
)

func TestInstantSinceAntisymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 500; n++ {
		a := NewInstant((r.Float64() - 0.5) * 1e10)
		b := NewInstant((r.Float64() - 0.5) * 1e10)
		if got, want := b.Since(a).Seconds(), -a.Since(b).Seconds(); got != want {
			t.Fatalf("(%v - %v) = %v, want %v", b, a, got, want)
		}
		if d := a.Plus(Seconds(1)).Since(a); d.Seconds() <= 0 {
			t.Fatalf("(a+1s) - a = %v, want positive", d)
		}
	}
}

func TestInstantOrdering(t *testing.T) {
	a, b := NewInstant(-1.5), NewInstant(2)

	if !a.Before(b) || a.After(b) || a.Equal(b) {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is not antisymmetric")
	}
	if got := b.Since(a); got.Seconds() != 3.5 {
		t.Errorf("Since() = %v, want 3.5s", got)
	}
	if got := a.Plus(Seconds(3.5)); !got.Equal(b) {
		t.Errorf("Plus() = %v, want %v", got, b)
	}
	if got := b.Minus(Seconds(3.5)); !got.Equal(a) {
		t.Errorf("Minus() = %v, want %v", got, a)
	}
}

func TestInstantTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    time.Time
	}{
		{0, time.Unix(0, 0).UTC()},
		{1.25, time.Unix(1, 250_000_000).UTC()},
		{-1.25, time.Unix(-2, 750_000_000).UTC()},
		{1457798400, time.Date(2016, 3, 12, 16, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		i := NewInstant(tt.seconds)
		if got := i.Time(); !got.Equal(tt.want) {
			t.Errorf("NewInstant(%v).Time() = %v, want %v", tt.seconds, got, tt.want)
		}
		if got := InstantOf(tt.want).Seconds(); got != tt.seconds {
			t.Errorf("InstantOf(%v).Seconds() = %v, want %v", tt.want, got, tt.seconds)
		}
	}

	if got := NewInstant(1.5).String(); got != "1970-01-01T00:00:01.5Z" {
		t.Errorf("String() = %q", got)
	}
}

func TestDurationUnits(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		want float64
	}{
		{"milliseconds", Milliseconds(1500), 1.5},
		{"minutes", Minutes(2), 120},
		{"hours", Hours(1.5), 5400},
		{"days", Days(1), 86400},
		{"weeks", Weeks(2), 1209600},
		{"negative", Hours(-3), -10800},
		{"std", DurationOf(90 * time.Second), 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Seconds(); got != tt.want {
				t.Errorf("Seconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDurationArithmetic(t *testing.T) {
	d := Hours(1).Plus(Minutes(30))
	if d.Seconds() != 5400 {
		t.Errorf("1h + 30m = %v", d)
	}
	if got := d.Minus(Hours(2)); got.Seconds() != -1800 {
		t.Errorf("1h30m - 2h = %v", got)
	}
	if got := d.Negate().Negate(); got != d {
		t.Errorf("double negation = %v, want %v", got, d)
	}
	if got := d.Negate().Abs(); got != d {
		t.Errorf("Abs() = %v, want %v", got, d)
	}
	if d.Compare(Hours(2)) != -1 || Hours(2).Compare(d) != 1 || d.Compare(d) != 0 {
		t.Errorf("Compare() ordering is wrong")
	}
	if got := d.Std(); got != 90*time.Minute {
		t.Errorf("Std() = %v", got)
	}
	if got := Days(1e9).Std(); got != time.Duration(1<<63-1) {
		t.Errorf("Std() did not saturate: %v", got)
	}
	if got := Days(1).Plus(Hours(2)).Plus(Minutes(30)).String(); got != "1d 2h 30m 0s" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("2 days")
	if err != nil {
		t.Fatalf("ParseDuration() error = %v", err)
	}
	if d != Days(2) {
		t.Errorf("ParseDuration(2 days) = %v", d)
	}

	_, err = ParseDuration("1 month")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidDuration) {
		t.Errorf("ParseDuration(1 month) error = %v, want %v", err, mdwerror.CodeInvalidDuration)
	}
}

func TestPeriodString(t *testing.T) {
	tests := []struct {
		p    Period
		want string
	}{
		{Period{}, "empty period"},
		{NewPeriod(-1, 0, -3), "-1 year, -3 days"},
		{NewPeriod(1, 2, 3), "1 year, 2 months, 3 days"},
		{NewPeriod(0, 14, 0), "14 months"},
		{NewPeriod(2, -1, 1), "2 years, -1 month, 1 day"},
		{PeriodOfDays(-2), "-2 days"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPeriodArithmetic(t *testing.T) {
	a, b := NewPeriod(1, 14, 0), NewPeriod(2, 2, 0)
	if a == b {
		t.Errorf("%v and %v must stay distinct", a, b)
	}
	if got := a.Plus(b); got != NewPeriod(3, 16, 0) {
		t.Errorf("Plus() = %v", got)
	}
	if got := a.Minus(b); got != NewPeriod(-1, 12, 0) {
		t.Errorf("Minus() = %v", got)
	}
	if got := a.Negate(); !got.Equal(NewPeriod(-1, -14, 0)) {
		t.Errorf("Negate() = %v", got)
	}
	if !a.Minus(a).IsZero() {
		t.Errorf("a - a is not zero")
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input string
		want  Period
		iso   string
	}{
		{"P1Y2M3D", NewPeriod(1, 2, 3), "P1Y2M3D"},
		{"P3W", PeriodOfDays(21), "P21D"},
		{"P1W2D", PeriodOfDays(9), "P9D"},
		{"-P1M5D", NewPeriod(0, -1, -5), "P-1M-5D"},
		{"P-1Y-3D", NewPeriod(-1, 0, -3), "P-1Y-3D"},
		{"p2m", PeriodOfMonths(2), "P2M"},
		{"P0D", Period{}, "P0D"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if err != nil {
				t.Fatalf("ParsePeriod(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
			if iso := got.ISO(); iso != tt.iso {
				t.Errorf("ISO() = %q, want %q", iso, tt.iso)
			}
		})
	}

	for _, input := range []string{"", "P", "1Y", "P1D2M", "PT1H", "P1.5D"} {
		if _, err := ParsePeriod(input); !mdwerror.HasCode(err, mdwerror.CodeInvalidPeriod) {
			t.Errorf("ParsePeriod(%q) error = %v, want %v", input, err, mdwerror.CodeInvalidPeriod)
		}
	}
}
