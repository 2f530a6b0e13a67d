package postfix

import (
	"testing"
)

func TestSamples(t *testing.T) {
	samples, err := Samples()
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) == 0 {
		t.Fatal("no bundled samples")
	}
	for i, s := range samples {
		if i > 0 && samples[i-1].Name >= s.Name {
			t.Errorf("samples not sorted: %q before %q", samples[i-1].Name, s.Name)
		}
		if _, err := Parse(s.Source); err != nil {
			t.Errorf("sample %s: %v", s.Name, err)
		}
	}
}

func TestLookupSample(t *testing.T) {
	s, err := LookupSample("nested")
	if err != nil {
		t.Fatal(err)
	}
	node, err := Parse(s.Source)
	if err != nil {
		t.Fatal(err)
	}
	if got := Translate(node); got != "1 2 3 * +" {
		t.Errorf("want %q but got %q", "1 2 3 * +", got)
	}

	if _, err := LookupSample("missing"); err == nil {
		t.Error("want error for unknown sample")
	}
}
