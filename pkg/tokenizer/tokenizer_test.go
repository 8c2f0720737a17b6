package tokenizer

import (
	"testing"
)

func Test_splitTypeID(t *testing.T) {
	id, payload, err := SplitTypeID("1025|Barbarians,20", "|")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	if id != 1025 {
		t.Errorf("expected id 1025, got %d", id)
	}
	if payload != "Barbarians,20" {
		t.Errorf("unexpected payload %q", payload)
	}
}

func Test_splitTypeIDKeepsRestOfLine(t *testing.T) {
	_, payload, err := SplitTypeID("1019|-|game1|game2", "|")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	if payload != "-|game1|game2" {
		t.Errorf("payload must keep later separators, got %q", payload)
	}
}

func Test_splitTypeIDNonNumeric(t *testing.T) {
	_, _, err := SplitTypeID("notanumber|x", "|")
	if err == nil {
		t.Error("expected a framer-level failure")
		t.FailNow()
	}
}

func Test_splitTypeIDNoSeparator(t *testing.T) {
	id, payload, err := SplitTypeID("9999", "|")
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	if id != 9999 || payload != "" {
		t.Errorf("got id %d payload %q", id, payload)
	}
}

func Test_tokensPreservesEmpties(t *testing.T) {
	toks := Tokens("1200,2.0.00,,", ",")
	if len(toks) != 4 {
		t.Errorf("expected 4 tokens, got %d", len(toks))
		t.FailNow()
	}
	if toks[2] != "" || toks[3] != "" {
		t.Error("trailing empty tokens must survive")
	}
}

func Test_joinRoundTrip(t *testing.T) {
	toks := []string{"a", "", "b", ""}
	got := Tokens(Join(",", toks...), ",")
	if len(got) != len(toks) {
		t.Errorf("expected %d tokens, got %d", len(toks), len(got))
		t.FailNow()
	}
	for i := range toks {
		if got[i] != toks[i] {
			t.Errorf("token %d does not match: %q vs %q", i, got[i], toks[i])
		}
	}
}

func Test_ints(t *testing.T) {
	vals, err := Ints([]string{"1", "-5", "0"})
	if err != nil {
		t.Errorf("unexpected error: %s", err.Reason())
		t.FailNow()
	}
	if vals[0] != 1 || vals[1] != -5 || vals[2] != 0 {
		t.Errorf("bad values %v", vals)
	}

	if _, err := Ints([]string{"1", "x"}); err == nil {
		t.Error("expected failure on non-numeric token")
	}
}
