package message

import (
	"testing"
)

func Test_isSingleLineAndSafe(t *testing.T) {
	good := []string{"Barbarians", "player one", "résumé", "game-2"}
	for _, s := range good {
		if !IsSingleLineAndSafe(s) {
			t.Errorf("%q should be safe", s)
		}
	}

	bad := []string{
		"",
		"with|pipe",
		"with,comma",
		"with\nnewline",
		"with\ttab",
		"with\x01control",
		"line\u2028separator",
		"para\u2029separator",
	}
	for _, s := range bad {
		if IsSingleLineAndSafe(s) {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func Test_freeTextAllowsSeparators(t *testing.T) {
	if !isFreeTextSafe("hello, got 2 wood | 1 clay?") {
		t.Error("free text may contain separators")
	}
	if isFreeTextSafe("two\nlines") {
		t.Error("free text must stay on one line")
	}
	if isFreeTextSafe("") {
		t.Error("free text must be non-empty")
	}
}

func Test_multiParamSafety(t *testing.T) {
	if !isMultiParamSafe("key,with,commas") {
		t.Error("multi params may contain Sep2")
	}
	if !isMultiParamSafe("") {
		t.Error("empty params are legal, the sentinel covers them")
	}
	if isMultiParamSafe("key|pipe") {
		t.Error("multi params must not contain the primary separator")
	}
}

func Test_versionGateDefaults(t *testing.T) {
	if MinimumVersion(GameStateID) != VersionOldest {
		t.Errorf("GameState should default to the oldest version, got %d", MinimumVersion(GameStateID))
	}
	if MaximumVersion(GameStateID) != VersionNoMax {
		t.Errorf("GameState should be unbounded, got %d", MaximumVersion(GameStateID))
	}
}

func Test_versionGateBounds(t *testing.T) {
	if MinimumVersion(GameServerTextID) != 2000 {
		t.Errorf("GameServerText minimum should be 2000, got %d", MinimumVersion(GameServerTextID))
	}
	if VersionInRange(GameServerTextID, 1109) {
		t.Error("1.1.09 peer must not receive GameServerText")
	}
	if !VersionInRange(GameServerTextID, 2000) {
		t.Error("2.0.00 peer understands GameServerText")
	}
	if VersionInRange(BoardLayoutID, 2000) {
		t.Error("BoardLayout is capped at 1999")
	}
	if !VersionInRange(BoardLayoutID, 1109) {
		t.Error("1.1.09 peer understands BoardLayout")
	}
}
