package lexicon

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinTables(t *testing.T) {
	s := New()

	if !s.IsVerbRoot("చదువు") {
		t.Error("చదువు should be a built-in verb root")
	}
	if stem, ok := s.Stem("చదివాడు"); !ok || stem != "చదువు" {
		t.Errorf("Stem(చదివాడు) = %q, %v; want చదువు, true", stem, ok)
	}
	if !s.IsPersonOverride("రాముడు") {
		t.Error("రాముడు should be a person override")
	}
	if typ, ok := s.PlaceType("హైదరాబాద్"); !ok || typ != "place_city" {
		t.Errorf("PlaceType(హైదరాబాద్) = %q, %v; want place_city, true", typ, ok)
	}
	if typ, ok := s.PlaceType("తిరుపతి"); !ok || typ != "place_temple" {
		t.Errorf("PlaceType(తిరుపతి) = %q, %v; want place_temple, true", typ, ok)
	}
	if stem, suffix, ok := s.Exception("పుస్తకానికి"); !ok || stem != "పుస్తకం" || suffix != "కి" {
		t.Errorf("Exception(పుస్తకానికి) = %q, %q, %v", stem, suffix, ok)
	}
	if !s.IsParticle("మరియు") {
		t.Error("మరియు should be a particle")
	}
	if !s.IsStemParticle("లో") {
		t.Error("లో should be a stem particle")
	}
}

func TestVocabularyDeduplicates(t *testing.T) {
	s := New()
	vocab := s.Vocabulary()
	if len(vocab) == 0 {
		t.Fatal("vocabulary should not be empty")
	}

	seen := make(map[string]struct{}, len(vocab))
	for _, w := range vocab {
		if _, dup := seen[w]; dup {
			t.Errorf("vocabulary contains %q twice", w)
		}
		seen[w] = struct{}{}
	}
	if _, ok := seen["రాముడు"]; !ok {
		t.Error("vocabulary should include person override names")
	}
}

func TestLoadVerbRoots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roots.txt")
	content := "# comment line\nఅను\n\nవెళ్ళు\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.LoadVerbRoots(path); err != nil {
		t.Fatalf("LoadVerbRoots: %v", err)
	}
	if !s.IsVerbRoot("అను") || !s.IsVerbRoot("వెళ్ళు") {
		t.Error("loaded roots missing")
	}
	if s.IsVerbRoot("చదువు") {
		t.Error("built-in roots should be replaced, not merged")
	}
}

func TestLoadStemsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stems.yaml")
	content := "వచ్చాడు: వచ్చు\nతిన్నాడు: తిను\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.LoadStems(path); err != nil {
		t.Fatalf("LoadStems: %v", err)
	}
	if stem, ok := s.Stem("వచ్చాడు"); !ok || stem != "వచ్చు" {
		t.Errorf("Stem(వచ్చాడు) = %q, %v", stem, ok)
	}
}

func TestNewFromFilesKeepsBuiltinsOnMissingFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s := NewFromFiles("no/such/roots.txt", "no/such/stems.yaml", logger)

	if !s.IsVerbRoot("చదువు") {
		t.Error("built-in verb roots should survive a failed load")
	}
	if _, ok := s.Stem("చదివాడు"); !ok {
		t.Error("built-in stems should survive a failed load")
	}
}

func TestGazetteerAdds(t *testing.T) {
	s := New()
	s.AddOrganization("సంస్థ")
	if !s.IsOrgWord("సంస్థ") {
		t.Error("added organization word not found")
	}
	s.AddPlaceOverride("కొత్తూరు", "place_village")
	if typ, ok := s.PlaceType("కొత్తూరు"); !ok || typ != "place_village" {
		t.Errorf("PlaceType(కొత్తూరు) = %q, %v", typ, ok)
	}
}
