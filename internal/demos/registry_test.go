package demos

import (
	"testing"

	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

func TestGalleryRegistered(t *testing.T) {
	all := List()
	if len(all) == 0 {
		t.Fatal("no demos registered")
	}

	for _, d := range all {
		if d.ID == "" || d.Title == "" || d.Source == "" {
			t.Errorf("demo %+v has empty fields", d)
		}
		if !Exists(d.ID) {
			t.Errorf("Exists(%q) = false for listed demo", d.ID)
		}
	}
}

func TestListSorted(t *testing.T) {
	all := List()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("List() not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-demo"); err == nil {
		t.Error("Get() for unknown demo should fail")
	}
}

func TestGalleryProgramsRun(t *testing.T) {
	// Every shipped demo must execute cleanly and draw something.
	for _, d := range List() {
		t.Run(d.ID, func(t *testing.T) {
			buf := lang.NewBuffer(64, 64, lang.Black)
			e := lang.NewExecutor(d.Source, buf)

			if err := e.Run(); err != nil {
				t.Fatalf("demo %q failed: %v", d.ID, err)
			}
			if buf.Count(lang.Black) == 64*64 {
				t.Errorf("demo %q drew nothing", d.ID)
			}
		})
	}
}
