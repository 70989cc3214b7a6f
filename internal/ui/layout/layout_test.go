package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestHints_SkipsDisabled(t *testing.T) {
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit"))
	restart := key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Restart"))
	restart.SetEnabled(false)

	hints := Hints(submit, restart)
	if len(hints) != 1 {
		t.Fatalf("Hints length = %d, want 1", len(hints))
	}
	if hints[0] != (KeyHint{Key: "Enter", Description: "Submit"}) {
		t.Errorf("Hints[0] = %+v", hints[0])
	}
}

func TestRenderHeader_ShowsNameTitleAndStatus(t *testing.T) {
	out := RenderHeader("Assessment", "29:59", 100)
	for _, want := range []string{AppName, "Assessment", "29:59"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected small terminals to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}
