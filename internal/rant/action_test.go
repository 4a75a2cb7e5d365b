package rant

import (
	"strings"
	"testing"
)

func TestAction(t *testing.T) {
	tc := []struct {
		action   Action
		name     string
		title    string
		control  string
		endpoint string
		key      string
	}{
		{Rate, "rate", "Rate", "rate-button", "/rant/rate", "1"},
		{Roast, "roast", "Roast", "roast-button", "/rant/roast", "2"},
		{Rhyme, "rhyme", "Rhyme", "rhyme-button", "/rant/rhyme", "3"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if tt.action.String() != tt.name {
				t.Errorf("String() = %s, want %s", tt.action, tt.name)
			}
			if tt.action.Title() != tt.title {
				t.Errorf("Title() = %s, want %s", tt.action.Title(), tt.title)
			}
			if tt.action.Control() != tt.control {
				t.Errorf("Control() = %s, want %s", tt.action.Control(), tt.control)
			}
			if tt.action.Endpoint() != tt.endpoint {
				t.Errorf("Endpoint() = %s, want %s", tt.action.Endpoint(), tt.endpoint)
			}
			if tt.action.Key() != tt.key {
				t.Errorf("Key() = %s, want %s", tt.action.Key(), tt.key)
			}

			parsed, err := ParseAction(strings.ToUpper(tt.name))
			if err != nil || parsed != tt.action {
				t.Errorf("ParseAction(%s) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if _, err := ParseAction("rant"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestForm(t *testing.T) {
	t.Run("WithPlaylist Does Not Mutate", func(t *testing.T) {
		base := NewForm(map[string]string{"tone": "harsh", PlaylistField: "ignored"})
		withA := base.WithPlaylist("a")
		withB := base.WithPlaylist("b")

		if base.Playlist() != "" {
			t.Errorf("expected base form without playlist, got %s", base.Playlist())
		}
		if withA.Playlist() != "a" || withB.Playlist() != "b" {
			t.Errorf("expected independent copies, got %s and %s", withA.Playlist(), withB.Playlist())
		}
		if withA.Encode() != "playlist=a&tone=harsh" {
			t.Errorf("unexpected encoding %s", withA.Encode())
		}
		if keys := withA.Keys(); len(keys) != 2 || keys[0] != "playlist" || keys[1] != "tone" {
			t.Errorf("unexpected keys %v", keys)
		}
	})

	t.Run("Values Returns Copy", func(t *testing.T) {
		form := NewForm(nil).WithPlaylist("a")
		values := form.Values()
		values.Set(PlaylistField, "changed")

		if form.Playlist() != "a" {
			t.Error("expected form to be unaffected by changes to Values()")
		}
	})

	t.Run("ParseFields", func(t *testing.T) {
		fields, err := ParseFields([]string{"tone=harsh", "note=a=b", "empty="})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields["tone"] != "harsh" || fields["note"] != "a=b" || fields["empty"] != "" {
			t.Errorf("unexpected fields %v", fields)
		}

		for _, bad := range []string{"novalue", "=value"} {
			if _, err := ParseFields([]string{bad}); err == nil {
				t.Errorf("expected error for %q", bad)
			}
		}
	})
}
