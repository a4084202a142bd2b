package config

import (
	"strings"
	"testing"

	"github.com/decker502/gingerrain/pkg/types"
)

func TestDefaultDroppablesConfig(t *testing.T) {
	cfg := DefaultDroppablesConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default catalog should be valid: %v", err)
	}

	tests := []struct {
		kind types.DropKind
		want int
	}{
		{types.DropRaindrop, -1},
		{types.DropLargeRaindrop, -3},
		{types.DropSugar, 1},
		{types.DropJellybean, 2},
	}
	for _, tt := range tests {
		d, ok := cfg.Get(tt.kind)
		if !ok {
			t.Fatalf("Missing definition for %s", tt.kind)
		}
		if d.LifeModifier != tt.want {
			t.Errorf("%s: expected lifeModifier %d, got %d", tt.kind, tt.want, d.LifeModifier)
		}
	}
}

func TestParseDroppablesConfig(t *testing.T) {
	data := []byte(`
droppables:
  - kind: raindrop
    imageID: IMAGE_RAINDROP
    soundID: SOUND_DROP
    lifeModifier: -2
  - kind: large_raindrop
    imageID: IMAGE_RAINDROP_LARGE
    soundID: SOUND_DROP_LARGE
    lifeModifier: -4
  - kind: sugar
    imageID: IMAGE_SUGARDROP
    soundID: SOUND_SUGAR
    lifeModifier: 1
  - kind: jellybean
    imageID: IMAGE_JELLYBEAN
    soundID: SOUND_JELLYBEAN
    lifeModifier: 3
`)
	cfg, err := ParseDroppablesConfig(data)
	if err != nil {
		t.Fatalf("ParseDroppablesConfig failed: %v", err)
	}

	d, ok := cfg.Get(types.DropRaindrop)
	if !ok || d.LifeModifier != -2 {
		t.Errorf("Expected raindrop lifeModifier -2, got %+v", d)
	}
}

func TestParseDroppablesConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown kind",
			yaml:    "droppables:\n  - kind: hail\n    imageID: A\n    soundID: B\n",
			wantErr: "unknown drop kind",
		},
		{
			name:    "missing kinds",
			yaml:    "droppables:\n  - kind: raindrop\n    imageID: A\n    soundID: B\n",
			wantErr: "missing definition",
		},
		{
			name: "duplicate kind",
			yaml: "droppables:\n" +
				"  - {kind: raindrop, imageID: A, soundID: B}\n" +
				"  - {kind: raindrop, imageID: A, soundID: B}\n",
			wantErr: "duplicate kind",
		},
		{
			name:    "empty image",
			yaml:    "droppables:\n  - {kind: sugar, soundID: B}\n",
			wantErr: "imageID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDroppablesConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
