package emoji

import (
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
)

func TestEmojiQueries(t *testing.T) {
	tracing.SetTestingLog(t)
	if !IsEmoji(0x1F600) { // grinning face
		t.Errorf("expected U+1F600 to be an emoji")
	}
	if !HasDefaultPresentation(0x1F600) {
		t.Errorf("expected U+1F600 to have default emoji presentation")
	}
	if !IsEmoji(0x00A9) { // copyright sign
		t.Errorf("expected U+00A9 to be an emoji")
	}
	if HasDefaultPresentation(0x00A9) {
		t.Errorf("U+00A9 defaults to text presentation")
	}
	if IsEmoji('a') {
		t.Errorf("'a' must not be an emoji")
	}
}

func TestEmojiModifiers(t *testing.T) {
	tracing.SetTestingLog(t)
	if !IsModifier(0x1F3FB) { // light skin tone
		t.Errorf("expected U+1F3FB to be an emoji modifier")
	}
	if !IsModifierBase(0x1F44B) { // waving hand
		t.Errorf("expected U+1F44B to be a modifier base")
	}
	if !IsComponent(0xFE0F) { // variation selector-16
		t.Errorf("expected U+FE0F to be an emoji component")
	}
}

func TestClassForRune(t *testing.T) {
	tracing.SetTestingLog(t)
	if c := ClassForRune('a'); c != Other {
		t.Errorf("expected class Other for 'a', got %s", c)
	}
	if c := ClassForRune(0x1F3FB); c != EmojiClass {
		t.Errorf("expected the emoji class for U+1F3FB, got %s", c)
	}
	if c := ClassForRune(0xE0041); c != Emoji_ComponentClass { // tag latin A
		t.Errorf("expected the component class for U+E0041, got %s", c)
	}
}
