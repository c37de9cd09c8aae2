package nlp

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize_MenuSentence(t *testing.T) {
	n := NewNormalizer(0)

	got := n.Normalize("The seafood platter was delicious and beautifully presented!")
	want := []string{"seafood", "platter", "delicious", "beautifully", "present"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_StripsMarkupAndDigits(t *testing.T) {
	n := NewNormalizer(0)

	got := n.Normalize("<p>Fresh &amp; hot BBQ ribs for UGX 25,000</p>")
	want := []string{"fresh", "hot", "bbq", "rib", "ugx"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_FoldsAccents(t *testing.T) {
	n := NewNormalizer(0)

	got := n.Normalize("Crème brûlée with café au lait")
	want := []string{"creme", "brulee", "cafe", "lait"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_SmartQuotes(t *testing.T) {
	n := NewNormalizer(0)

	// Возможный ввод со страниц сайта: типографские кавычки и апострофы.
	got := n.Normalize("Kampala’s finest “dry-aged” steaks")
	want := []string{"kampala", "finest", "dry", "age", "steak"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_DropsStopwordsAndShortTokens(t *testing.T) {
	n := NewNormalizer(0)

	got := n.Normalize("It was the most amazing meal we have ever had")
	want := []string{"amaze", "meal", "ever"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_EmptyAndNoiseOnly(t *testing.T) {
	n := NewNormalizer(0)

	for _, raw := range []string{"", "   ", "12345 !!! ---", "<div></div>", "a an of to", "は日本語"} {
		if got := n.Normalize(raw); len(got) != 0 {
			t.Errorf("Normalize(%q) = %v, want empty", raw, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer(0)

	inputs := []string{
		"The seafood platter was delicious and beautifully presented",
		"Vodka based cocktail with fresh lime and mint leaves",
		"South African Cabernet Sauvignon with dark fruit and oak notes",
		"Red velvet cake with cream cheese frosting",
		"He goes there every evening for the grilled chicken wings",
	}
	for _, raw := range inputs {
		once := n.Normalize(raw)
		again := n.Normalize(strings.Join(once, " "))
		if !reflect.DeepEqual(once, again) {
			t.Errorf("Normalize not idempotent for %q:\n once  = %v\n again = %v", raw, once, again)
		}
	}
}

func TestNormalize_MinTokenLen(t *testing.T) {
	n := NewNormalizer(5)

	got := n.Normalize("dark oak notes linger nicely")
	// dark, oak: below the floor of five; notes lemmatizes to note (4) and is dropped too.
	want := []string{"linger", "nicely"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}
