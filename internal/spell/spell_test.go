package spell

import (
	"testing"

	"sinhawp/internal/wordmap"
)

func testChecker() *Checker {
	return New(wordmap.New([]wordmap.Entry{
		{Singlish: "mama", Sinhala: "මම"},
		{Singlish: "gedara", Sinhala: "ගෙදර"},
	}))
}

func TestIsKnown(t *testing.T) {
	c := testChecker()
	if !c.IsKnown("මම") {
		t.Fatal("මම should be known")
	}
	if c.IsKnown("යනවා") {
		t.Fatal("යනවා should be unknown")
	}
}

func TestAddWord(t *testing.T) {
	c := testChecker()
	c.AddWord("යනවා")
	if !c.IsKnown("යනවා") {
		t.Fatal("added word not known")
	}
	c.AddWord("")
	if c.IsKnown("") {
		t.Fatal("empty word must not become known")
	}
}

func TestIsSinhala(t *testing.T) {
	if !IsSinhala("මම") {
		t.Fatal("මම is Sinhala")
	}
	if IsSinhala("hello") {
		t.Fatal("hello is not Sinhala")
	}
	if !IsSinhala("abමml") {
		t.Fatal("mixed word contains Sinhala")
	}
}

func TestCheckTextFlagsUnknownRuns(t *testing.T) {
	c := testChecker()
	text := "මම hello යනවා ගෙදර"
	spans := c.CheckText(text)
	if len(spans) != 1 {
		t.Fatalf("spans = %+v", spans)
	}
	if spans[0].Word != "යනවා" {
		t.Fatalf("flagged %q", spans[0].Word)
	}
	if got := text[spans[0].Start:spans[0].End]; got != "යනවා" {
		t.Fatalf("span bytes = %q", got)
	}
}

func TestCheckTextUnknownAtEnd(t *testing.T) {
	c := testChecker()
	spans := c.CheckText("hello බත්")
	if len(spans) != 1 || spans[0].Word != "බත්" {
		t.Fatalf("spans = %+v", spans)
	}
}

func TestCheckTextLatinOnly(t *testing.T) {
	c := testChecker()
	if spans := c.CheckText("plain latin text"); len(spans) != 0 {
		t.Fatalf("spans = %+v", spans)
	}
	if spans := c.CheckText(""); len(spans) != 0 {
		t.Fatalf("spans = %+v", spans)
	}
}
