package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptTrimsAnswer(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  Ada \r\nrock\n"), &out)

	name, err := c.Prompt("What's your name?")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if name != "Ada" {
		t.Fatalf("expected Ada, got %q", name)
	}
	choice, err := c.Prompt("Choose:")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if choice != "rock" {
		t.Fatalf("expected rock, got %q", choice)
	}
	if out.String() != "What's your name?\nChoose:\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("y"), io.Discard)
	answer, err := c.Prompt("again?")
	if err != nil || answer != "y" {
		t.Fatalf("expected y, got %q err=%v", answer, err)
	}
	if _, err := c.Prompt("again?"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestClearIsNoopOffTerminal(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.Clear()
	c.Println("hello")
	if out.String() != "hello\n" {
		t.Fatalf("expected no clear sequence, got %q", out.String())
	}
}
