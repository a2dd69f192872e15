// Package terminal provides the line-oriented console the game talks through.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

// Prompter shows a question and returns the answer with surrounding
// whitespace removed. io.EOF means the user left.
type Prompter interface {
	Prompt(msg string) (string, error)
}

type Printer interface {
	Println(msg string)
}

type Screen interface {
	Clear()
}

// Console implements Prompter, Printer and Screen over a reader and a writer.
type Console struct {
	mu       sync.Mutex
	in       *bufio.Reader
	out      io.Writer
	clearing bool
}

// New builds a Console. Clearing is enabled only when out is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		clearing: isTerminal(out),
	}
}

// Stdio is the Console bound to the process's standard streams.
func Stdio() *Console {
	return New(os.Stdin, os.Stdout)
}

func (c *Console) Println(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Prompt(msg string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, msg)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Clear() {
	if !c.clearing {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, clearSequence)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
