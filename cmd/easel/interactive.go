package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/editor"
)

// interactiveCmd keeps one editor state and applies operations typed line
// by line.
type interactiveCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	execs  commandList
	ed     *editor.State
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lines  *bufio.Scanner
}

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet { return i.fs }

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	i := &interactiveCmd{root: r, fs: fs, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	fs.Usage = usageFunc(i)
	fs.StringVar(&i.file, "file", "", "image file to open first")
	fs.Var(&i.execs, "e", "execute a command instead of reading stdin (may be repeated)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	img, err := loadOptional(i.file)
	if err != nil {
		return err
	}
	if i.ed, err = i.newEditor(img, editor.WithConfirm(i.confirm)); err != nil {
		return err
	}
	if len(i.execs) > 0 {
		for _, line := range i.execs {
			done, err := i.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(i.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	i.lines = bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !i.lines.Scan() {
			break
		}
		done, err := i.executeLine(i.lines.Text())
		if err != nil {
			fmt.Fprintln(i.stderr, err)
		}
		if done {
			break
		}
	}
	return i.lines.Err()
}

func loadOptional(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	return loadImage(path)
}

// executeLine runs one command and reports whether the session should end.
func (i *interactiveCmd) executeLine(line string) (bool, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false, nil
	}
	switch strings.ToLower(words[0]) {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprintln(i.stdout, "open FILE, new W H, save FILE, status, exit, or one of:")
		fmt.Fprintln(i.stdout, "  "+strings.Join(operationNames(), " "))
		return false, nil
	case "status":
		sz := i.ed.Size()
		fmt.Fprintf(i.stdout, "%dx%d %s undo=%d redo=%d\n", sz.X, sz.Y, i.ed.Phase(), i.ed.History().Len(), i.ed.History().RedoLen())
		return false, nil
	case "open":
		if len(words) != 2 {
			return false, errors.New("open requires a file")
		}
		img, err := loadImage(words[1])
		if err != nil {
			return false, err
		}
		return false, i.ed.OpenImage(img)
	case "new":
		if len(words) != 3 {
			return false, errors.New("new requires width and height")
		}
		w, err1 := strconv.Atoi(words[1])
		h, err2 := strconv.Atoi(words[2])
		if err := errors.Join(err1, err2); err != nil {
			return false, fmt.Errorf("new: %w", err)
		}
		return false, i.ed.NewImage(w, h)
	case "save":
		if len(words) != 2 {
			return false, errors.New("save requires a file")
		}
		i.ed.Commit(true)
		if err := saveImage(words[1], i.ed.Canvas()); err != nil {
			return false, err
		}
		fmt.Fprintf(i.stderr, "saved %s\n", words[1])
		i.notifier.Save(words[1])
		return false, nil
	}
	steps, err := parseScript(words)
	if err != nil {
		return false, err
	}
	return false, runScript(i.ed, steps)
}

// confirm follows the expand policy, asking on stdout when it is ask and a
// terminal session is running.
func (i *interactiveCmd) confirm(prompt string) bool {
	switch i.config.ExpandOnPaste {
	case config.ExpandAlways:
		return true
	case config.ExpandNever:
		return false
	}
	if i.lines == nil {
		return false
	}
	fmt.Fprintf(i.stdout, "%s [y/N] ", prompt)
	if !i.lines.Scan() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(i.lines.Text())), "y")
}
