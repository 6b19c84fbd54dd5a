// FILE: dash-website/console/cmd/playground/main.go
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	console "github.com/y21/dash-website"
)

const (
	historyFile = ".dash_console_history"
	prompt      = "dbg> "
)

var banner = "dash console playground\n" +
	"Each line is parsed as JSON and inspected; invalid JSON logs as a string.\n" +
	"Commands: :expand  :clear  :quit"

func main() {
	c, err := console.NewBuilder().
		ShowContext(false).
		InternalErrorsToStderr(true).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = rl.ReadHistory(f)
		_ = f.Close()
	}
	defer saveHistory(rl, histPath)

	fmt.Println(banner)

	for {
		line, err := rl.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if line == "" {
			continue
		}
		rl.AppendHistory(line)

		switch line {
		case ":quit":
			return
		case ":clear":
			c.Clear()
			continue
		case ":expand":
			entries := c.Entries()
			if len(entries) == 0 {
				continue
			}
			last := entries[len(entries)-1]
			c.HandleClick(last)
			fmt.Println(last.HTML())
			continue
		}

		var v any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			v = line
		}
		c.Log(v)

		entries := c.Entries()
		fmt.Println(entries[len(entries)-1].HTML())
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func saveHistory(rl *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = rl.WriteHistory(f)
}
