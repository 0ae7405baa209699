package ui

import (
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// clipboardCommands lists external copy tools per GOOS in order of
// preference.
var clipboardCommands = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"linux":   {{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
	"windows": {{"clip"}},
}

// writeClipboard is swapped out in tests.
var writeClipboard = copyToClipboard

// copyToClipboard copies text with the native clipboard library, then an
// external tool, and finally an OSC 52 sequence for remote terminals.
func copyToClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr == nil {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}

	if argv := pickClipboardCommand(runtime.GOOS, exec.LookPath); argv != nil {
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		return cmd.Run()
	}

	termenv.Copy(text)
	return nil
}

// pickClipboardCommand returns the first installed tool for goos, or nil.
func pickClipboardCommand(goos string, lookPath func(string) (string, error)) []string {
	for _, argv := range clipboardCommands[goos] {
		if _, err := lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}
