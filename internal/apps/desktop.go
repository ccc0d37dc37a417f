package apps

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DesktopExt = ".desktop"

	namePrefix = "Name="
	execPrefix = "Exec="
)

// IsDesktopFile reports whether path carries the desktop entry extension.
func IsDesktopFile(path string) bool {
	return filepath.Ext(path) == DesktopExt
}

// ParseDesktopFile extracts the first Name= and Exec= values from a desktop
// file. ok is false when either one is missing; that is not an error.
// Lines are read whole, so no line length is too long.
func ParseDesktopFile(path string) (name, exec string, ok bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", "", false, err
	}
	defer file.Close()

	var haveName, haveExec bool
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return "", "", false, readErr
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case !haveName && strings.HasPrefix(line, namePrefix):
			name = strings.TrimPrefix(line, namePrefix)
			haveName = true
		case !haveExec && strings.HasPrefix(line, execPrefix):
			exec = strings.TrimPrefix(line, execPrefix)
			haveExec = true
		}

		if haveName && haveExec {
			return name, exec, true, nil
		}
		if readErr == io.EOF {
			return "", "", false, nil
		}
	}
}
