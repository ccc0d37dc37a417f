package logging

import (
	"io"
	"os"

	gologging "github.com/op/go-logging"
)

const format = `%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}`

// Get returns the named logger for a package.
func Get(module string) *gologging.Logger {
	return gologging.MustGetLogger(module)
}

// Init routes all loggers to stderr at the given level (0 = CRITICAL ... 5 = DEBUG).
func Init(level int) {
	InitWriter(os.Stderr, level)
}

func InitWriter(w io.Writer, level int) {
	if level < int(gologging.CRITICAL) {
		level = int(gologging.CRITICAL)
	}
	if level > int(gologging.DEBUG) {
		level = int(gologging.DEBUG)
	}

	backend := gologging.NewLogBackend(w, "", 0)
	formatted := gologging.NewBackendFormatter(backend, gologging.MustStringFormatter(format))
	leveled := gologging.AddModuleLevel(formatted)
	leveled.SetLevel(gologging.Level(level), "")
	gologging.SetBackend(leveled)
}
