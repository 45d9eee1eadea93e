package cvm

import (
	"os"
	"path"

	log "github.com/inconshreveable/log15"
)

// Log levels accepted by the "log.level.*" system settings. They map onto
// log15 levels; the numbering matches log15 (lower is more severe).
const (
	CRITICAL = int(log.LvlCrit)
	ERROR    = int(log.LvlError)
	WARN     = int(log.LvlWarn)
	INFO     = int(log.LvlInfo)
	DEBUG    = int(log.LvlDebug)
)

type LoggerFactory struct {
	base string // log directory; empty means stderr only
}

// NewLogger builds a per-subsystem logger. When the factory has a base
// directory the subsystem gets its own log file, otherwise records go to
// stderr.
func (this *LoggerFactory) NewLogger(name string, level int, filename string) log.Logger {
	logger := log.New("module", name)

	var handler log.Handler
	if this.base != "" && filename != "" {
		if err := os.MkdirAll(this.base, 0755); err == nil {
			if h, err := log.FileHandler(path.Join(this.base, filename), log.LogfmtFormat()); err == nil {
				handler = h
			}
		}
	}
	if handler == nil {
		handler = log.StreamHandler(os.Stderr, log.TerminalFormat())
	}
	logger.SetHandler(log.LvlFilterHandler(log.Lvl(level), handler))
	return logger
}
