package logging

import (
	"io"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// FileConf routes logx output to a rotating file when Path is set.
type FileConf struct {
	Path       string `json:",optional"`
	MaxSize    int    `json:",default=100"`
	MaxBackups int    `json:",default=5"`
	MaxAge     int    `json:",default=30"`
	Compress   bool   `json:",optional"`
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// UseRotatingFile swaps the logx writer for a lumberjack-backed one.
// It must run after logx has been set up, since setup installs its own writer.
func UseRotatingFile(c FileConf) io.Closer {
	if strings.TrimSpace(c.Path) == "" {
		return nopCloser{}
	}
	w := &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
	logx.SetWriter(logx.NewWriter(w))
	return w
}

// SetupConsole configures plain console logging for command line use.
func SetupConsole(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		level = "debug"
	case "error":
		level = "error"
	case "severe":
		level = "severe"
	default:
		level = "info"
	}
	logx.MustSetup(logx.LogConf{Mode: "console", Encoding: "plain", Level: level, Stat: false})
}
