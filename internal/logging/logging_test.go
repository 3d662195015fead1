package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeromicro/go-zero/core/logx"
)

func TestUseRotatingFileWithoutPathIsNoop(t *testing.T) {
	c := UseRotatingFile(FileConf{})
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestUseRotatingFileWritesLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playshelf.log")
	closer := UseRotatingFile(FileConf{Path: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1})
	defer logx.Reset()

	logx.Info("rotating writer check")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "rotating writer check") {
		t.Fatalf("log line missing: %s", b)
	}
}
