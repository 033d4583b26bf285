package root

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"boardquest/internal/engine"
	"boardquest/internal/storage"
)

func newLogger(cfg fileConfig) *zap.Logger {
	if verbose || cfg.Verbose {
		if log, err := zap.NewDevelopment(); err == nil {
			return log
		}
	}
	return zap.NewNop()
}

func resolveDBPath(cfg fileConfig) (string, error) {
	if p := os.Getenv("BOARDQUEST_DB"); p != "" {
		return p, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return storage.DefaultDBPath(), nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg := loadConfig()
	log := newLogger(cfg)
	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(ctx, path, log)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(ctx, store, engine.WithLogger(log))
	cleanup := func() {
		_ = store.Close()
		_ = log.Sync()
	}
	return svc, cleanup, nil
}

// resolveTaskID accepts a full task id or a unique prefix of one.
func resolveTaskID(svc *engine.Service, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("task id is required")
	}
	var match string
	for _, t := range svc.ListTasks(engine.Query{}) {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous task id %q", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task matches %q", arg)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
