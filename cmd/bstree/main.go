// Command bstree builds a binary search tree from a list of keys,
// deletes some of them and reports search, minimum, maximum, root
// and successor queries on the result. The final tree can be exported
// to a Graphviz file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/eaugeas/bstree/config"
	errs "github.com/eaugeas/bstree/errors"
	"github.com/eaugeas/bstree/logs"
	"github.com/spf13/pflag"
)

func main() {
	cfg := &Config{}
	parser, err := config.Generate("bstree", cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := parser.Parse(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_ = parser.Usage()
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err.Error())
		_ = parser.Usage()
		os.Exit(2)
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  cfg.Log.Level,
		Output: os.Stderr,
		Format: cfg.Log.Format,
	})

	ctx := logs.WithTraceID(context.Background(), time.Now().UnixNano())
	if err := run(ctx, logger, cfg, os.Stdout); err != nil {
		logger.Error(ctx, "bstree failed", errs.Fields(err))
		os.Exit(1)
	}
}
