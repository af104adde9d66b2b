package main

import (
	"context"
	"fmt"
	"io"

	"github.com/eaugeas/bstree/container/tree"
	"github.com/eaugeas/bstree/export"
	"github.com/eaugeas/bstree/logs"
	"github.com/pkg/errors"
)

func build(ctx context.Context, logger logs.Logger, cfg *TreeConfig) (*tree.Tree, error) {
	t := tree.New()
	for _, k := range cfg.Keys {
		t.Insert(k)
		logger.Debug(ctx, "insert", logs.MapFields{"key": k})
	}

	for _, k := range cfg.Delete {
		n := t.Search(k)
		if n == nil {
			logger.Warn(ctx, "key to delete not found", logs.MapFields{"key": k})
			continue
		}

		t.Delete(n)
		logger.Debug(ctx, "delete", logs.MapFields{"key": k})
	}

	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "tree is corrupted")
	}

	logger.Info(ctx, "tree built", logs.MapFields{
		"len":    t.Len(),
		"height": t.Height(),
	})

	return t, nil
}

func report(w io.Writer, t *tree.Tree, cfg *TreeConfig) error {
	p := &printer{w: w}

	for _, k := range cfg.Search {
		if n := t.Search(k); n != nil {
			p.printf("search %d: found %d\n", k, n.Key())
		} else {
			p.printf("search %d: not found\n", k)
		}
	}

	min, err := t.Min()
	if errors.Is(err, tree.ErrEmptyTree) {
		p.printf("tree is empty\n")
		return p.err
	}

	max, _ := t.Max()
	p.printf("minimum: %d\n", min.Key())
	p.printf("maximum: %d\n", max.Key())
	p.printf("root: %d\n", max.Root().Key())

	for _, k := range cfg.Successor {
		n := t.Search(k)
		if n == nil {
			p.printf("successor %d: key not found\n", k)
			continue
		}

		if succ := n.Successor(); succ != nil {
			p.printf("successor %d: %d\n", k, succ.Key())
		} else {
			p.printf("successor %d: none\n", k)
		}
	}

	p.printf("%s", export.Text(t))
	return p.err
}

func run(ctx context.Context, logger logs.Logger, cfg *Config, w io.Writer) error {
	t, err := build(ctx, logger, &cfg.Tree)
	if err != nil {
		return err
	}

	if err := report(w, t, &cfg.Tree); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	if len(cfg.Export.Output) == 0 {
		return nil
	}

	if err := export.WriteFile(cfg.Export.Output, t, cfg.Export.Format); err != nil {
		return err
	}

	logger.Info(ctx, "tree exported", logs.MapFields{
		"output": cfg.Export.Output,
		"format": cfg.Export.Format,
	})

	return nil
}

// printer keeps the first write error so that a report can be
// written without checking every line
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
