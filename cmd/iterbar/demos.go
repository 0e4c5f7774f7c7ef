package main

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/vbauerster/iterbar"
	"github.com/vbauerster/iterbar/decor"
	"github.com/vbauerster/iterbar/parallel"
)

func delayFlag(value time.Duration) cli.Flag {
	return &cli.DurationFlag{
		Name:  "delay",
		Usage: "Simulated work per item",
		Value: value,
	}
}

func (a *app) loopCmd() *cli.Command {
	return &cli.Command{
		Name:  "loop",
		Usage: "Iterate over a range of items",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "Number of items", Value: 100},
			delayFlag(20 * time.Millisecond),
		},
		Action: a.loop,
	}
}

func (a *app) loop(ctx context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("count"))
	delay := cmd.Duration("delay")
	bar := iterbar.New(int64(n), a.barOptions(iterbar.WithDescription("Processing"))...)
	for range iterbar.Observe(bar, steps(n)) {
		if err := sleep(ctx, delay); err != nil {
			bar.Abort()
			return err
		}
	}
	return nil
}

func (a *app) manualCmd() *cli.Command {
	return &cli.Command{
		Name:  "manual",
		Usage: "Drive a bar with explicit increments",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "total", Usage: "Bar total", Value: 100},
			&cli.IntFlag{Name: "step", Usage: "Increment per update", Value: 10},
			delayFlag(100 * time.Millisecond),
		},
		Action: a.manual,
	}
}

func (a *app) manual(ctx context.Context, cmd *cli.Command) error {
	total := int(cmd.Int("total"))
	step := int(cmd.Int("step"))
	if step < 1 {
		return fmt.Errorf("%w: step must be positive", ErrUsage)
	}
	bar := iterbar.New(int64(total), a.barOptions(iterbar.WithDescription("Manual control"))...)
	for done := 0; done < total; done += step {
		if err := sleep(ctx, cmd.Duration("delay")); err != nil {
			bar.Abort()
			return err
		}
		bar.IncrBy(min(step, total-done))
	}
	bar.Close()
	return nil
}

func (a *app) nestedCmd() *cli.Command {
	return &cli.Command{
		Name:  "nested",
		Usage: "Outer loop of epochs with a transient inner loop of batches",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "outer", Usage: "Outer iterations", Value: 3},
			&cli.IntFlag{Name: "inner", Usage: "Inner iterations", Value: 50},
			delayFlag(10 * time.Millisecond),
		},
		Action: a.nested,
	}
}

func (a *app) nested(ctx context.Context, cmd *cli.Command) error {
	outerN := int(cmd.Int("outer"))
	innerN := int(cmd.Int("inner"))
	delay := cmd.Duration("delay")

	p := iterbar.NewProgress(a.cfg.Options()...)
	outer := p.AddBar(int64(outerN), iterbar.WithDescription("Epochs"))
	defer p.Wait()
	defer outer.Close()

	for epoch := range iterbar.Observe(outer, steps(outerN)) {
		inner := p.AddBar(int64(innerN),
			iterbar.WithDescription(fmt.Sprintf("Epoch %d", epoch+1)),
			iterbar.WithLeave(false),
		)
		for range iterbar.Observe(inner, steps(innerN)) {
			if err := sleep(ctx, delay); err != nil {
				inner.Abort()
				outer.Abort()
				return err
			}
		}
	}
	return nil
}

func (a *app) postfixCmd() *cli.Command {
	return &cli.Command{
		Name:  "postfix",
		Usage: "Show training metrics next to the bar",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "epochs", Usage: "Number of epochs", Value: 20},
			delayFlag(100 * time.Millisecond),
		},
		Action: a.postfix,
	}
}

func (a *app) postfix(ctx context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("epochs"))
	bar := iterbar.New(int64(n), a.barOptions(iterbar.WithDescription("Training"))...)
	for epoch := range iterbar.Observe(bar, steps(n)) {
		loss := 1 / float64(epoch+2)
		bar.SetPostfix(
			decor.M("loss", loss),
			decor.M("acc", 1-loss/2),
			decor.M("epoch", epoch+1),
		)
		if err := sleep(ctx, cmd.Duration("delay")); err != nil {
			bar.Abort()
			return err
		}
	}
	return nil
}

func (a *app) parallelCmd() *cli.Command {
	return &cli.Command{
		Name:  "parallel",
		Usage: "Process items on a worker pool, tracking completions",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "items", Usage: "Number of items", Value: 50},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Worker count, 0 means GOMAXPROCS", Value: 4},
			delayFlag(50 * time.Millisecond),
		},
		Action: a.process,
	}
}

func (a *app) process(ctx context.Context, cmd *cli.Command) error {
	items := make([]int, int(cmd.Int("items")))
	for i := range items {
		items[i] = i
	}
	delay := cmd.Duration("delay")
	work := func(ctx context.Context, n int) (int, error) {
		// jitter, so completions arrive out of order
		d := delay
		if delay > 0 {
			d = delay/2 + rand.N(delay)
		}
		if err := sleep(ctx, d); err != nil {
			return 0, err
		}
		return n * n, nil
	}

	results, err := parallel.Process(ctx, items, work, int(cmd.Int("workers")), a.cfg.Options()...)
	a.log.WithFields(logrus.Fields{
		"items":     len(items),
		"completed": len(results),
	}).Info("parallel processing finished")
	return err
}

func steps(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
