package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/govalues/coins"
	"github.com/govalues/coins/internal/config"
	"github.com/govalues/coins/internal/machine"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	var (
		x      = flag.Int("x", 0, "column of the product")
		y      = flag.Int("y", 0, "row of the product")
		insert = flag.String("insert", "", "comma-separated coins to insert, e.g. \"EUR 1,EUR 0.50\"")
		list   = flag.Bool("list", false, "list the products and exit")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := newLogger(cfg)

	if err := run(cfg, logger, os.Stdout, *x, *y, *insert, *list); err != nil {
		level.Error(logger).Log("msg", "purchase failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) log.Logger {
	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allowLevel(cfg.LogLevel))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func allowLevel(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}

func parseCoins(s string) ([]coins.Coin, error) {
	var list []coins.Coin
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		c, err := coins.ParseCoin(f)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func run(cfg *config.Config, logger log.Logger, out io.Writer, x, y int, insert string, list bool) error {
	m, err := cfg.Machine()
	if err != nil {
		return err
	}
	if list {
		for _, s := range m.Slots() {
			fmt.Fprintf(out, "(%v, %v) %-10v %v ×%v\n", s.X, s.Y, s.Product.Name, s.Product.Price, s.Portions)
		}
		return nil
	}
	user, err := cfg.UserWallet()
	if err != nil {
		return err
	}
	inserted, err := parseCoins(insert)
	if err != nil {
		return err
	}

	m.Subscribe(func(e machine.Event) {
		level.Debug(logger).Log("event", e.Kind, "coin", e.Coin.String(), "product", e.Product.Name, "err", e.Err)
	})
	var svc machine.Service = m
	svc = machine.NewLoggingService(log.With(logger, "component", "machine"), svc)

	ctx := context.Background()
	for _, c := range inserted {
		if err := svc.InsertCoin(ctx, user, c); err != nil {
			return err
		}
	}
	r, err := svc.Buy(ctx, user, x, y)
	if err != nil {
		if _, rerr := svc.Release(ctx, user); rerr != nil {
			return fmt.Errorf("%w, releasing coins: %v", err, rerr)
		}
		return err
	}
	fmt.Fprintf(out, "Receipt %v\n", r.ID)
	fmt.Fprintf(out, "Product: %v\n", r.Product)
	fmt.Fprintf(out, "Paid:    %v\n", r.Paid)
	fmt.Fprintf(out, "Change:  %v\n", r.Change)
	fmt.Fprintf(out, "Wallet:  %v\n", user)
	return nil
}
