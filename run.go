package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"heatx/calculator"
	"heatx/model"
	"heatx/server"
)

const defaultConfigPath = "conf/config.ini"

// loadConfigs reads both config sections; a missing default file means defaults.
func loadConfigs(path string) (calculator.Config, server.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && path == defaultConfigPath {
		return calculator.DefaultConfig(), server.DefaultConfig(), nil
	}
	calcCfg, err := calculator.LoadConfig(path)
	if err != nil {
		return calculator.Config{}, server.Config{}, err
	}
	srvCfg, err := server.LoadConfig(path)
	if err != nil {
		return calculator.Config{}, server.Config{}, err
	}
	return calcCfg, srvCfg, nil
}

func setup(path string) (*calculator.Sizer, server.Config, error) {
	calcCfg, srvCfg, err := loadConfigs(path)
	if err != nil {
		return nil, server.Config{}, err
	}
	level, err := log.ParseLevel(srvCfg.LogLevel)
	if err != nil {
		return nil, server.Config{}, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	sizer, err := calculator.NewSizer(calcCfg)
	if err != nil {
		return nil, server.Config{}, err
	}
	return sizer, srvCfg, nil
}

func runSize(configPath, casePath string, asJSON bool) error {
	sizer, _, err := setup(configPath)
	if err != nil {
		return err
	}
	c, err := model.LoadCase(casePath)
	if err != nil {
		return err
	}
	in, err := calculator.NewInput(*c)
	if err != nil {
		return fmt.Errorf("case %s: %w", casePath, err)
	}
	res, err := sizer.Size(in)
	if err != nil {
		return fmt.Errorf("sizing %s: %w", casePath, err)
	}
	if asJSON {
		return printJSON(res)
	}
	printResult(c.Name, in, res)
	return nil
}

type sweepOptions struct {
	from, to       float64
	fromSet, toSet bool
	steps          int
	workers        int
}

func runSweep(configPath, sweepPath string, opts sweepOptions) error {
	sizer, _, err := setup(configPath)
	if err != nil {
		return err
	}
	sc, err := model.LoadSweep(sweepPath)
	if err != nil {
		return err
	}
	if opts.fromSet {
		sc.DutyFrom = opts.from
	}
	if opts.toSet {
		sc.DutyTo = opts.to
	}
	if opts.steps > 0 {
		sc.Steps = opts.steps
	}
	inputs, err := calculator.NewSweep(*sc, sizer.Config().MaxSteps)
	if err != nil {
		return fmt.Errorf("sweep %s: %w", sweepPath, err)
	}
	workers := opts.workers
	if workers == 0 {
		workers = sizer.Config().Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	points, err := calculator.Sweep(ctx, sizer, inputs, workers)
	if err != nil {
		return err
	}
	printSweep(points)
	return nil
}

func runServe(configPath, addr string) error {
	sizer, srvCfg, err := setup(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		srvCfg.Addr = addr
	}
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.NewServer(srvCfg, upgrader, sizer).Serve(ctx)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
