package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ci-foundry/vmcat/pkg/driver"
	"github.com/ci-foundry/vmcat/pkg/machine"
	"github.com/ci-foundry/vmcat/pkg/platform"
)

func main() {
	var configPath, statePath, op, name, keyDir string
	flag.StringVar(&configPath, "config", "vmcat.yaml", "path to the driver config file")
	flag.StringVar(&statePath, "state", "machine.yaml", "path to the machine state file")
	flag.StringVar(&op, "op", "", "lifecycle operation: allocate, ready, stop or destroy")
	flag.StringVar(&name, "machine", "vmcat-0", "machine name used when the state file does not exist yet")
	flag.StringVar(&keyDir, "key-dir", ".", "directory searched for named ssh keys")
	flag.Parse()

	zlog, err := zap.NewProduction()
	if err != nil {
		panic(err.Error())
	}
	logger := zapr.NewLogger(zlog)

	if err := run(configPath, statePath, op, name, keyDir, logger); err != nil {
		logger.Error(err, "operation failed", "op", op)
		os.Exit(1)
	}
}

func run(configPath, statePath, op, name, keyDir string, logger logr.Logger) error {
	cfg, err := driver.LoadConfig(configPath)
	if err != nil {
		return err
	}

	spec, err := loadState(statePath, name)
	if err != nil {
		return err
	}

	client := platform.NewClient(cfg.Endpoint, cfg.Token, logger)
	machines := &machine.Builder{
		Options:    cfg.Transport,
		Keys:       machine.FileKeyResolver{Dir: keyDir},
		Transports: machine.DialTransportFactory{},
	}
	drv := driver.New(client, machines, cfg, logger)

	ctx := context.Background()
	switch op {
	case "allocate":
		err = drv.Allocate(ctx, spec)
	case "ready":
		_, err = drv.Ready(ctx, spec)
	case "stop":
		err = drv.Stop(ctx, spec)
	case "destroy":
		err = drv.Destroy(ctx, spec)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return err
	}

	return saveState(statePath, spec)
}

func loadState(path, name string) (*driver.MachineSpec, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &driver.MachineSpec{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed reading state %s: %w", path, err)
	}

	var spec driver.MachineSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("error in state file %s: %w", path, err)
	}
	return &spec, nil
}

func saveState(path string, spec *driver.MachineSpec) error {
	raw, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}
