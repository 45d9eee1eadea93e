package main

import (
	"bufio"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/cvmlabs/cvm/cvm"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return errors.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type cvmConfig struct {
	// Settings override the VM defaults; keys follow the runtime's
	// "log.level.<subsystem>" / "vm.checks" convention.
	Settings map[string]string
}

func loadConfig(file string, cfg *cvmConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "open config %s", file)
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if err != nil {
		return errors.Wrapf(err, "decode config %s", file)
	}
	return nil
}

// makeVMSettings folds defaults, config file and command line flags into the
// singleton VM's settings, most specific last.
func makeVMSettings(ctx *cli.Context) (*cvmConfig, error) {
	cfg := &cvmConfig{Settings: make(map[string]string)}
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, cfg); err != nil {
			return nil, err
		}
	}
	for key, value := range cfg.Settings {
		cvm.VM.SetSystemSetting(key, value)
	}
	if ctx.GlobalIsSet(logDirFlag.Name) {
		cvm.VM.SetSystemSetting("log.base", ctx.GlobalString(logDirFlag.Name))
	}
	return cfg, nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeVMSettings(ctx)
	if err != nil {
		return err
	}
	if len(cfg.Settings) == 0 {
		cfg.Settings = cvm.VM.SystemSettings
	}

	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	os.Stdout.Write(out)
	return nil
}
