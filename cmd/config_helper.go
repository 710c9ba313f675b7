package main

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/rmohr/logicmin/pkg/api/logicmin"
	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/report"
)

const configFile = "logicmin/config.yaml"

type rootOpts struct {
	config         string
	logLevel       string
	allowUppercase bool
	maxVariables   int
}

var rootopts = rootOpts{}

// loadConfig reads the given file, or the first config file found in the XDG
// config directories. A missing default file yields an empty config.
func loadConfig(file string) (*logicmin.Config, error) {
	if file == "" {
		found, err := xdg.SearchConfigFile(configFile)
		if err != nil {
			logrus.Debugf("No config file found: %v", err)
			return &logicmin.Config{}, nil
		}
		file = found
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", file)
	}
	cfg := &logicmin.Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", file)
	}
	logrus.Debugf("Loaded config file %s", file)
	return cfg, nil
}

// toOptions merges the config file with the command line. Flags win.
func toOptions(cfg *logicmin.Config, root rootOpts, backends []string) compiler.Options {
	opts := compiler.Options{
		MaxVariables: cfg.MaxVariables,
		Backends:     cfg.Backends,
	}
	if cfg.AllowUppercase || root.allowUppercase {
		opts.Case = formula.AnyCase
	}
	if root.maxVariables > 0 {
		opts.MaxVariables = root.maxVariables
	}
	if len(backends) > 0 {
		opts.Backends = backends
	}
	return opts
}

func outputFormat(cfg *logicmin.Config, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg.Output != "" {
		return cfg.Output
	}
	return report.FormatText
}

func options(backends []string) (compiler.Options, *logicmin.Config, error) {
	cfg, err := loadConfig(rootopts.config)
	if err != nil {
		return compiler.Options{}, nil, err
	}
	return toOptions(cfg, rootopts, backends), cfg, nil
}

// formulaArg joins the positional arguments so that unquoted formulas with
// spaces work too.
func formulaArg(args []string) string {
	return strings.Join(args, " ")
}
