package main

import (
	"fmt"
	"io"

	"github.com/ajalab/smtvar"
	"github.com/ajalab/smtvar/log"
	"github.com/ajalab/smtvar/smt"
	"github.com/ajalab/smtvar/smtlib"
	"github.com/ajalab/smtvar/solver"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	configPath string
	funcNames  []string
	backend    string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "smtvar [flags] <package>",
		Short:        "Declares the symbolic variables of Go functions in an SMT solver",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringSliceVarP(&o.funcNames, "func", "f", nil, "functions to encode (default: all functions of the package)")
	fs.StringVar(&o.backend, "backend", "", "solver backend: smtlib or z3 (default smtlib)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, error or disabled")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored diagnostics")
}

// config merges the config file, if any, with the flags.
func (o *options) config(args []string) (*smtvar.Config, error) {
	config := &smtvar.Config{}
	if o.configPath != "" {
		c, err := smtvar.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		config = c
	}
	flags := &smtvar.Config{
		FuncNames: o.funcNames,
		Backend:   smtvar.Backend(o.backend),
		LogLevel:  o.logLevel,
	}
	if len(args) > 0 {
		flags.Package = args[0]
	}
	config.Merge(flags)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Package == "" {
		return nil, errors.New("no package given")
	}
	return config, nil
}

func (o *options) run(args []string, stdout, stderr io.Writer) error {
	config, err := o.config(args)
	if err != nil {
		return err
	}
	if config.LogLevel != "" {
		if err := log.SetLevelByName(config.LogLevel); err != nil {
			return err
		}
	}
	if o.noColor {
		color.NoColor = true
	}

	pkg, err := smtvar.LoadPackage(config.Package)
	if err != nil {
		return err
	}
	fns, err := smtvar.Functions(pkg, config.FuncNames)
	if err != nil {
		return err
	}

	var s smt.Solver
	var session *smtlib.Session
	var z3 *solver.Z3Solver
	switch config.Backend {
	case smtvar.BackendZ3:
		z3 = solver.NewZ3Solver()
		s = z3
	default:
		session = smtlib.NewSession()
		s = session
	}

	warn := color.New(color.FgYellow).SprintFunc()
	encoder := smtvar.NewEncoder(s)
	for _, fn := range fns {
		u, err := encoder.EncodeFunction(fn)
		if err != nil {
			return err
		}
		for _, skipped := range u.Skipped {
			fmt.Fprintf(stderr, "%s %s: %v\n", warn("skip"), fn.Name(), skipped)
		}
	}
	log.Info.Printf("encoded %d functions of %s", len(fns), pkg.Pkg.Path())

	if session != nil {
		_, err := session.WriteTo(stdout)
		return err
	}
	fmt.Fprintf(stdout, "%d symbols declared in Z3\n", z3.Len())
	return nil
}
