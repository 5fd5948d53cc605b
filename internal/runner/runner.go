package runner

import (
	"context"
	"os"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/superx"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

const (
	defaultInput  = "input.txt"
	defaultOutput = "output.txt"
	// stdio reads from stdin or writes to stdout
	stdio = "-"
)

type Options struct {
	Input          string
	Output         string
	Algorithm      string
	LookaheadDepth int
	Duplicates     string
	SolverConfig   string
	Config         string
	Summary        string
	Compare        bool
	Verbose        bool
	Silent         bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Shortest common superstring approximation engine.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "file with one string per line, .gz and .zst are decompressed (default input.txt or stdin)"),
	)

	flagSet.CreateGroup("solver", "Solver",
		flagSet.StringVarP(&opts.Algorithm, "algorithm", "a", "", "algorithm to use (lookahead, bidirectional, hybrid)"),
		flagSet.IntVarP(&opts.LookaheadDepth, "depth", "d", -1, "lookahead depth for the lookahead algorithm (default 3)"),
		flagSet.StringVar(&opts.Duplicates, "dup", "", "identical input strings: keep first copy or drop all copies (keep, drop)"),
		flagSet.BoolVarP(&opts.Compare, "compare", "cmp", false, "run every algorithm and keep the shortest superstring"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", defaultOutput, "output file to write the superstring to (- for stdout)"),
		flagSet.StringVarP(&opts.Summary, "summary", "s", superx.DefaultSummaryTemplate, "run summary template"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display superx version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `superx cli config file (default '$HOME/.config/superx/cli.yaml')`),
		flagSet.StringVarP(&opts.SolverConfig, "solver-config", "sc", "", `superx solver config file (default '$HOME/.config/superx/config.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	loadDefaultConfig(defaultSolverConfigPath())

	if opts.Input == "" {
		opts.Input = defaultInput
		if fileutil.HasStdin() {
			opts.Input = stdio
		}
	}
	return opts
}

// SolverOptions merges the default config, the solver config file and the
// flags, in that order, into solver options
func (o *Options) SolverOptions() (*superx.Options, error) {
	solverOpts := superx.DefaultOptions()
	if err := superx.DefaultConfig.Apply(solverOpts); err != nil {
		return nil, errorutil.NewWithTag("superx", "invalid default config got %v", err)
	}
	if o.SolverConfig != "" {
		cfg, err := superx.NewConfig(o.SolverConfig)
		if err != nil {
			return nil, errorutil.NewWithTag("superx", "failed to read %v file got: %v", o.SolverConfig, err)
		}
		if err := cfg.Apply(solverOpts); err != nil {
			return nil, err
		}
	}
	if o.Algorithm != "" {
		algorithm, err := superx.ParseAlgorithm(o.Algorithm)
		if err != nil {
			return nil, err
		}
		solverOpts.Algorithm = algorithm
	}
	if o.LookaheadDepth >= 0 {
		solverOpts.LookaheadDepth = o.LookaheadDepth
	}
	if o.Duplicates != "" {
		policy, err := superx.ParseDuplicatePolicy(o.Duplicates)
		if err != nil {
			return nil, err
		}
		solverOpts.DuplicatePolicy = policy
	}
	return solverOpts, solverOpts.Validate()
}

// Runner reads the input, solves it and writes the superstring
type Runner struct {
	options *Options
	engine  *superx.Engine
}

// NewRunner validates options and creates a runner
func NewRunner(options *Options) (*Runner, error) {
	solverOpts, err := options.SolverOptions()
	if err != nil {
		return nil, err
	}
	engine, err := superx.New(solverOpts)
	if err != nil {
		return nil, err
	}
	return &Runner{options: options, engine: engine}, nil
}

// Run executes the runner. The superstring is written before it is validated
// so a failing run still leaves its output behind for inspection.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	strs, err := r.readInput()
	if err != nil {
		return err
	}
	if len(strs) == 0 {
		gologger.Warning().Msgf("no input strings found in %v", r.options.Input)
	}
	gologger.Verbose().Msgf("read %v strings in %v", len(strs), time.Since(start).Round(time.Millisecond))

	var res *superx.Result
	var runErr error
	if r.options.Compare {
		var results []*superx.Result
		results, runErr = r.engine.Compare(ctx, strs)
		for _, v := range results {
			if v != nil {
				gologger.Info().Msgf("%s", v.Summary(r.options.Summary))
			}
		}
		res = superx.Shortest(results)
	} else {
		res, runErr = r.engine.Run(strs)
	}
	if res == nil {
		return runErr
	}

	if err := r.writeOutput(res.Superstring); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	gologger.Info().Msgf("%s", res.Summary(r.options.Summary))
	gologger.Verbose().Msgf("total time %v", time.Since(start).Round(time.Millisecond))
	return nil
}

func (r *Runner) readInput() ([]string, error) {
	if r.options.Input == stdio {
		return superx.ReadStrings(os.Stdin)
	}
	if !fileutil.FileExists(r.options.Input) {
		return nil, errorutil.NewWithTag("superx", "cannot open input file %v", r.options.Input)
	}
	strs, err := superx.ReadFile(r.options.Input)
	if err != nil {
		return nil, errorutil.NewWithTag("superx", "failed to read %v got %v", r.options.Input, err)
	}
	return strs, nil
}

func (r *Runner) writeOutput(superstring string) error {
	if r.options.Output == stdio {
		_, err := os.Stdout.WriteString(superstring + "\n")
		return err
	}
	if err := superx.WriteFile(r.options.Output, superstring); err != nil {
		return errorutil.NewWithTag("superx", "cannot open output file %v got %v", r.options.Output, err)
	}
	return nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
