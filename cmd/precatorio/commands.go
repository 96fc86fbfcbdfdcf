package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/warp/precatorio-engine/api"
	"github.com/warp/precatorio-engine/config"
	"github.com/warp/precatorio-engine/factory"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
	"github.com/warp/precatorio-engine/report"
)

// app carries state shared by the subcommands once the root has loaded
// configuration.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	var configPath string
	root := &cobra.Command{
		Use:           "precatorio",
		Short:         "Precatório update calculator",
		Long:          "Computes monetary correction and moratory interest of a precatório under the CF, EC 114 and EC 136 regimes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configPath)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./precatorio.yaml if present)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newCalculateCmd(a), newRegimeCmd(), newVersionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, configPath string) error {
	if err := config.ReadFile(a.v, configPath); err != nil {
		return err
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// ===== calculate =====

type calculateOptions struct {
	input          string
	principal      float64
	base           string
	issuance       string
	final          string
	correctionRate float64
	interestRate   float64
	format         string
}

func newCalculateCmd(a *app) *cobra.Command {
	var opts calculateOptions
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the updated value of a precatório",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := opts.caseDefinition(cmd)
			if err != nil {
				return err
			}

			in, err := factory.NewCaseFactory(a.cfg.DefaultRates()).ToInput(*def)
			if err != nil {
				return err
			}

			a.logger.Debug("calculating",
				"principal", in.Principal.String(),
				"base", in.BaseDate.String(),
				"issuance", in.IssuanceDate.String(),
				"final", in.FinalDate.String())

			res := precatorio.Calculate(in)
			return writeResult(cmd.OutOrStdout(), opts.format, in, res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "case file (.yaml, .yml or .json)")
	f.Float64Var(&opts.principal, "principal", 0, "approved principal (valor homologado)")
	f.StringVar(&opts.base, "base", "", "base date, YYYY-MM-DD")
	f.StringVar(&opts.issuance, "issuance", "", "requisition order date, YYYY-MM-DD")
	f.StringVar(&opts.final, "final", "", "final evaluation date, YYYY-MM-DD")
	f.Float64Var(&opts.correctionRate, "correction-rate", 0, "annual correction rate in percent (default from config)")
	f.Float64Var(&opts.interestRate, "interest-rate", 0, "annual interest rate in percent (default from config)")
	f.StringVarP(&opts.format, "format", "f", "console", "output format: console, csv, json")
	cmd.MarkFlagsMutuallyExclusive("input", "principal")
	return cmd
}

// caseDefinition builds the definition from --input, then applies any
// explicitly set flags on top of it.
func (o *calculateOptions) caseDefinition(cmd *cobra.Command) (*factory.CaseJSON, error) {
	def := &factory.CaseJSON{}
	if o.input != "" {
		format, err := factory.FormatFromPath(o.input)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(o.input)
		if err != nil {
			return nil, fmt.Errorf("failed to read case file: %w", err)
		}
		if def, err = factory.ParseCase(data, format); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("principal") {
		def.Principal = &o.principal
	}
	if flags.Changed("base") {
		def.BaseDate = o.base
	}
	if flags.Changed("issuance") {
		def.IssuanceDate = o.issuance
	}
	if flags.Changed("final") {
		def.FinalDate = o.final
	}
	if flags.Changed("correction-rate") {
		def.CorrectionRate = &o.correctionRate
	}
	if flags.Changed("interest-rate") {
		def.InterestRate = &o.interestRate
	}
	return def, nil
}

func writeResult(w io.Writer, format string, in precatorio.Input, res precatorio.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(api.ResultPayload(res))
	}

	formatter := report.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (use console, csv or json)", format)
	}
	return formatter.Format(w, in, res)
}

// ===== regime =====

func newRegimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regime <data-oficio>",
		Short: "Show the regime and grace window for a requisition order date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issuance, err := generic.ParseDate(args[0])
			if err != nil {
				return err
			}
			res := precatorio.ResolveRegime(issuance)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Regime: %s\nPeríodo de Graça: %s até %s\n",
				res.Regime,
				report.FormatDateBR(res.GraceWindow.Start),
				report.FormatDateBR(res.GraceWindow.End))
			return err
		},
	}
}

// ===== version =====

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "precatorio %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}
