package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"pet-adoption-dashboard/internal/app"
	"pet-adoption-dashboard/internal/domain/dice"
	"pet-adoption-dashboard/internal/domain/dogs"
	"pet-adoption-dashboard/internal/platform/config"
	"pet-adoption-dashboard/internal/platform/logger"

	"github.com/spf13/cobra"
)

// rootOptions son los flags globales; pisan la config de entorno si se setean.
type rootOptions struct {
	csvPath string
	source  string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Query the adoptable dogs dataset and run dice simulations from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.csvPath, "csv", "", "CSV file (implies --source csv)")
	root.PersistentFlags().StringVar(&opts.source, "source", "", "dataset source: csv, http, postgres, sqlite (default DOGS_SOURCE)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging to stderr")

	root.AddCommand(
		newRegionsCmd(opts),
		newBreedsCmd(opts),
		newChartCmd(opts),
		newTableCmd(opts),
		newSimulateCmd(opts),
	)
	return root
}

func (o *rootOptions) loadConfig() (config.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.App{}, err
	}
	if o.source != "" {
		cfg.Dogs.Source = o.source
	}
	if o.csvPath != "" {
		cfg.Dogs.Source = "csv"
		cfg.Dogs.CSVPath = o.csvPath
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(cmd *cobra.Command) logger.Logger {
	if !o.debug {
		return logger.Nop()
	}
	return logger.New(logger.Options{Level: logger.Debug, Out: cmd.ErrOrStderr(), App: "dashctl"})
}

func (o *rootOptions) loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), cfg, o.newLogger(cmd))
}

func newRegionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List states present in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.Dogs.Regions(), "\n"))
			return nil
		},
	}
}

func newBreedsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "List breed filter options (All, Other and the 20 most common breeds)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.Dogs.BreedOptions(), "\n"))
			return nil
		},
	}
}

func newChartCmd(opts *rootOptions) *cobra.Command {
	var state, size string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Top 10 breeds for a state and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sz, err := dogs.ParseSize(size)
			if err != nil {
				return err
			}
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}

			chart, err := a.Dogs.Chart(cmd.Context(), state, sz)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, chart.Title)
			for _, c := range chart.Series {
				fmt.Fprintf(tw, "%s\t%d\n", c.Category, c.Count)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&state, "state", dogs.DefaultState, "state code")
	cmd.Flags().StringVar(&size, "size", string(dogs.DefaultSize), "Small, Medium or Large")
	return cmd
}

func newTableCmd(opts *rootOptions) *cobra.Command {
	var (
		state, breed, sortBy string
		ages, genders        []string
		maxRows              int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Filtered and sorted dog table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := dogs.TableQuery{
				Filter:  dogs.FilterQuery{State: state, Breed: breed},
				MaxRows: maxRows,
			}
			for _, v := range ages {
				age, err := dogs.ParseAge(v)
				if err != nil {
					return err
				}
				q.Filter.Ages = append(q.Filter.Ages, age)
			}
			for _, v := range genders {
				g, err := dogs.ParseGender(v)
				if err != nil {
					return err
				}
				q.Filter.Genders = append(q.Filter.Genders, g)
			}
			key, err := dogs.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			q.Sort = key

			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}
			table, err := a.Dogs.Table(cmd.Context(), q)
			if err != nil {
				return err
			}
			printTable(cmd, table)
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", dogs.DefaultState, "state code")
	cmd.Flags().StringSliceVar(&ages, "age", []string{"Baby", "Young", "Adult", "Senior"}, "ages")
	cmd.Flags().StringSliceVar(&genders, "gender", []string{"Female", "Male"}, "genders")
	cmd.Flags().StringVar(&breed, "breed", dogs.BreedAll, "breed, All or Other")
	cmd.Flags().StringVar(&sortBy, "sort", string(dogs.SortPublishedDate), "published_date or city")
	cmd.Flags().IntVar(&maxRows, "max-rows", dogs.DefaultMaxRows, "row limit")
	return cmd
}

func printTable(cmd *cobra.Command, t dogs.Table) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	// sin la columna de foto; el link va al lado del nombre
	fmt.Fprintln(tw, strings.Join(append([]string{"pet_name", "url"}, t.Columns[2:]...), "\t"))
	for _, r := range t.Rows {
		fmt.Fprintln(tw, strings.Join(append([]string{r.Name, r.URL}, r.Fields...), "\t"))
	}
	_ = tw.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d dogs\n", len(t.Rows), t.Total)
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		sides, rolls, trials string
		seed                 int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Running mean of dice-roll trials (prints the final mean of each trial)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				p   dice.Params
				err error
			)
			if p.Sides, err = dice.ParseCount("sides", sides); err != nil {
				return err
			}
			if p.Rolls, err = dice.ParseCount("rolls", rolls); err != nil {
				return err
			}
			if p.Trials, err = dice.ParseCount("trials", trials); err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			svc := dice.NewService(dice.ServiceOptions{
				Limits: dice.Limits{MaxSides: cfg.Dice.MaxSides, MaxRolls: cfg.Dice.MaxRolls, MaxTrials: cfg.Dice.MaxTrials, MaxPoints: cfg.Dice.MaxPoints},
				Logger: opts.newLogger(cmd),
			})

			req := dice.Request{Params: p}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			run, err := svc.Simulate(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (seed %d)\n", run.Title, run.Seed)
			for _, t := range run.Trials {
				last := t.Rolls[len(t.Rolls)-1]
				fmt.Fprintf(out, "%s: %.4f after %d rolls\n", t.Label, last.RunningMean, last.Roll)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sides, "sides", fmt.Sprint(dice.DefaultSides), "die sides")
	cmd.Flags().StringVar(&rolls, "rolls", fmt.Sprint(dice.DefaultRolls), "rolls per trial")
	cmd.Flags().StringVar(&trials, "trials", fmt.Sprint(dice.DefaultTrials), "number of trials")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible run")
	return cmd
}
