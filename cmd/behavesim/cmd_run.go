package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Aisprintone/Sparrow-sub006/internal/behavior"
	"github.com/Aisprintone/Sparrow-sub006/internal/config"
	"github.com/Aisprintone/Sparrow-sub006/internal/enhance"
	"github.com/Aisprintone/Sparrow-sub006/internal/persistence"
	"github.com/Aisprintone/Sparrow-sub006/internal/profile"
	"github.com/Aisprintone/Sparrow-sub006/internal/simulate"
)

func newRunCmd(environ config.Env) *cobra.Command {
	var (
		iterations  int
		months      int
		seed        int64
		demographic string
		culture     string
		personality string
		record      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a base batch, enhance it, and report metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := config.Load(environ.CalibrationPath)
			if err != nil {
				return err
			}

			demo := profile.ParseDemographic(demographic)
			snap := profile.DefaultSnapshot(demo, profile.ParseCulturalBackground(culture))

			genCfg := simulate.DefaultGenConfig()
			genCfg.Iterations = iterations
			genCfg.Months = months
			genCfg.Seed = seed

			slog.Info("generating base batch",
				"iterations", genCfg.Iterations,
				"months", genCfg.Months,
				"seed", genCfg.Seed,
			)
			base := simulate.EmergencyExpenses(genCfg, snap)
			factors := simulate.RandomFactors(genCfg)

			var ov behavior.Overrides
			if personality != "" {
				p := behavior.ParsePersonality(personality)
				ov.Personality = &p
			}
			if culture != "" {
				c := profile.ParseCulturalBackground(culture)
				ov.Culture = &c
			}

			enhancer := enhance.New(demo, cal, ov)
			_, metrics, err := enhancer.EnhanceEmergencyFund(base, snap, factors)
			if err != nil {
				return err
			}

			printMetrics(metrics)
			fmt.Printf("  present-bias savings cost: $%s\n",
				humanize.CommafWithDigits(metrics.PresentBiasSavingsCost, 2))

			if record && environ.DBPath != "" {
				db, err := persistence.Open(environ.DBPath)
				if err != nil {
					return err
				}
				defer db.Close()

				params := enhancer.Parameters()
				id, err := db.SaveRun(persistence.Run{
					Scenario:    behavior.ScenarioEmergencyFund.String(),
					Personality: params.Personality.String(),
					Demographic: demo.String(),
					Culture:     params.Culture.String(),
					Iterations:  genCfg.Iterations,
					Months:      genCfg.Months,
					Seed:        genCfg.Seed,
					Metrics:     metrics,
				})
				if err != nil {
					return err
				}
				slog.Info("run recorded", "id", id, "db", environ.DBPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 10000, "Monte Carlo samples")
	cmd.Flags().IntVar(&months, "months", 24, "Simulation horizon in months")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Deterministic seed (0 = random)")
	cmd.Flags().StringVar(&demographic, "demographic", "millennial", "Cohort: gen_z, millennial, gen_x, boomer")
	cmd.Flags().StringVar(&culture, "culture", "", "Cultural background override")
	cmd.Flags().StringVar(&personality, "personality", "", "Personality override: planner, avoider, survivor, panicker, optimizer")
	cmd.Flags().BoolVar(&record, "record", false, "Record the run to the BEHAVESIM_DB store")

	return cmd
}

func printMetrics(m enhance.Metrics) {
	fmt.Println("enhancement metrics:")
	flat := m.Flat()
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-28s %.4f\n", k, flat[k])
	}
}

func newRunsCmd(environ config.Env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded enhancement runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if environ.DBPath == "" {
				return fmt.Errorf("BEHAVESIM_DB is not set")
			}
			db, err := persistence.Open(environ.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no recorded runs")
				return nil
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  %s/%s/%s  %s×%d  reduction=%.4f help=%.4f extension=%.2f\n",
					r.ID[:8],
					humanize.Time(r.CreatedAt),
					r.Scenario, r.Personality, r.Demographic,
					humanize.Comma(int64(r.Iterations)), r.Months,
					r.Metrics.MeanExpenseReduction,
					r.Metrics.HelpSeekingRate,
					r.Metrics.SurvivalExtensionMonths,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	return cmd
}
