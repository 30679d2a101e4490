package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/harbor-sim/harbor-sim/sim"
	"github.com/harbor-sim/harbor-sim/sim/scenario"
)

var (
	// CLI flags mirroring the Configuration fields
	oilBerths      int
	dryBerths      int
	cranes         int
	grainSpeed     float64 // tons/hour
	oilSpeed       float64 // tons/hour
	generalSpeed   float64 // tons/hour
	grainStorage   float64 // tons
	generalStorage float64 // tons
	oilStorage     float64 // tons
	trainsPerDay   int
	trainCapacity  float64 // tons
	railwayTracks  int
	shipsPerYear   int
	grainShare     float64
	oilShare       float64
	generalShare   float64

	// run control
	seed         int64   // master seed for all stochastic draws
	horizonHours float64 // simulated hours
	logLevel     string  // log verbosity level
	configFile   string  // optional YAML preset file
	configPreset string  // preset name within the file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "harbor-sim",
	Short: "Discrete-event capacity-planning simulator for a seaport",
}

// buildConfig assembles the run configuration from the preset file (if
// given) or from the individual flags. Validation happens in the core.
func buildConfig() (sim.Configuration, error) {
	if configFile != "" {
		return LoadPortConfig(configFile, configPreset)
	}
	return sim.Configuration{
		OilBerths:              oilBerths,
		DryBerths:              dryBerths,
		Cranes:                 cranes,
		GrainSpeed:             grainSpeed,
		OilSpeed:               oilSpeed,
		GeneralSpeed:           generalSpeed,
		GrainStorageCapacity:   grainStorage,
		GeneralStorageCapacity: generalStorage,
		OilStorageCapacity:     oilStorage,
		TrainsPerDay:           trainsPerDay,
		TrainCapacity:          trainCapacity,
		RailwayCapacity:        railwayTracks,
		ShipsPerYear:           shipsPerYear,
		CargoDistribution: sim.CargoDistribution{
			Grain:   grainShare,
			Oil:     oilShare,
			General: generalShare,
		},
	}, nil
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes a single simulation and prints its capacity report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one port simulation and analyze its capacity",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d ships/year, horizon=%gh, seed=%d",
			cfg.ShipsPerYear, horizonHours, seed)

		metrics, _, err := sim.Run(cfg, horizonHours, sim.NewSimulationKey(seed))
		if err != nil {
			logrus.Fatalf("simulation: %v", err)
		}
		metrics.Print(horizonHours)
		report := sim.Analyze(metrics, cfg, horizonHours)
		report.Print()
	},
}

// collapseCmd sweeps the load ladder and reports collapse thresholds
var collapseCmd = &cobra.Command{
	Use:   "collapse",
	Short: "Search for the collapse point across the load ladder",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("configuration: %v", err)
		}

		analysis := scenario.FindCollapsePoint(cfg, horizonHours, sim.NewSimulationKey(seed))

		fmt.Println("=== Collapse Analysis ===")
		fmt.Printf("%-8s %-12s %-10s %-10s %-12s %-10s %s\n",
			"load", "cargo Mt/y", "avg queue", "max queue", "avg wait h", "storage %", "critical")
		for _, p := range analysis.Points {
			fmt.Printf("%-8.1f %-12.2f %-10.1f %-10d %-12.1f %-10.1f %d\n",
				p.LoadMultiplier, p.AnnualCargoTons/1e6, p.AvgQueueLength,
				p.MaxQueueLength, p.AvgWaitHours, p.StorageUtilizationPct, p.CriticalCount)
		}
		printThreshold("First serious issues", analysis.FirstIssuesLoad)
		printThreshold("Constant delays", analysis.ConstantDelaysLoad)
		printThreshold("Full collapse", analysis.FullCollapseLoad)
	},
}

func printThreshold(name string, load float64) {
	if load == 0 {
		fmt.Printf("%-22s: not reached\n", name)
		return
	}
	fmt.Printf("%-22s: %.1fx (+%.0f%% load)\n", name, load, (load-1)*100)
}

// stressCmd runs the six-scenario structural stress battery
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run the structural stress battery",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("configuration: %v", err)
		}

		results := scenario.RunStressBattery(cfg, horizonHours, sim.NewSimulationKey(seed))
		for _, res := range results {
			fmt.Printf("\n--- %s ---\n", res.Name)
			if res.Err != nil {
				fmt.Printf("failed: %v\n", res.Err)
				continue
			}
			res.Report.Print()
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := sim.DefaultConfig()
	pf := rootCmd.PersistentFlags()

	pf.Int64Var(&seed, "seed", 42, "Seed for all stochastic draws")
	pf.Float64Var(&horizonHours, "horizon", 8760, "Simulated horizon in hours")
	pf.StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&configFile, "config", "", "YAML port configuration file")
	pf.StringVar(&configPreset, "preset", "default", "Preset name within the configuration file")

	pf.IntVar(&oilBerths, "oil-berths", def.OilBerths, "Oil mooring slots")
	pf.IntVar(&dryBerths, "dry-berths", def.DryBerths, "Dry-bulk mooring slots")
	pf.IntVar(&cranes, "cranes", def.Cranes, "Shared unloading cranes")
	pf.Float64Var(&grainSpeed, "grain-speed", def.GrainSpeed, "Grain unloading speed (tons/hour)")
	pf.Float64Var(&oilSpeed, "oil-speed", def.OilSpeed, "Oil unloading speed (tons/hour)")
	pf.Float64Var(&generalSpeed, "general-speed", def.GeneralSpeed, "General cargo unloading speed (tons/hour)")
	pf.Float64Var(&grainStorage, "grain-storage", def.GrainStorageCapacity, "Grain storage capacity (tons)")
	pf.Float64Var(&generalStorage, "general-storage", def.GeneralStorageCapacity, "General storage capacity (tons)")
	pf.Float64Var(&oilStorage, "oil-storage", def.OilStorageCapacity, "Oil storage capacity (tons)")
	pf.IntVar(&trainsPerDay, "trains-per-day", def.TrainsPerDay, "Rail departures per day")
	pf.Float64Var(&trainCapacity, "train-capacity", def.TrainCapacity, "Train capacity (tons)")
	pf.IntVar(&railwayTracks, "railway-tracks", def.RailwayCapacity, "Exclusive railway track slots")
	pf.IntVar(&shipsPerYear, "ships-per-year", def.ShipsPerYear, "Mean ship arrivals per year")
	pf.Float64Var(&grainShare, "grain-share", def.CargoDistribution.Grain, "Grain share of arrivals")
	pf.Float64Var(&oilShare, "oil-share", def.CargoDistribution.Oil, "Oil share of arrivals")
	pf.Float64Var(&generalShare, "general-share", def.CargoDistribution.General, "General cargo share of arrivals")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(collapseCmd)
	rootCmd.AddCommand(stressCmd)
}
