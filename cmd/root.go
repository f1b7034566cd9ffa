package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/schedsim/schedsim/sim"
)

var (
	policy     string // scheduling policy name
	quiet      bool   // suppress narrative banners and the metrics report
	logLevel   string // log verbosity level
	configPath string // optional YAML policy bundle
	quantum    int    // round-robin slice override
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for CPU scheduling and resource-contention protocols",
}

// runCmd executes the simulation over a process script
var runCmd = &cobra.Command{
	Use:   "run [script file]",
	Short: "Run the scheduling simulation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{Tracer: &sim.ConsoleTracer{W: os.Stderr}}

		// Optional YAML bundle; an explicit --policy flag wins over it.
		if configPath != "" {
			bundle, err := sim.LoadPolicyBundle(configPath)
			if err != nil {
				logrus.Fatalf("unable to read policy bundle: %v", err)
			}
			if err := bundle.Validate(); err != nil {
				logrus.Fatalf("invalid policy bundle: %v", err)
			}
			if bundle.Policy != "" && !cmd.Flags().Changed("policy") {
				policy = bundle.Policy
			}
			if bundle.MaxPriority != nil {
				cfg.MaxPriority = *bundle.MaxPriority
			}
			if bundle.Resources != nil {
				cfg.NumResources = *bundle.Resources
			}
			if bundle.Quantum != nil {
				quantum = *bundle.Quantum
			}
		}

		if !sim.IsValidPolicy(policy) {
			logrus.Fatalf("unknown policy %q (valid: fifo, sjf, srtf, rr, prio, pa, pcp, pip)", policy)
		}
		cfg.Policy = sim.NewScheduler(policy)
		if rr, ok := cfg.Policy.(*sim.RoundRobinScheduler); ok && quantum > 0 {
			rr.Quantum = quantum
		}

		procs, err := sim.LoadScript(args[0])
		if err != nil {
			logrus.Fatalf("unable to load script: %v", err)
		}

		if !quiet {
			printBanner(cfg.Policy.Name())
			for _, p := range procs {
				briefProcess(p)
			}
			fmt.Println()
		}

		s := sim.NewSimulator(cfg, procs)
		if err := s.Run(); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		s.DumpStatus()

		if !quiet {
			s.Metrics.Print(os.Stdout, s.Clock)
		}
		logrus.Info("Simulation complete.")
	},
}

// printBanner prints the narrative header with the event glyph legend.
func printBanner(policyName string) {
	fmt.Println("               _              _ ")
	fmt.Println("              | |            | |")
	fmt.Println("      ___  ___| |__   ___  __| |")
	fmt.Println("     / __|/ __| '_ \\ / _ \\/ _` |")
	fmt.Println("     \\__ \\ (__| | | |  __/ (_| |")
	fmt.Println("     |___/\\___|_| |_|\\___|\\__,_|")
	fmt.Println()
	fmt.Printf("      Simulating %s policy\n", policyName)
	fmt.Println()
	fmt.Println("****************************************************")
	fmt.Println("   N: Forked")
	fmt.Println("   X: Finished")
	fmt.Println("   =: Blocked")
	fmt.Println("  +n: Acquire resource n")
	fmt.Println("  -n: Release resource n")
	fmt.Println()
}

// briefProcess prints one process's declaration, acquisition plan included.
func briefProcess(p *sim.Process) {
	plural := ""
	if p.Lifespan >= 2 {
		plural = "s"
	}
	fmt.Printf("- Process %d: Forked at tick %d and run for %d tick%s with initial priority %d\n",
		p.PID, p.StartTick, p.Lifespan, plural, p.Priority)
	for _, claim := range p.Pending {
		fmt.Printf("    Acquire resource %d at %d for %d\n", claim.ResourceID, claim.At, claim.Duration)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVarP(&policy, "policy", "p", "fifo", "Scheduling policy (fifo, sjf, srtf, rr, prio, pa, pcp, pip)")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Run quietly (no banner, briefing, or metrics)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML policy bundle")
	runCmd.Flags().IntVar(&quantum, "quantum", 0, "Round-robin time slice in ticks (0 = default)")

	rootCmd.AddCommand(runCmd)
}
