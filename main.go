package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/api"
	api_i "github.com/ThutaCodes/rational-vacuum-cleaner-agent/api/i"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/api/simulation"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/config"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/agent"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/infrastruture/logger"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/infrastruture/report"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/service/i"
	"github.com/ThutaCodes/rational-vacuum-cleaner-agent/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/logrusorgru/aurora"
)

const usage = `usage: vacuum <command> [flags]

commands:
  serve    run the HTTP API
  tui      run the interactive terminal driver
  run      run one simulation to the end and print the result`

// Global variables for dependencies
var (
	appLogger            *logger.Logger
	simulationManager    i.SimulationManager
	simulationController api_i.Controller
	router               *api.Router
)

func defaultParams() i.SimulationParams {
	opts := agent.DefaultOptions()
	opts.Energy = config.Envs.InitialEnergy
	opts.BagCapacity = config.Envs.BagCapacity
	opts.HistorySize = config.Envs.HistorySize

	return i.SimulationParams{
		DirtRange: grid.DirtRange{Min: config.Envs.MinDirt, Max: config.Envs.MaxDirt},
		Agent:     opts,
	}
}

func initSimulationManager(out io.Writer) {
	simLogger, err := logger.New("SIMULATION", config.ColorSimulation, out)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation logger: %v", err))
		os.Exit(1)
	}

	simulationManager, err = service.NewSimulationManager(&service.Config{
		Defaults: defaultParams(),
		Logger:   simLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Simulation manager initialized")
}

func initSimulationController() {
	httpLogger, err := logger.New("HTTP", config.ColorHTTP, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating HTTP logger: %v", err))
		os.Exit(1)
	}

	simulationController = simulation.NewSimulationServer(simulationManager, httpLogger, config.Envs.MaxStepBatch)
	appLogger.Info("Simulation controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Mode:        config.Envs.GinMode,
		Controllers: []api_i.Controller{simulationController},
	})
	appLogger.Info("Router initialized")
}

func serve() {
	initSimulationManager(os.Stdout)
	initSimulationController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func runTUI() {
	logFile, err := os.OpenFile(config.Envs.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Opening %s: %v", config.Envs.TUILogFile, err))
		os.Exit(1)
	}
	defer logFile.Close()

	initSimulationManager(logFile)

	model, err := tui.New(tui.Config{
		Manager: simulationManager,
		Params:  defaultParams(),
		Speed:   config.Envs.StepsPerTick,
		Tick:    time.Duration(config.Envs.TickMillis) * time.Millisecond,
		Colors:  true,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating terminal driver: %v", err))
		os.Exit(1)
	}

	if err := tui.Run(model, tea.WithAltScreen()); err != nil {
		appLogger.Error(fmt.Sprintf("Terminal driver: %v", err))
		os.Exit(1)
	}
}

func runHeadless(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed for the dirt layout")
	reportPath := fs.String("report", "", "write an HTML chart of the run to this file")
	noColor := fs.Bool("no-color", false, "disable colored output")
	_ = fs.Parse(args)

	params := defaultParams()
	a, err := agent.NewWorld(params.DirtRange, params.Agent, rand.New(rand.NewSource(*seed)))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating world: %v", err))
		os.Exit(1)
	}

	au := aurora.NewAurora(!*noColor)
	fmt.Printf("%s seed %d, %d dirty cells\n%s", au.Bold("Initial world"), *seed, a.Grid().DirtyCount(), a.Grid())

	trace := report.NewTrace(fmt.Sprintf("Vacuum run (seed %d)", *seed))
	trace.Record(a.Snapshot())
	for a.Step() {
		h := a.History()
		if len(h) > 0 {
			fmt.Printf("%4d. %s\n", h[len(h)-1].Seq, h[len(h)-1])
		}
		trace.Record(a.Snapshot())
	}

	perf := a.Performance()
	status := au.Green(a.Status().String())
	if a.Status() != agent.Completed {
		status = au.Red(a.Status().String())
	}
	fmt.Printf("%s\n%s", au.Bold("Final world"), a.Grid())
	fmt.Printf("status %s, cleaned %d, energy spent %d, actions %d\n", status, perf.Cleaned, perf.EnergySpent, perf.Actions)

	if *reportPath == "" {
		return
	}

	reportLogger, err := logger.New("REPORT", config.ColorReport, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating report logger: %v", err))
		os.Exit(1)
	}

	f, err := os.Create(*reportPath)
	if err != nil {
		reportLogger.Error(fmt.Sprintf("Creating %s: %v", *reportPath, err))
		os.Exit(1)
	}
	defer f.Close()

	if err := trace.Render(f); err != nil {
		reportLogger.Error(fmt.Sprintf("Rendering report: %v", err))
		os.Exit(1)
	}
	reportLogger.Info(fmt.Sprintf("Wrote %d samples to %s", len(trace.Samples()), *reportPath))
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorApp, os.Stderr)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "serve":
		serve()
	case "tui":
		runTUI()
	case "run":
		runHeadless(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
