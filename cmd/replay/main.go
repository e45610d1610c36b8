package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/sokoreplay/pkg/config"
	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/cbodonnell/sokoreplay/pkg/game/sokoban"
	"github.com/cbodonnell/sokoreplay/pkg/input"
	"github.com/cbodonnell/sokoreplay/pkg/log"
	"github.com/cbodonnell/sokoreplay/pkg/queue"
	"github.com/cbodonnell/sokoreplay/pkg/render"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
	"github.com/cbodonnell/sokoreplay/pkg/repositories"
	"github.com/cbodonnell/sokoreplay/pkg/version"
	"github.com/cbodonnell/sokoreplay/pkg/workers"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mapPath := flag.String("map", "", "Path to the map file")
	mode := flag.String("mode", "", "Scheduling mode: free-race or round-robin")
	frameRate := flag.Int("fps", 0, "Frames rendered per second")
	repeat := flag.Int("repeat", 0, "Number of games replayed in parallel")
	logLevel := flag.String("log-level", "", "Log level")
	databaseURL := flag.String("db", "", "Database URL for run summaries (sqlite:// or postgresql://)")
	interactive := flag.Bool("interactive", false, "Read the actions of the first player from stdin")
	headless := flag.Bool("headless", false, "Only print the final board of each game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.MapPath = *mapPath
		case "mode":
			if err := cfg.Mode.UnmarshalText([]byte(*mode)); err != nil {
				panic(fmt.Sprintf("Failed to parse mode: %v", err))
			}
		case "fps":
			cfg.FrameRate = *frameRate
		case "repeat":
			cfg.Repeat = *repeat
		case "log-level":
			cfg.LogLevel = *logLevel
		case "db":
			cfg.DatabaseURL = *databaseURL
		case "interactive":
			cfg.Interactive = *interactive
		}
	})
	if flag.NArg() > 0 {
		cfg.ActionPaths = flag.Args()
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}
	if cfg.Interactive && cfg.Repeat > 1 {
		panic("Interactive mode cannot replay more than one game")
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting replay version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := sokoban.LoadMap(cfg.MapPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load map: %v", err))
	}

	games := make([]*replay.Game, cfg.Repeat)
	states := make([]*sokoban.GameState, cfg.Repeat)
	recorders := make([]*render.Recorder, cfg.Repeat)
	for i := range games {
		sources, err := newActionSources(ctx, cfg, m)
		if err != nil {
			panic(fmt.Sprintf("Failed to create action sources: %v", err))
		}

		var renderer replay.Renderer
		if *headless {
			recorders[i] = render.NewRecorder()
			renderer = recorders[i]
		} else {
			label := ""
			if cfg.Repeat > 1 {
				label = fmt.Sprintf("game %d", i+1)
			}
			renderer = render.NewTerminal(os.Stdout, label)
		}

		states[i] = sokoban.NewGameState(m)
		games[i], err = replay.NewGame(replay.NewGameOptions{
			Mode:          cfg.Mode,
			FrameRate:     cfg.FrameRate,
			GameState:     states[i],
			ActionSources: sources,
			Renderer:      renderer,
		})
		if err != nil {
			panic(fmt.Sprintf("Failed to create game: %v", err))
		}
	}

	log.Info("Replaying %d game(s) in %s mode", len(games), cfg.Mode)
	summaries := replay.RunParallel(ctx, games...)

	for i, summary := range summaries {
		if *headless {
			fmt.Println(recorders[i].LastFrame())
		}
		log.Info("Game %s: mode=%s applied=%d failed=%d interrupted=%v solved=%v duration=%s",
			summary.GameID, summary.Mode, summary.Applied, summary.Failed, summary.Interrupted, states[i].IsWin(), summary.Duration())
	}

	if cfg.DatabaseURL != "" {
		// Interrupted runs are saved too, so saving must outlive the signal context.
		saveSummaries(context.WithoutCancel(ctx), cfg.DatabaseURL, summaries)
	}
}

// newActionSources creates one source per action file, assigning file i to
// the i-th player of the map, or a single stdin source in interactive mode.
func newActionSources(ctx context.Context, cfg *config.Config, m *sokoban.Map) ([]replay.ActionSource, error) {
	playerIDs := m.PlayerIDs()

	if cfg.Interactive {
		playerID := playerIDs[0]
		q := queue.NewInMemoryQueue(queue.QueueBufferSize)
		go func() {
			if err := input.ReadLines(ctx, os.Stdin, q, playerID); err != nil {
				log.Error("Failed to read actions from stdin: %v", err)
			}
		}()
		// stdin reads cannot be interrupted, so unblock the actor on shutdown
		context.AfterFunc(ctx, func() {
			q.Enqueue(actions.Exit{PlayerID: playerID})
		})
		return []replay.ActionSource{input.NewQueueSource(q)}, nil
	}

	if len(cfg.ActionPaths) > len(playerIDs) {
		return nil, fmt.Errorf("%d action files given for %d players", len(cfg.ActionPaths), len(playerIDs))
	}

	sources := make([]replay.ActionSource, len(cfg.ActionPaths))
	for i, path := range cfg.ActionPaths {
		source, err := input.LoadFile(path, playerIDs[i])
		if err != nil {
			return nil, err
		}
		sources[i] = source
	}
	return sources, nil
}

func saveSummaries(ctx context.Context, databaseURL string, summaries []replay.Summary) {
	repository, err := newRepository(ctx, databaseURL)
	if err != nil {
		log.Error("Failed to create repository: %v", err)
		return
	}
	defer repository.Close(ctx)

	summaryChan := make(chan replay.Summary, len(summaries))
	saveSummaryWorker := workers.NewSaveSummaryWorker(workers.NewSaveSummaryWorkerOptions{
		Repository:  repository,
		SummaryChan: summaryChan,
		Timeout:     10 * time.Second,
	})

	var g errgroup.Group
	g.Go(func() error {
		saveSummaryWorker.Start(ctx)
		return nil
	})
	for _, summary := range summaries {
		summaryChan <- summary
	}
	close(summaryChan)
	_ = g.Wait()
}

func newRepository(ctx context.Context, connStr string) (repositories.Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		// sqlite://replays.db keeps the file name in the host
		return repositories.NewSQLiteRepository(ctx, u.Host+u.Path)
	case "postgres", "postgresql":
		return repositories.NewPostgresRepository(ctx, u.String())
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
