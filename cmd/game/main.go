package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cavern/internal/application/game"
	"github.com/younwookim/cavern/internal/application/replay"
	"github.com/younwookim/cavern/internal/application/scene/playing"
	"github.com/younwookim/cavern/internal/application/system"
	"github.com/younwookim/cavern/internal/domain/entity"
	"github.com/younwookim/cavern/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "cave", "Stage name to load from stages/<name>.yaml")
	tmxFlag := flag.String("tmx", "", "Load stage from a Tiled .tmx file instead of YAML")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	configDirFlag := flag.String("configs", "", "Load configs from a directory instead of the embedded set")
	watchFlag := flag.Bool("watch", false, "Reload the stage when config files change (requires -configs)")
	flag.Parse()

	// Load configurations. The embedded set is the default; -configs points
	// the loader at a directory on disk, which also enables -watch.
	var loader *config.Loader
	if *configDirFlag != "" {
		loader = config.NewLoader(*configDirFlag)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{RecordPath: *recordFlag}

	// Replay playback replaces keyboard input and pins the recorded stage.
	stageName := *stageFlag
	if *replayFlag != "" {
		data, err := replay.Load(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replayer = replay.NewReplayer(*data)
		if opts.Replayer.Stage() != "" {
			stageName = opts.Replayer.Stage()
		}
		log.Printf("Replaying %s (%d frames, stage %s)", *replayFlag, opts.Replayer.TotalFrames(), stageName)
	}

	stage, batSpawns, err := loadStage(loader, stageName, *tmxFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *watchFlag {
		if *configDirFlag == "" {
			log.Fatal("-watch requires -configs")
		}
		watcher, err := config.NewWatcher(*configDirFlag)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configDirFlag, err)
		}
		defer func() { _ = watcher.Close() }()

		opts.Reload = watcher.Events
		opts.ReloadStage = func() (*entity.Stage, error) {
			s, _, err := loadStage(loader, stageName, *tmxFlag)
			return s, err
		}
	}

	playingScene := playing.New(cfg, stageName, stage, batSpawns, opts)
	g := game.New(playingScene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight,
		cfg.Physics.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth*cfg.Physics.Display.Scale,
		cfg.Physics.Display.ScreenHeight*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Cavern")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadStage builds the stage either from a Tiled map or a YAML stage file.
// Bat spawns only exist in the YAML format.
func loadStage(loader *config.Loader, name, tmxPath string) (*entity.Stage, []config.PositionConfig, error) {
	if tmxPath != "" {
		stage, err := system.LoadTMXStage(os.DirFS("."), tmxPath, "collision")
		return stage, nil, err
	}

	stageCfg, err := loader.LoadStage(name)
	if err != nil {
		return nil, nil, err
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return nil, nil, err
	}
	return stage, stageCfg.Bats, nil
}
