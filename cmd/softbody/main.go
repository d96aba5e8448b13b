package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file")
	schemaFile := flag.String("schema", "config/config.schema.json", "path to the config JSON schema")
	flag.Parse()

	ctx := context.Background()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		cfg = loaded
	}

	system, err := actor.NewActorSystem("SoftBodyWorld",
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("actor system error: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("actor system start error: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Soft Bodies: Cloth & Wheel")

	game := simulation.GetNewGame(ctx, cfg, system)
	defer game.System.Stop(ctx)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
