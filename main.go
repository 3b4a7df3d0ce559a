package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"ringfall/pkg/game/piece"
	"ringfall/pkg/game/renderer"
	ebitenrenderer "ringfall/pkg/game/renderer/ebiten"
	"ringfall/pkg/game/renderer/tui"
	"ringfall/pkg/game/session"
)

func initGettext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

func main() {
	backend := flag.String("renderer", "tui", "rendering backend: tui or ebiten")
	segments := flag.Int("segments", session.DefaultSegments, "angular segments around the tube")
	rows := flag.Int("rows", session.DefaultRows, "visible rows in the tube")
	seed := flag.Int64("seed", 0, "piece sequence seed, 0 seeds from the clock")
	flag.Parse()

	initGettext()

	var source piece.Source
	if *seed != 0 {
		source = piece.NewSevenBag(*seed)
	}

	s := session.New(session.Config{
		Segments: *segments,
		Rows:     *rows,
		Source:   source,
	})

	switch *backend {
	case "tui":
		renderer.SetRenderer(tui.New())
	case "ebiten":
		renderer.SetRenderer(ebitenrenderer.New())
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q (want tui or ebiten)\n", *backend)
		os.Exit(1)
	}

	if err := renderer.Run(s); err != nil {
		fmt.Fprintf(os.Stderr, "ringfall: %v\n", err)
		os.Exit(1)
	}
}
