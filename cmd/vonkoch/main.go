// Command vonkoch displays an interactive von Koch snowflake.
//
// Drag with the left mouse button to pan, zoom with the wheel, the +/- keys
// or the on-screen buttons, and change the recursion depth with the
// "Niveau" buttons. R resets the view, F fits the snowflake to the window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	koch "github.com/RobinHil/von-koch-flake"
)

func main() {
	var (
		size    = flag.Float64("size", koch.DefaultBaseSize, "side length of the base triangle in pixels")
		depth   = flag.Int("depth", koch.DefaultDepth, "initial recursion depth")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		koch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	view := koch.NewView(koch.WithBaseSize(*size), koch.WithDepth(*depth))

	app, err := NewApp(view)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Flocon de Von Koch")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
