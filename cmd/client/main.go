package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/selector"
	"atc-runway-simulator/internal/game/simulation"
	"atc-runway-simulator/internal/logging"
	"atc-runway-simulator/internal/ui"
	"atc-runway-simulator/pkg/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"
)

const PROMPT_MESSAGE = "Press SPACE to process the next plane."

var (
	runwayColor   = color.RGBA{90, 90, 90, 255}
	assignedColor = color.RGBA{0, 200, 0, 255}
	arrowColor    = color.RGBA{200, 0, 0, 255}
	bandColor     = color.RGBA{0, 0, 0, 255}
)

type Game struct {
	width, height int
	cfg           *config.Config
	airport       *airspace.Airport
	airspace      *airspace.Airspace
	sim           *simulation.Simulation

	assigned     *simulation.Assignment
	commandInput *ui.TextInput
}

func NewGame(cfg *config.Config) (*Game, error) {
	sim, ap, err := simulation.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	game := &Game{
		width:    cfg.Display.Width,
		height:   cfg.Display.Height,
		cfg:      cfg,
		airport:  ap,
		airspace: airspace.NewAirspace(ap, cfg.Display.Width, cfg.Display.Height),
		sim:      sim,
	}

	game.commandInput = ui.NewTextInput(10, game.height-40, game.width/2, 30, func(cmd string) {
		game.parseAndExecuteCommand(cmd)
	})
	game.commandInput.Placeholder = "W x y | N count | P policy"

	return game, nil
}

func (g *Game) Update() error {
	g.handleInput()
	g.commandInput.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{255, 255, 255, 255})

	g.drawRunways(screen)
	g.drawWindArrow(screen)
	g.drawUI(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.commandInput.IsActive = g.commandInput.IsClicked(x, y)
	}

	if g.commandInput.IsActive {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.processNext()
	}
}

func (g *Game) processNext() {
	result, err := g.sim.ProcessNext()
	if err != nil {
		log.Warnf("%v", err)
		g.assigned = nil
		return
	}
	if result == nil {
		log.Printf("%s", simulation.NO_ARRIVALS_MESSAGE)
		return
	}
	g.assigned = result
}

func (g *Game) drawRunways(screen *ebiten.Image) {
	var highlighted string
	if g.assigned != nil {
		if s, ok := g.airspace.Strip(g.assigned.Label); ok {
			highlighted = s.Runway.Name
		} else {
			// Quadrant labels name no strip; match on the landing direction.
			for _, s := range g.airspace.Strips {
				if selector.LandingQuadrant(selector.ReciprocalHeading(s.Runway.Heading)) == g.assigned.Direction {
					highlighted = s.Runway.Name
					break
				}
			}
		}
	}

	// Assigned strip drawn last so it stays on top where strips cross.
	strips := append([]airspace.Strip(nil), g.airspace.Strips...)
	for i, s := range strips {
		if s.Runway.Name == highlighted {
			strips[i], strips[len(strips)-1] = strips[len(strips)-1], strips[i]
			break
		}
	}

	for _, s := range strips {
		clr := runwayColor
		if s.Runway.Name == highlighted {
			clr = assignedColor
		}
		vector.StrokeLine(screen, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), float32(s.Width), clr, false)
	}

	for _, s := range g.airspace.Strips {
		ebitenutil.DebugPrintAt(screen, s.Runway.Name, int(s.To.X)-6, int(s.To.Y)-8)
	}
}

func (g *Game) drawWindArrow(screen *ebiten.Image) {
	w := g.sim.Wind()
	a, ok := airspace.WindArrow(w, g.airspace.Center, g.cfg.Display.ArrowScale)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(a.Tail.X), float32(a.Tail.Y), float32(a.Tip.X), float32(a.Tip.Y), airspace.ARROW_WIDTH, arrowColor, true)
	for _, wing := range a.Wings {
		vector.StrokeLine(screen, float32(a.Tip.X), float32(a.Tip.Y), float32(wing.X), float32(wing.Y), airspace.ARROW_WIDTH, arrowColor, true)
	}
}

func (g *Game) drawUI(screen *ebiten.Image) {
	w := g.sim.Wind()
	status := g.sim.Status()
	if status == "" {
		status = PROMPT_MESSAGE
	}

	lines := []string{
		simulation.WindText(w),
		status,
		fmt.Sprintf("Pending: %d  Next: %s  Policy: %s", g.sim.Pending(), nextText(g.sim), g.sim.Selector().Name()),
	}
	if g.sim.Pending() > 0 && status != PROMPT_MESSAGE {
		lines = append(lines, PROMPT_MESSAGE)
	}
	// DebugPrint draws white text; a dark band keeps it legible on the field.
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(16*len(lines)+8), bandColor, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 4)

	info := w.String()
	if g.assigned != nil {
		info += fmt.Sprintf("\nLanding: %s", g.assigned.Direction)
	}
	vector.DrawFilledRect(screen, 0, float32(g.height-90), float32(g.width), 40, bandColor, false)
	ebitenutil.DebugPrintAt(screen, info, 10, g.height-88)

	g.commandInput.Draw(screen)
}

func nextText(sim *simulation.Simulation) string {
	if a, ok := sim.Next(); ok {
		return string(a.ID)
	}
	return "-"
}

func (g *Game) parseAndExecuteCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) < 2 {
		log.Printf("Invalid command format: %s. Expected: <Command> <Value>", cmd)
		return
	}

	switch strings.ToUpper(parts[0]) {
	case "W", "WIND":
		if len(parts) != 3 {
			log.Printf("Invalid wind command: %s. Expected: W <x> <y>", cmd)
			return
		}
		x, errX := strconv.ParseFloat(parts[1], 64)
		y, errY := strconv.ParseFloat(parts[2], 64)
		if errX != nil || errY != nil {
			log.Printf("Invalid wind components: %s %s", parts[1], parts[2])
			return
		}
		g.sim.SetWind(x, y)
	case "N", "NEW":
		n, err := strconv.Atoi(parts[1])
		if err != nil || n <= 0 {
			log.Printf("Invalid arrival count: %s. Must be positive.", parts[1])
			return
		}
		g.sim.Enqueue(n)
		log.Printf("Queued %d arrivals, %d pending", n, g.sim.Pending())
	case "P", "POLICY":
		sel, err := selector.New(strings.ToLower(parts[1]), g.airport)
		if err != nil {
			log.Printf("%v. Known policies: %s", err, strings.Join(selector.Policies, ", "))
			return
		}
		g.sim.SetSelector(sel)
	default:
		log.Printf("Unknown command type: %s", parts[0])
	}
}

func main() {
	configPath := flag.String("config", "runway-sim.json", "path to the JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	closer, err := logging.Setup(cfg.Log.Level, cfg.Log.Dir, cfg.Log.MaxSizeMB, os.Stderr, "client")
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle("ATC Runway Simulator")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
