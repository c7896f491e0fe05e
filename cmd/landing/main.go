// Command landing reads one wind direction, prints the landing direction
// and lights the matching lamp for a few seconds.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"atc-runway-simulator/internal/actuator"
	"atc-runway-simulator/internal/game/selector"
	"atc-runway-simulator/internal/logging"
	"atc-runway-simulator/pkg/config"

	"github.com/labstack/gommon/log"
)

const INVALID_INPUT_MESSAGE = "Please enter a valid number for wind direction."

var errInvalidInput = errors.New("invalid wind direction")

// newDriver is replaced in tests.
var newDriver = openDriver

func openDriver(cfg *config.Config) (actuator.Driver, error) {
	switch cfg.LED.Driver {
	case "none":
		return nil, nil
	case "memory":
		return actuator.NewMemoryDriver(), nil
	case "i2c":
		return actuator.OpenI2CExpander(cfg.LED.Bus, cfg.LED.Address)
	}
	return nil, fmt.Errorf("unknown led driver %q", cfg.LED.Driver)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errInvalidInput), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("landing", flag.ContinueOnError)
	configPath := fs.String("config", "runway-sim.json", "path to the JSON config file")
	unit := fs.String("unit", "deg", "wind direction unit: deg (wind-origin buckets) or rad (reciprocal buckets)")
	driver := fs.String("led", "", "lamp driver: none, memory or i2c (overrides the config)")
	hold := fs.Duration("hold", -1, "how long the lamp stays lit (default from the config)")
	planes := fs.String("planes", "", "comma separated planes to assign the direction to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *unit != "deg" && *unit != "rad" {
		return fmt.Errorf("unknown unit %q", *unit)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *driver != "" {
		cfg.LED.Driver = *driver
	}
	if *hold < 0 {
		*hold = cfg.LED.Hold()
	}

	closer, err := logging.Setup(cfg.Log.Level, cfg.Log.Dir, cfg.Log.MaxSizeMB, os.Stderr, "landing")
	if err != nil {
		return err
	}
	defer closer.Close()

	var panel *actuator.Panel
	drv, err := newDriver(cfg)
	if err != nil {
		return err
	}
	if drv != nil {
		pins, err := cfg.LED.DirectionPins()
		if err != nil {
			drv.Close()
			return err
		}
		panel, err = actuator.NewPanel(drv, pins)
		if err != nil {
			drv.Close()
			return err
		}
		defer func() {
			log.Infof("Cleaning up lamps")
			if cerr := panel.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("led cleanup: %w", cerr))
			}
		}()
	}

	var raw string
	if fs.NArg() > 0 {
		raw = fs.Arg(0)
	} else {
		if *unit == "rad" {
			fmt.Fprint(stdout, "Enter wind direction in radians (0-2π): ")
		} else {
			fmt.Fprint(stdout, "Enter wind direction in degrees (0-360): ")
		}
		raw, err = readLine(ctx, stdin)
		if errors.Is(err, io.EOF) {
			raw, err = "", nil
		}
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(stdout, "Program interrupted.")
				return nil
			}
			return err
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		fmt.Fprintln(stdout, INVALID_INPUT_MESSAGE)
		return fmt.Errorf("%w: %q", errInvalidInput, raw)
	}

	direction := selector.LandingDirectionDegrees(value)
	if *unit == "rad" {
		direction = selector.LandingDirectionRadians(value)
	}
	fmt.Fprintf(stdout, "The optimal landing direction is: %s\n", direction)

	if *planes != "" {
		assigned := selector.AssignAll(splitPlanes(*planes), selector.Selection{
			Label:     direction.String(),
			Direction: direction,
		})
		names := make([]string, 0, len(assigned))
		for name := range assigned {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(stdout, "Plane %s assigned to land in direction: %s\n", name, assigned[name].Label)
		}
	}

	if panel == nil {
		return nil
	}
	if err := panel.Show(direction); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "LED for %s is ON.\n", direction)

	select {
	case <-ctx.Done():
		fmt.Fprintln(stdout, "Program interrupted.")
	case <-time.After(*hold):
	}
	return nil
}

func splitPlanes(list string) []string {
	var planes []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			planes = append(planes, p)
		}
	}
	return planes
}

// readLine returns the first line of r, or ctx's error if ctx ends first.
func readLine(ctx context.Context, r io.Reader) (string, error) {
	type line struct {
		text string
		err  error
	}
	ch := make(chan line, 1)
	go func() {
		scanner := bufio.NewScanner(r)
		if scanner.Scan() {
			ch <- line{text: scanner.Text()}
			return
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		ch <- line{err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-ch:
		return l.text, l.err
	}
}
