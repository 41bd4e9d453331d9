// Package scoreboard parses scoreboard command flags and starts an
// interactive or simulated match session.
package scoreboard

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/louisbranch/pitchside/internal/console"
	"github.com/louisbranch/pitchside/internal/match/domain"
	"github.com/louisbranch/pitchside/internal/match/sim"
	entrypoint "github.com/louisbranch/pitchside/internal/platform/cmd"
	"github.com/louisbranch/pitchside/internal/random"
)

// Default team names when neither flags, environment, nor prompts supply one.
const (
	DefaultHomeName = "Home"
	DefaultAwayName = "Away"
)

// Config holds scoreboard command configuration.
type Config struct {
	HomeName string `env:"PITCHSIDE_HOME_NAME"`
	AwayName string `env:"PITCHSIDE_AWAY_NAME"`
	NoColor  bool   `env:"PITCHSIDE_NO_COLOR"`
	Demo     bool   `env:"PITCHSIDE_DEMO"`
	Seed     int64  `env:"PITCHSIDE_DEMO_SEED"`
	PauseMs  int    `env:"PITCHSIDE_PAUSE_MS" envDefault:"800"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HomeName, "home", cfg.HomeName, "Home team name")
	fs.StringVar(&cfg.AwayName, "away", cfg.AwayName, "Away team name")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable ANSI screen clearing")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "Simulate a full match instead of reading the menu")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Demo simulation seed (0 picks a random one)")
	fs.IntVar(&cfg.PauseMs, "pause-ms", cfg.PauseMs, "Pause after informational messages, in milliseconds")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts a scoring session on stdin/stdout. In demo mode it simulates a
// full match and renders the final result; otherwise it hands control to the
// interactive console loop.
func Run(ctx context.Context, cfg Config) error {
	term := console.New(os.Stdin, os.Stdout, console.Options{
		ClearScreen: !cfg.NoColor && isTerminal(os.Stdout),
		Pause:       time.Duration(cfg.PauseMs) * time.Millisecond,
	})

	fmt.Println("=== FIELD HOCKEY SCOREBOARD ===")

	homeName := strings.TrimSpace(cfg.HomeName)
	if homeName == "" && !cfg.Demo {
		homeName = term.ReadTeamName("Enter home team name", DefaultHomeName)
	}
	if homeName == "" {
		homeName = DefaultHomeName
	}
	awayName := strings.TrimSpace(cfg.AwayName)
	if awayName == "" && !cfg.Demo {
		awayName = term.ReadTeamName("Enter away team name", DefaultAwayName)
	}
	if awayName == "" {
		awayName = DefaultAwayName
	}

	m, err := domain.CreateMatch(domain.CreateMatchInput{
		HomeName: homeName,
		AwayName: awayName,
	}, nil)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	if cfg.Demo {
		seed := cfg.Seed
		if seed == 0 {
			seed, err = random.NewSeed()
			if err != nil {
				return fmt.Errorf("generate demo seed: %w", err)
			}
		}
		if err := sim.Run(m, seed); err != nil {
			return fmt.Errorf("simulate match: %w", err)
		}
		term.RenderFinal(m)
		return nil
	}

	return term.Run(ctx, m)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
