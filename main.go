package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/heart-curve/internal/chime"
	"github.com/iburimskiy/heart-curve/internal/config"
	"github.com/iburimskiy/heart-curve/internal/game"
)

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func banner() string {
	lines := []string{
		"Mathematical Valentine's Heart",
		"",
		"y = |x|^(2/3) + 0.9 sin(kx) sqrt(3 - x^2)",
		"",
		"Controls:",
		"  START ..... click the button or press SPACE/ENTER",
		"  SPACE ..... pause / resume",
		"  R ......... restart animation",
		"  UP / DOWN . speed up / slow down",
		"  Q / ESC ... quit",
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(config.ColorTitle))
	lines[0] = title.Render(lines[0])

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(config.ColorHeart)).
		Padding(1, 3)
	return box.Render(strings.Join(lines, "\n"))
}

func main() {
	setupLogging()
	fmt.Println(banner())

	player := chime.NewPlayer(config.ChimeSampleRate, config.ChimeVolume)
	if err := player.Init(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, chime disabled")
	}

	g, err := game.NewGame(player)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build animation")
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("window loop failed")
		_ = zenity.Error(err.Error(), zenity.Title("Mathematical Valentine"), zenity.ErrorIcon)
		os.Exit(1)
	}
	log.Info().Msg("bye")
}
