package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/i18n"
	"github.com/Zachkp/folio/internal/particles"
	"github.com/Zachkp/folio/internal/preview"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/web"
)

var (
	configFile string
	port       string

	frameOut    string
	frameWidth  float64
	frameHeight float64
	frameTheme  string
	frameSteps  int
	frameSeed   uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "portfolio site with a particle background and project carousels",
		RunE:  serve,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", os.Getenv("CONFIG_FILE"), "config file path (yaml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the site over http",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	previewCmd := &cobra.Command{
		Use:   "preview [project]",
		Short: "run the background and a project carousel in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "write one background frame as svg",
		RunE:  writeFrame,
	}
	frameCmd.Flags().StringVarP(&frameOut, "out", "o", "", "output file (default stdout)")
	frameCmd.Flags().Float64Var(&frameWidth, "width", 1600, "frame width")
	frameCmd.Flags().Float64Var(&frameHeight, "height", 900, "frame height")
	frameCmd.Flags().StringVar(&frameTheme, "theme", "", "dark, light or system (default from config)")
	frameCmd.Flags().IntVar(&frameSteps, "frames", 0, "animation steps before rendering")
	frameCmd.Flags().Uint64Var(&frameSeed, "seed", 0, "random seed (0 picks one)")

	rootCmd.AddCommand(serveCmd, previewCmd, frameCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}
	return cfg
}

func serve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if port != "" {
		cfg.Port = port
	}
	s, err := web.New(cfg)
	if err != nil {
		log.Fatal("Error parsing templates:", err)
	}
	return s.Run()
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	id := content.Projects[0].ID
	if len(args) == 1 {
		id = args[0]
	}
	project, err := content.ProjectByID(id)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return preview.Run(ctx, cfg, project, i18n.StoredPreference{KV: st})
}

func writeFrame(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	theme := cfg.Theme
	if frameTheme != "" {
		theme = frameTheme
	}
	mode, err := particles.ParseMode(theme, cfg.PrefersDark)
	if err != nil {
		return err
	}
	if frameWidth <= 0 || frameHeight <= 0 {
		return fmt.Errorf("frame size must be positive, got %gx%g", frameWidth, frameHeight)
	}

	var rng *rand.Rand
	if frameSeed != 0 {
		rng = rand.New(rand.NewPCG(frameSeed, frameSeed))
	}
	field := particles.New(frameWidth, frameHeight, mode, rng, cfg.Particles.Tunables)
	for i := 0; i < frameSteps; i++ {
		field.Advance()
	}
	var svg particles.SVG
	field.Render(&svg)

	if frameOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), svg.String())
		return err
	}
	if err := os.WriteFile(frameOut, []byte(svg.String()), 0o644); err != nil {
		return err
	}
	fmt.Printf("Frame written to %s (%d particles)\n", frameOut, len(field.Particles))
	return nil
}
