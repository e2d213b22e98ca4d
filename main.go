package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"go-pitchroll/config"
	"go-pitchroll/curve"
	"go-pitchroll/debug"
	"go-pitchroll/editor"
	"go-pitchroll/theme"
	"go-pitchroll/tui"
)

var (
	configPath  string
	debugOn     bool
	palettePath string
	layerName   string
	modeName    string
)

var rootCmd = &cobra.Command{
	Use:   "go-pitchroll",
	Short: "Pitch curve and piano roll editor",
	Long:  `Draw notes on a piano roll and shape a pitch curve over them with the mouse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Writes the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Println("wrote", path)
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default ~/.config/go-pitchroll/config.json)")
	rootCmd.Flags().BoolVar(&debugOn, "debug", false, "log to ~/.config/go-pitchroll/debug.log")
	rootCmd.Flags().StringVar(&palettePath, "palette", "", "GIMP palette (.gpl) to color the editor")
	rootCmd.Flags().StringVar(&layerName, "layer", "", "initial layer: notes or points")
	rootCmd.Flags().StringVar(&modeName, "mode", "", "curve mode: bezier, linear, hermite, exponential, sigmoid")

	rootCmd.AddCommand(initConfigCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.ConfigPath()
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		cfg.UI.Palette = palettePath
	}
	if flags.Changed("layer") {
		cfg.UI.Layer = layerName
	}
	if flags.Changed("mode") {
		shape, err := curve.ParseShape(modeName)
		if err != nil {
			return nil, err
		}
		cfg.Editor.Interpolation = shape
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command) error {
	if debugOn {
		if err := debug.Enable(); err != nil {
			return err
		}
		defer debug.Disable()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	layer, err := editor.ParseLayer(cfg.UI.Layer)
	if err != nil {
		return err
	}

	palette := theme.Default()
	if cfg.UI.Palette != "" {
		if palette, err = theme.LoadGPL(cfg.UI.Palette); err != nil {
			return err
		}
	}
	th := theme.New(palette)

	session := editor.NewSession(settings)
	session.SetLayer(layer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	actor := editor.NewActor(session)
	go actor.Run(ctx)

	m := tui.NewModel(actor, settings, th, cfg.UI.ColWidth)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	_, err = p.Run()
	return err
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
