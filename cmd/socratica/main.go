package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/sakibmehfuz10-bot/Socratica/internal/config"
	"github.com/sakibmehfuz10-bot/Socratica/internal/extract"
	"github.com/sakibmehfuz10-bot/Socratica/internal/llm"
	"github.com/sakibmehfuz10-bot/Socratica/internal/plot"
	"github.com/sakibmehfuz10-bot/Socratica/internal/storage"
	"github.com/sakibmehfuz10-bot/Socratica/internal/tui"
	"github.com/sakibmehfuz10-bot/Socratica/internal/tutor"
)

var (
	configFile string
	dataDir    string
	provider   string
	modelName  string
	baseURL    string
	modeName   string
	// plot command
	svgOut      string
	asciiOut    bool
	accentColor string
	// ask command
	imagePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "socratica",
		Short: "Socratic math tutor in your terminal",
		RunE:  runChat,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "socratica.yaml", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for saved sessions")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "model provider (anthropic, openai)")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "model name")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the provider base URL")
	rootCmd.PersistentFlags().StringVar(&modeName, "mode", "", "tutoring mode (socratic, hint, check)")

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "interactive tutoring session",
		RunE:  runChat,
	}

	askCmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "one-shot question, answer printed with inline plots",
		Args:  cobra.ExactArgs(1),
		RunE:  runAsk,
	}
	askCmd.Flags().StringVar(&imagePath, "image", "", "attach an image (e.g. a photographed worksheet)")

	plotCmd := &cobra.Command{
		Use:   "plot [directive]",
		Short: `render a plot directive, e.g. "sin(x), -3.14, 3.14"`,
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "write SVG to this file instead of drawing in the terminal")
	plotCmd.Flags().BoolVar(&asciiOut, "ascii", false, "quick ascii chart instead of the Braille canvas")
	plotCmd.Flags().StringVar(&accentColor, "color", "", "accent color (hex)")

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export a session transcript as markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list tutoring modes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range tutor.Modes {
				fmt.Printf("  %-10s %s\n", m.Name, m.Blurb)
			}
		},
	}

	rootCmd.AddCommand(chatCmd, askCmd, plotCmd, sessionsCmd, exportCmd, modesCmd)

	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file with CLI flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if modelName != "" {
		cfg.Model = modelName
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if modeName != "" {
		cfg.Mode = modeName
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func buildClient(cfg *config.Config) (llm.Client, error) {
	key, err := cfg.ResolveAPIKey()
	if err != nil && cfg.Provider != "openai" {
		// OpenAI-compatible local servers run without credentials.
		return nil, err
	}
	return llm.New(cfg.Provider, llm.Config{
		APIKey:    key,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		MaxTokens: cfg.MaxTokens,
	})
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	session := tutor.NewSession(client, tutor.GetMode(cfg.Mode))
	store := storage.New(cfg.DataDir)
	m := tui.NewChat(session, store, cfg.Provider, cfg.Model)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	mode := tutor.GetMode(cfg.Mode)
	session := tutor.NewSession(client, mode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var reply string
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return err
		}
		reply, err = session.AskWithImage(ctx, args[0], mimeForFile(imagePath), data)
		if err != nil {
			return err
		}
	} else {
		reply, err = session.Ask(ctx, args[0])
		if err != nil {
			return err
		}
	}

	for _, seg := range extract.Split(reply) {
		switch seg.Kind {
		case extract.KindText:
			fmt.Println(strings.TrimSpace(seg.Text))
		case extract.KindPlot:
			if rendered := plot.Terminal(seg.Payload, mode.Accent); rendered != "" {
				fmt.Println(rendered)
			}
		}
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	payload := args[0]

	if asciiOut {
		p, err := plot.Build(payload)
		if err != nil {
			return err
		}
		if p.Empty() {
			color.Yellow("nothing to plot: expression is undefined across the domain")
			return nil
		}
		ys := p.ClampedYs()
		caption := fmt.Sprintf("y = %s  x ∈ [%g, %g]",
			p.Directive.Expression, p.Directive.DomainMin, p.Directive.DomainMax)
		fmt.Println(asciigraph.Plot(ys,
			asciigraph.Height(12),
			asciigraph.Width(72),
			asciigraph.Caption(caption),
		))
		return nil
	}

	if svgOut != "" {
		markup := plot.SVG(payload, accentColor)
		if markup == "" {
			color.Yellow("nothing to plot")
			return nil
		}
		if err := os.WriteFile(svgOut, []byte(markup), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
		return nil
	}

	rendered := plot.Terminal(payload, accentColor)
	if rendered == "" {
		color.Yellow("nothing to plot")
		return nil
	}
	fmt.Println(rendered)
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sessions, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no saved sessions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tMODE\tMODEL\tTURNS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			s.ID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.Mode,
			s.Model,
			s.Turns,
		)
	}
	return w.Flush()
}

func exportSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	md, err := storage.New(cfg.DataDir).ExportMarkdown(args[0])
	if err != nil {
		return err
	}
	fmt.Print(md)
	return nil
}

func mimeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
