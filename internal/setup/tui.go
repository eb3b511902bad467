// Package setup provides the interactive wizard that writes a starter
// config file.
package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)
)

type holdingYaml struct {
	Ticker string `yaml:"ticker"`
	Shares string `yaml:"shares"`
	Price  string `yaml:"price,omitempty"`
}

type targetYaml struct {
	Ticker string `yaml:"ticker"`
	Target string `yaml:"target"`
}

type configYaml struct {
	Platform string        `yaml:"platform"`
	Quote    string        `yaml:"quote_currency,omitempty"`
	Holdings []holdingYaml `yaml:"holdings"`
	Policy   []targetYaml  `yaml:"policy"`
}

// RunTUI launches the terminal configuration wizard and writes a starter
// config the user can edit with their real holdings.
func RunTUI() error {
	var (
		platform string
		quote    string
		path     string
		confirm  bool
	)

	quote = "USDT"
	path = "config.yaml"

	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("REBALANCER CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Describe where your prices come from.\n"))

	fmt.Println(stepStyle.Render("STEP 1: PRICE SOURCE"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a price source").
				Options(
					huh.NewOption("Static prices from the config file", "static"),
					huh.NewOption("Binance", "binance"),
					huh.NewOption("Bybit", "bybit"),
					huh.NewOption("Hyperliquid", "hyperliquid"),
				).
				Value(&platform),
		),
	).Run()
	if err != nil {
		return err
	}

	if platform == "binance" || platform == "bybit" {
		fmt.Println(stepStyle.Render("STEP 2: QUOTE CURRENCY"))
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Quote Currency").
					Description("Currency your tickers are quoted in (e.g. USDT)").
					Value(&quote),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	fmt.Println(stepStyle.Render("FINAL STEP: WRITE CONFIG"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Config path").
				Value(&path),
			huh.NewConfirm().
				Title("Write starter config with example holdings?").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	cfg := starterConfig(platform, quote)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render("wrote " + path + ", edit it with your real holdings"))
	return nil
}

func starterConfig(platform, quote string) configYaml {
	cfg := configYaml{
		Platform: platform,
		Policy: []targetYaml{
			{Ticker: "META", Target: "0.4"},
			{Ticker: "APPL", Target: "0.6"},
		},
	}

	switch platform {
	case "static":
		cfg.Holdings = []holdingYaml{
			{Ticker: "META", Shares: "10", Price: "300"},
			{Ticker: "APPL", Shares: "5", Price: "200"},
		}
	default:
		cfg.Quote = quote
		cfg.Holdings = []holdingYaml{
			{Ticker: "BTC", Shares: "0.5"},
			{Ticker: "ETH", Shares: "4"},
		}
		cfg.Policy = []targetYaml{
			{Ticker: "BTC", Target: "0.7"},
			{Ticker: "ETH", Target: "0.3"},
		}
	}

	if platform == "hyperliquid" {
		cfg.Quote = ""
	}

	return cfg
}
