package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
)

// RunWizard asks for the settings most deployments change and saves the
// result to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to doccatalog! Let's configure the document page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Default category.
	cats := catalog.Default().Categories()
	items := make([]string, len(cats))
	for i, c := range cats {
		items[i] = fmt.Sprintf("%-10s — %s", c.ID, c.Label)
	}
	catPrompt := promptui.Select{
		Label: "Category shown on first load",
		Items: items,
	}
	idx, _, err := catPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("category selection: %w", err)
	}
	cfg.DefaultCategory = cats[idx].ID

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Static directory.
	staticPrompt := promptui.Prompt{
		Label:   "Directory holding assets/PDF",
		Default: cfg.StaticDir,
	}
	cfg.StaticDir, err = staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
