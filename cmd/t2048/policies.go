package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/registry"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List available AI policies",
	Long:  `Display all registered AI policies and the play mode that uses each one.`,
	Run:   runPolicies,
}

func runPolicies(cmd *cobra.Command, args []string) {
	policies := registry.List()

	if len(policies) == 0 {
		fmt.Println("No policies registered.")
		return
	}

	modes := make(map[string]config.Mode)
	for _, m := range config.Modes() {
		if id := m.PolicyID(); id != "" {
			modes[id] = m
		}
	}

	fmt.Println("Available policies:")
	fmt.Println()
	for _, p := range policies {
		fmt.Printf("  %-12s %s\n", p.ID, p.Title)
		if m, ok := modes[p.ID]; ok {
			fmt.Printf("  %-12s play with: t2048 play --mode %s\n", "", m)
		}
	}
	fmt.Println()
	fmt.Println("Run headless games with: t2048 simulate --policy <id>")
}
