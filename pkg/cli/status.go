package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arkivsim/arkivsim/pkg/engine/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show simulator health and active behavior overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAdminClient(adminURL)

		health, err := client.health()
		if err != nil {
			fmt.Printf("Simulator: %s\n", color.New(color.FgRed).Sprint("UNREACHABLE"))
			return err
		}
		fmt.Printf("Simulator: %s\n", color.New(color.FgGreen).Sprintf("%v", health["status"]))

		data, err := client.do(http.MethodGet, "/internal/mock/behavior", nil, nil)
		if err != nil {
			return err
		}
		var snapshot api.SnapshotResponse
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return err
		}

		if len(snapshot.Behaviors) == 0 {
			fmt.Println("Overrides: none")
			return nil
		}

		targets := make([]string, 0, len(snapshot.Behaviors))
		for target := range snapshot.Behaviors {
			targets = append(targets, target)
		}
		sort.Strings(targets)

		fmt.Println("Overrides:")
		for _, target := range targets {
			state := snapshot.Behaviors[target]
			fmt.Printf("  %-24s %s%s\n", target, modeColor(state.Mode), stateDetail(state))
		}
		return nil
	},
}

func modeColor(mode string) string {
	switch mode {
	case "FAIL":
		return color.New(color.FgRed).Sprint(mode)
	case "TIMEOUT":
		return color.New(color.FgYellow).Sprint(mode)
	case "EMPTY":
		return color.New(color.FgBlue).Sprint(mode)
	default:
		return mode
	}
}

func stateDetail(state api.BehaviorState) string {
	switch state.Mode {
	case "FAIL":
		var detail string
		if state.Status != 0 {
			detail = fmt.Sprintf(" status=%d", state.Status)
		}
		if state.Body != "" {
			detail += fmt.Sprintf(" bodyLength=%d", len(state.Body))
		}
		return detail
	case "TIMEOUT":
		if state.Delay != "" {
			return " delay=" + state.Delay
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
