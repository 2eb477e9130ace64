package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arkivsim/arkivsim/pkg/engine/api"
)

var behaviorFlags struct {
	group    string
	resource string
	status   int
	body     string
	delay    string
}

var behaviorCmd = &cobra.Command{
	Use:   "behavior",
	Short: "Manage persistent behavior overrides",
}

var behaviorSetCmd = &cobra.Command{
	Use:   "set MODE",
	Short: "Install a persistent override (NORMAL, FAIL, TIMEOUT, EMPTY)",
	Example: `  # All case creations fail with 503
  arkivsim behavior set FAIL --group case --status 503

  # The saksstatus code list goes empty
  arkivsim behavior set EMPTY --group resource --resource saksstatus

  # Case queries stall for 45 seconds
  arkivsim behavior set TIMEOUT --group query --delay 45s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := api.UpdateRequest{
			Group:    behaviorFlags.group,
			Mode:     args[0],
			Status:   behaviorFlags.status,
			Body:     behaviorFlags.body,
			Delay:    behaviorFlags.delay,
			Resource: behaviorFlags.resource,
		}
		client := newAdminClient(adminURL)
		if _, err := client.do(http.MethodPut, "/internal/mock/behavior", nil, req); err != nil {
			return err
		}
		fmt.Printf("%s %s override on %s\n",
			color.New(color.FgGreen).Sprint("Set"), args[0], describeTarget())
		return nil
	},
}

var behaviorClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a persistent override",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{"group": {behaviorFlags.group}}
		if behaviorFlags.resource != "" {
			query.Set("resource", behaviorFlags.resource)
		}
		client := newAdminClient(adminURL)
		if _, err := client.do(http.MethodDelete, "/internal/mock/behavior", query, nil); err != nil {
			return err
		}
		fmt.Printf("Cleared override on %s\n", describeTarget())
		return nil
	},
}

var armTimeoutCmd = &cobra.Command{
	Use:   "arm-timeout",
	Short: "Arm a one-shot timeout for the next matching request",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{"group": {behaviorFlags.group}}
		if behaviorFlags.delay != "" {
			query.Set("delay", behaviorFlags.delay)
		}
		client := newAdminClient(adminURL)
		if _, err := client.do(http.MethodPost, "/internal/mock/arm-timeout", query, nil); err != nil {
			return err
		}
		fmt.Printf("%s one-shot timeout on %s\n",
			color.New(color.FgYellow).Sprint("Armed"), describeTarget())
		return nil
	},
}

var armFailCmd = &cobra.Command{
	Use:   "arm-fail",
	Short: "Arm a one-shot failure for the next matching request",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{"group": {behaviorFlags.group}}
		if behaviorFlags.status != 0 {
			query.Set("status", strconv.Itoa(behaviorFlags.status))
		}
		if behaviorFlags.body != "" {
			query.Set("body", behaviorFlags.body)
		}
		client := newAdminClient(adminURL)
		if _, err := client.do(http.MethodPost, "/internal/mock/arm-fail", query, nil); err != nil {
			return err
		}
		fmt.Printf("%s one-shot failure on %s\n",
			color.New(color.FgRed).Sprint("Armed"), describeTarget())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all stored state and behavior overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAdminClient(adminURL)
		if _, err := client.do(http.MethodPost, "/internal/mock/reset", nil, nil); err != nil {
			return err
		}
		fmt.Println("Simulator reset")
		return nil
	},
}

func describeTarget() string {
	group := behaviorFlags.group
	if group == "" {
		group = "case"
	}
	if behaviorFlags.resource != "" {
		return group + ":" + behaviorFlags.resource
	}
	return group
}

func init() {
	for _, cmd := range []*cobra.Command{behaviorSetCmd, behaviorClearCmd, armTimeoutCmd, armFailCmd} {
		cmd.Flags().StringVar(&behaviorFlags.group, "group", "case", "Target group: case, journalpost, file, query, resource")
	}
	behaviorSetCmd.Flags().StringVar(&behaviorFlags.resource, "resource", "", "Catalog resource path (resource group only)")
	behaviorClearCmd.Flags().StringVar(&behaviorFlags.resource, "resource", "", "Catalog resource path (resource group only)")
	behaviorSetCmd.Flags().IntVar(&behaviorFlags.status, "status", 0, "HTTP status for FAIL mode")
	behaviorSetCmd.Flags().StringVar(&behaviorFlags.body, "body", "", "Response body for FAIL mode")
	behaviorSetCmd.Flags().StringVar(&behaviorFlags.delay, "delay", "", "Delay for TIMEOUT mode (Go duration, e.g. 45s)")
	armTimeoutCmd.Flags().StringVar(&behaviorFlags.delay, "delay", "", "Delay override (Go duration)")
	armFailCmd.Flags().IntVar(&behaviorFlags.status, "status", 0, "HTTP status (default 500)")
	armFailCmd.Flags().StringVar(&behaviorFlags.body, "body", "", "Response body")

	behaviorCmd.AddCommand(behaviorSetCmd, behaviorClearCmd)
	rootCmd.AddCommand(behaviorCmd, armTimeoutCmd, armFailCmd, resetCmd)
}
