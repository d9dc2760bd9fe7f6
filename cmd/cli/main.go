package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	baseURL string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "moneyledger-cli",
		Short:         "MoneyLedger CLI tool",
		Long:          `A command line interface for interacting with the MoneyLedger API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the MoneyLedger API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		accountCmd(opts),
		transferCmd(opts),
		withdrawCmd(opts),
		withdrawalCmd(opts),
	)

	return rootCmd
}

func accountCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var initialBalance string
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, opts, http.MethodPost, "/api/v1/accounts", map[string]string{
				"initial_balance": initialBalance,
			})
		},
	}
	openCmd.Flags().StringVar(&initialBalance, "initial-balance", "0", "Opening balance")

	balanceCmd := &cobra.Command{
		Use:   "balance <id>",
		Short: "Show an account and its balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, opts, http.MethodGet, "/api/v1/accounts/"+url.PathEscape(args[0]), nil)
		},
	}

	cmd.AddCommand(openCmd, balanceCmd)
	return cmd
}

func transferCmd(opts *options) *cobra.Command {
	var from, to, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between two accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, opts, http.MethodPost, "/api/v1/transfers", map[string]string{
				"from":   from,
				"to":     to,
				"amount": amount,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Sender account ID")
	cmd.Flags().StringVar(&to, "to", "", "Receiver account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to move")
	markRequired(cmd, "from", "to", "amount")

	return cmd
}

func withdrawCmd(opts *options) *cobra.Command {
	var accountID, address, amount string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw funds to an external address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, opts, http.MethodPost, "/api/v1/withdrawals", map[string]string{
				"account_id": accountID,
				"address":    address,
				"amount":     amount,
			})
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account to withdraw from")
	cmd.Flags().StringVar(&address, "address", "", "Destination address")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to withdraw")
	markRequired(cmd, "account", "address", "amount")

	return cmd
}

func withdrawalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdrawal",
		Short: "Withdrawal operations",
	}

	stateCmd := &cobra.Command{
		Use:   "state <id>",
		Short: "Show the gateway state of a withdrawal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, opts, http.MethodGet, "/api/v1/withdrawals/"+url.PathEscape(args[0]), nil)
		},
	}

	cmd.AddCommand(stateCmd)
	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}

// call sends one API request and prints the JSON response. Non-2xx responses
// are returned as errors carrying the server's message.
func call(cmd *cobra.Command, opts *options, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, strings.TrimRight(opts.baseURL, "/")+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: opts.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("request failed (status %d): %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
			}
			return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(data), 200))
	}

	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
