package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasneemo-o/ipv4-checker/pkg/logger"
	"github.com/tasneemo-o/ipv4-checker/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [address...]",
		Short: "Validate addresses given as arguments or on stdin",
		Long: `Validate each argument as a dotted-decimal IPv4 address.
With no arguments, or with "-", one address per line is read from stdin.
Exits with status 1 if any address is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if quiet {
				out = io.Discard
			}

			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				return a.checkReader(cmd.Context(), cmd.InOrStdin(), out)
			}
			return a.checkAll(cmd.Context(), args, out)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing, only set the exit status")

	return cmd
}

func (a *app) checkAll(ctx context.Context, addrs []string, out io.Writer) error {
	invalid := 0
	for _, addr := range addrs {
		if !a.checkOne(ctx, addr, out) {
			invalid++
		}
	}
	return a.finish(ctx, len(addrs), invalid)
}

// checkReader validates one address per line. Lines have no length limit;
// an oversized line is just another invalid address.
func (a *app) checkReader(ctx context.Context, r io.Reader, out io.Writer) error {
	total, invalid := 0, 0

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read addresses: %w", err)
		}

		if line != "" {
			total++
			addr := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !a.checkOne(ctx, addr, out) {
				invalid++
			}
		}

		if err != nil {
			break
		}
	}

	return a.finish(ctx, total, invalid)
}

func (a *app) checkOne(ctx context.Context, addr string, out io.Writer) bool {
	err := validator.ValidateIPv4(addr)
	a.log.DebugContext(ctx, "checked address", logger.Address(addr), logger.Valid(err == nil), logger.Reason(err))

	if err != nil {
		fmt.Fprintf(out, "%s\tinvalid: %v\n", addr, err)
		return false
	}
	fmt.Fprintf(out, "%s\tvalid\n", addr)
	return true
}

func (a *app) finish(ctx context.Context, total, invalid int) error {
	a.log.DebugContext(ctx, "check finished", "total", total, "invalid", invalid)
	if invalid > 0 {
		return errCheckFailed
	}
	return nil
}
