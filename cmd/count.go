package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/scanner"
	"warehouse-counter/core/session"
	"warehouse-counter/core/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// countCmd runs a counting session on the terminal.
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count products from a terminal scanner",
	Long: `Reads scans from standard input, one per line, as a USB scanner in
keyboard mode produces them. After each scan enter the amount counted:

  3         count 3 units
  undo 2    take back 2 previously counted units
  (empty)   cancel

Type "reset" at the amount prompt to clear the product's count.
End the session with Ctrl+D.`,
	RunE: runCount,
}

func init() {
	RootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	sess := session.New(rt.catalog, rt.store, reconcile.New(), rt.logger)

	keys := make(chan scanner.Key)
	events := make(chan scanner.Event)
	go func() {
		if err := scanner.Run(ctx, rt.cfg.Scanner, keys, events); err != nil && !errors.Is(err, context.Canceled) {
			rt.logger.Error("Scanner stopped", zap.Error(err))
		}
	}()

	return countLoop(ctx, os.Stdin, os.Stdout, sess, keys, events)
}

// countLoop alternates between scans and amount prompts until in ends.
func countLoop(ctx context.Context, in io.Reader, out io.Writer, sess *session.Session, keys chan<- scanner.Key, events <-chan scanner.Event) error {
	reader := bufio.NewScanner(in)
	fmt.Fprint(out, "Scan> ")

	for reader.Scan() {
		line := strings.TrimSpace(reader.Text())

		if sess.State() == session.StateAwaiting {
			confirmLine(ctx, out, sess, line)
		} else if line != "" {
			ev, err := typeLine(ctx, line, keys, events)
			if err != nil {
				return err
			}
			res, err := sess.HandleScan(ctx, ev)
			printScan(out, res, err)
		}

		if sess.State() == session.StateAwaiting {
			fmt.Fprint(out, "Amount> ")
		} else {
			fmt.Fprint(out, "Scan> ")
		}
	}
	fmt.Fprintln(out)
	return reader.Err()
}

// typeLine replays line as one burst of keys followed by Enter.
func typeLine(ctx context.Context, line string, keys chan<- scanner.Key, events <-chan scanner.Event) (scanner.Event, error) {
	at := time.Now()
	for _, r := range line + "\n" {
		value := string(r)
		if r == '\n' {
			value = scanner.KeyEnter
		}
		select {
		case keys <- scanner.Key{Value: value, At: at}:
		case <-ctx.Done():
			return scanner.Event{}, ctx.Err()
		}
	}
	select {
	case ev := <-events:
		return ev, nil
	case <-ctx.Done():
		return scanner.Event{}, ctx.Err()
	}
}

func confirmLine(ctx context.Context, out io.Writer, sess *session.Session, line string) {
	if line == "" {
		sess.Cancel()
		fmt.Fprintln(out, "Cancelled.")
		return
	}

	if strings.EqualFold(line, "reset") {
		p, _ := sess.Pending()
		sess.Cancel()
		if _, err := sess.Reset(ctx, p.ID); err != nil {
			fmt.Fprintf(out, "Reset failed: %v\n", err)
			return
		}
		fmt.Fprintf(out, "%s reset to 0.\n", p.Code)
		return
	}

	dir, amount, err := parseAmount(line)
	if err != nil {
		fmt.Fprintf(out, "%v\n", err)
		return
	}

	_, p, err := sess.Confirm(ctx, dir, amount)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", domainerr.KindOf(err), err)
		return
	}
	fmt.Fprintf(out, "%s %s: counted %s of %s (%s)\n", p.Code, p.Name, p.CountedQuantity, p.TotalQuantity, p.State())
}

// parseAmount reads "N" as a count and "undo N" as taking N back.
func parseAmount(line string) (reconcile.Direction, decimal.Decimal, error) {
	dir := reconcile.Decrement
	fields := strings.Fields(line)
	if len(fields) == 2 && strings.EqualFold(fields[0], "undo") {
		dir = reconcile.Increment
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return "", decimal.Zero, domainerr.New(domainerr.KindInvalidInput, "enter an amount, \"undo <amount>\" or nothing to cancel")
	}
	amount, err := utils.ToDecimal(fields[0])
	if err != nil {
		return "", decimal.Zero, domainerr.Wrap(domainerr.KindInvalidAmount, "invalid amount", err)
	}
	return dir, amount, nil
}

func printScan(out io.Writer, res session.ScanResult, err error) {
	switch res.Status {
	case session.ScanAwaiting:
		p := res.Product
		fmt.Fprintf(out, "%s %s: counted %s of %s, %s remaining\n", p.Code, p.Name, p.CountedQuantity, p.TotalQuantity, p.Remaining())
	case session.ScanNotFound:
		fmt.Fprintf(out, "%s: not found\n", res.Code)
	case session.ScanIgnored:
		fmt.Fprintf(out, "%s: ignored\n", res.Code)
	default:
		if err != nil {
			fmt.Fprintln(out, err)
		}
	}
}
