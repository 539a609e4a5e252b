package main

import (
	"bufio"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zolve/formkit/internal/debounce"
	"zolve/formkit/internal/validation"
)

type edit struct {
	seq   int
	value string
}

func newWatchCmd(env *environment) *cobra.Command {
	flags := &fieldFlags{}
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "watch --purpose PURPOSE",
		Short: "Validate stdin lines after typing pauses",
		Long: `Treat every line read from stdin as the new content of a field and
validate it once no new line has arrived for the debounce delay. Lines that
are replaced within the delay are never validated.

Examples:
  # Validate a zip code as it is typed
  formterm watch --purpose zipCode

  # Use a longer quiet period
  formterm watch --purpose phone --country in --delay 500ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			purpose, country, err := flags.resolve(env)
			if err != nil {
				return err
			}
			if delay <= 0 {
				delay = env.config.DebounceDelay
			}

			logger, closeLog, err := env.logger("", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			var (
				mu    sync.Mutex
				fired int
				done  bool
				cond  = sync.NewCond(&mu)
				out   = cmd.OutOrStdout()
			)

			onChange := debounce.Func(delay, func(e edit) {
				result := validation.Validate(purpose, e.value, country)

				mu.Lock()
				defer mu.Unlock()
				if done {
					return
				}
				logger.Debug("edit validated",
					zap.Int("edit", e.seq),
					zap.Stringer("purpose", purpose),
					zap.Bool("valid", result.Valid))
				writeResult(out, env.catalog, e.value, result)
				if e.seq > fired {
					fired = e.seq
				}
				cond.Broadcast()
			})

			seq := 0
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				seq++
				onChange(edit{seq: seq, value: scanner.Text()})
			}

			// wait for the final edit to be validated, then stop late callbacks
			mu.Lock()
			for fired < seq {
				cond.Wait()
			}
			done = true
			mu.Unlock()

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			logger.Debug("watch finished", zap.Int("edits", seq))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&delay, "delay", 0, "quiet period before validating (default from FORMTERM_DEBOUNCE)")
	return cmd
}
