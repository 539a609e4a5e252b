package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zolve/formkit/internal/messages"
	"zolve/formkit/internal/models"
	"zolve/formkit/internal/validation"
)

var errInvalidValues = errors.New("one or more values are invalid")

type fieldFlags struct {
	purpose string
	country string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.purpose, "purpose", "p", "", "field purpose (see 'formterm purposes')")
	cmd.Flags().StringVar(&f.country, "country", "", "phone country code (default from FORMTERM_COUNTRY)")
	_ = cmd.MarkFlagRequired("purpose")
}

// resolve turns the flags into a purpose and a phone country context
func (f *fieldFlags) resolve(env *environment) (validation.Purpose, *validation.Country, error) {
	purpose, err := validation.ParsePurpose(f.purpose)
	if err != nil {
		return 0, nil, err
	}

	code := f.country
	if code == "" {
		code = env.config.DefaultCountry
	}
	country, err := models.FindCountry(code)
	if err != nil {
		return 0, nil, err
	}

	return purpose, country.Context(), nil
}

// writeResult prints one line per value: the value, then "ok" or the
// message key and its text.
func writeResult(w io.Writer, catalog *messages.Catalog, value string, result validation.Result) {
	if result.Valid {
		fmt.Fprintf(w, "%q\tok\n", value)
		return
	}

	key := string(result.Message)
	if key == "" {
		key = "INVALID"
	}
	if text := catalog.Describe(result); text != "" {
		fmt.Fprintf(w, "%q\t%s\t%s\n", value, key, text)
		return
	}
	fmt.Fprintf(w, "%q\t%s\n", value, key)
}

func newValidateCmd(env *environment) *cobra.Command {
	flags := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "validate --purpose PURPOSE VALUE...",
		Short: "Validate values against a field purpose",
		Long: `Validate each value with the rule for the given purpose and print one
line per value. The command exits with a non-zero status when any value
is invalid.

Examples:
  # Check an email address
  formterm validate --purpose email me@example.com

  # Check Indian phone numbers
  formterm validate --purpose phone --country in 919876543210 91`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			purpose, country, err := flags.resolve(env)
			if err != nil {
				return err
			}

			logger, closeLog, err := env.logger("", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			out := cmd.OutOrStdout()
			invalid := 0
			for _, value := range args {
				result := validation.Validate(purpose, value, country)
				logger.Debug("value validated",
					zap.Stringer("purpose", purpose),
					zap.Bool("valid", result.Valid),
					zap.String("message", string(result.Message)))

				writeResult(out, env.catalog, value, result)
				if !result.Valid {
					invalid++
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidValues, invalid, len(args))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
