package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"itemservice/internal/platform/validation"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		fieldType      string
		arguments      []string
		defaultMessage string
		showKey        bool
	)

	cmd := &cobra.Command{
		Use:   "resolve CODE OBJECT [FIELD]",
		Short: "Resolve the message a violation would be shown with",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := a.messages()
			if err != nil {
				return err
			}

			values := make([]any, len(arguments))
			for i, arg := range arguments {
				values[i] = arg
			}

			var violation validation.Violation
			if len(args) == 3 {
				violation = &validation.FieldViolation{
					Object:    args[1],
					Field:     args[2],
					FieldType: fieldType,
					ErrorCode: args[0],
					Args:      values,
					Default:   defaultMessage,
				}
			} else {
				violation = &validation.ObjectViolation{
					Object:    args[1],
					ErrorCode: args[0],
					Args:      values,
					Default:   defaultMessage,
				}
			}

			resolved := messages.Resolve(violation)
			out := cmd.OutOrStdout()
			if showKey {
				key := resolved.Key
				if !resolved.FromCatalog() {
					key = "-"
				}
				fmt.Fprintf(out, "%s\t%s\n", key, resolved.Text)
				return nil
			}
			fmt.Fprintln(out, resolved.Text)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&fieldType, "type", "t", "", "Field type used for the type scoped key")
	flags.StringArrayVarP(&arguments, "arg", "a", nil, "Message argument, repeat for {0}, {1}, ...")
	flags.StringVarP(&defaultMessage, "default", "d", "", "Default message used when no key matches")
	flags.BoolVar(&showKey, "show-key", false, "Print the matched catalog key before the text")
	return cmd
}
