package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(a *app) *cobra.Command {
	var fieldType string

	cmd := &cobra.Command{
		Use:   "keys CODE OBJECT [FIELD]",
		Short: "List candidate message keys, most specific first",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, object := args[0], args[1]

			var keys []string
			if len(args) == 3 {
				keys = a.codes().FieldKeys(code, object, args[2], fieldType)
			} else {
				if fieldType != "" {
					return fmt.Errorf("--type needs a FIELD argument")
				}
				keys = a.codes().ObjectKeys(code, object)
			}

			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldType, "type", "t", "", "Field type used for the type scoped key (e.g. int)")
	return cmd
}
