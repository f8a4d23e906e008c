package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"itemservice/internal/adapters/binding"
	"itemservice/internal/adapters/http/response"
	"itemservice/internal/core/domain/item"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/validation"
)

var errItemInvalid = errors.New("item is invalid")

func newCheckCmd(a *app) *cobra.Command {
	var (
		name, price, quantity string
		asJSON                bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Bind and validate an item, printing every violation",
		Long:  "check binds the given flags the way a submitted form is bound, runs the item rules from the environment and prints each violation with its resolved message.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			messages, err := a.messages()
			if err != nil {
				return err
			}

			values := binding.Values{}
			flags := cmd.Flags()
			for field, value := range map[string]string{
				item.FieldName:     name,
				item.FieldPrice:    price,
				item.FieldQuantity: quantity,
			} {
				if flags.Changed(flagFor(field)) {
					values[field] = value
				}
			}

			violations := validation.NewViolations(item.ObjectName)
			draft := binding.BindItem(values, violations)

			registry := validation.NewRegistry()
			validation.Register[*item.Item](registry, item.NewValidator(a.rules()))
			if err := registry.Validate(draft, violations); err != nil {
				return err
			}

			a.log.Debug("Checked item",
				logger.Int("violations", violations.Count()),
				logger.Bool("valid", !violations.HasViolations()))

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(response.NewValidationErrorResponse(violations, messages)); err != nil {
					return err
				}
			} else {
				printViolations(cmd, violations, messages)
			}

			if violations.HasViolations() {
				return errItemInvalid
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, flagFor(item.FieldName), "", "Item name")
	flags.StringVar(&price, flagFor(item.FieldPrice), "", "Price as entered")
	flags.StringVar(&quantity, flagFor(item.FieldQuantity), "", "Quantity as entered")
	flags.BoolVar(&asJSON, "json", false, "Print the violations as the HTTP API renders them")
	return cmd
}

func flagFor(field string) string {
	if field == item.FieldName {
		return "name"
	}
	return field
}

func (a *app) rules() item.Rules {
	return item.Rules{
		PriceMin:      a.cfg.Item.PriceMin,
		PriceMax:      a.cfg.Item.PriceMax,
		QuantityMax:   a.cfg.Item.QuantityMax,
		TotalPriceMin: a.cfg.Item.TotalPriceMin,
	}
}

func printViolations(cmd *cobra.Command, violations *validation.Violations, messages *validation.MessageResolver) {
	out := cmd.OutOrStdout()
	if !violations.HasViolations() {
		fmt.Fprintln(out, "valid")
		return
	}

	for _, v := range violations.FieldViolations() {
		fmt.Fprintf(out, "%s\t%s\t%s\n", v.Field, v.ErrorCode, messages.Resolve(v).Text)
	}
	for _, v := range violations.ObjectViolations() {
		fmt.Fprintf(out, "-\t%s\t%s\n", v.ErrorCode, messages.Resolve(v).Text)
	}
}
