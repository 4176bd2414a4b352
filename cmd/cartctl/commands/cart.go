package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
)

func getCmd(opts *options) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "get <cart-id>",
		Short: "Fetch a cart with every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				if create {
					return opts.svc.GetOrCreate(ctx, args[0], domain.CartInput{})
				}
				return opts.svc.GetCart(ctx, args[0])
			})
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "create an empty cart when this one has expired")
	return cmd
}

func createCmd(opts *options) *cobra.Command {
	var (
		lines []string
		attrs []string
		codes []string
		note  string
		buyer buyerFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.CartInput{
				DiscountCodes: codes,
				Note:          note,
			}

			var err error
			if input.Lines, err = parseLines(lines); err != nil {
				return err
			}
			if input.Attributes, err = parseAttributes(attrs); err != nil {
				return err
			}
			if buyer.set() {
				bi := buyer.input()
				input.BuyerIdentity = &bi
			}

			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.CreateCart(ctx, input)
			})
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "merchandise line as <merchandise-id>[:<qty>] (repeatable)")
	cmd.Flags().StringArrayVar(&attrs, "attr", nil, "cart attribute as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&codes, "code", nil, "discount code (repeatable)")
	cmd.Flags().StringVar(&note, "note", "", "cart note")
	buyer.register(cmd)
	return cmd
}

func addCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <cart-id> <merchandise-id>[:<qty>]...",
		Short: "Add merchandise lines to a cart",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseLines(args[1:])
			if err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.AddItemsToCart(ctx, args[0], lines)
			})
		},
	}
}

func removeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <cart-id> <line-id>...",
		Short: "Remove lines from a cart",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.RemoveItemsFromCart(ctx, args[0], args[1:])
			})
		},
	}
}

func updateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "update <cart-id> <line-id>:<qty>...",
		Short: "Set line quantities (0 removes the line)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := make([]domain.CartLineUpdateInput, 0, len(args)-1)
			for _, a := range args[1:] {
				id, qty, ok := splitQuantity(a)
				if !ok {
					return fmt.Errorf("line %q: expected <line-id>:<qty>", a)
				}
				updates = append(updates, domain.CartLineUpdateInput{ID: id, Quantity: qty})
			}
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.SetItemQuantities(ctx, args[0], updates)
			})
		},
	}
}

func attributesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "attributes <cart-id> [key=value...]",
		Short: "Replace the cart attributes (none clears them)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parseAttributes(args[1:])
			if err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.UpdateAttributes(ctx, args[0], attrs)
			})
		},
	}
}

func buyerCmd(opts *options) *cobra.Command {
	var buyer buyerFlags

	cmd := &cobra.Command{
		Use:   "buyer <cart-id>",
		Short: "Set the buyer identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !buyer.set() {
				return fmt.Errorf("at least one of --email, --phone, --country, --customer-token is required")
			}
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.UpdateBuyerIdentity(ctx, args[0], buyer.input())
			})
		},
	}
	buyer.register(cmd)
	return cmd
}

func discountsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "discounts <cart-id> [code...]",
		Short: "Replace the discount codes (none clears them)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.UpdateDiscountCodes(ctx, args[0], args[1:])
			})
		},
	}
}

func noteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "note <cart-id> <note>",
		Short: "Set the cart note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context) (domain.Cart, error) {
				return opts.svc.UpdateNote(ctx, args[0], args[1])
			})
		},
	}
}

type buyerFlags struct {
	email, phone, country, token string
}

func (b *buyerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.email, "email", "", "buyer email")
	cmd.Flags().StringVar(&b.phone, "phone", "", "buyer phone (E.164)")
	cmd.Flags().StringVar(&b.country, "country", "", "buyer country code (ISO 3166-1 alpha-2)")
	cmd.Flags().StringVar(&b.token, "customer-token", "", "customer access token")
}

func (b *buyerFlags) set() bool {
	return b.email != "" || b.phone != "" || b.country != "" || b.token != ""
}

func (b *buyerFlags) input() domain.BuyerIdentityInput {
	return domain.BuyerIdentityInput{
		Email:               b.email,
		Phone:               b.phone,
		CountryCode:         strings.ToUpper(b.country),
		CustomerAccessToken: b.token,
	}
}

// splitQuantity splits "<id>:<qty>" on the last colon. Ids are gid:// URIs,
// so only a numeric suffix counts as a quantity.
func splitQuantity(s string) (string, int32, bool) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return s, 0, false
	}
	n, err := strconv.ParseInt(s[i+1:], 10, 32)
	if err != nil {
		return s, 0, false
	}
	return s[:i], int32(n), true
}

// parseLines reads "<merchandise-id>[:<qty>]" arguments. The quantity
// defaults to 1.
func parseLines(args []string) ([]domain.CartLineInput, error) {
	lines := make([]domain.CartLineInput, 0, len(args))
	for _, a := range args {
		id, qty, ok := splitQuantity(a)
		if !ok {
			id, qty = a, 1
		}
		if id == "" {
			return nil, fmt.Errorf("line %q: missing merchandise id", a)
		}
		lines = append(lines, domain.CartLineInput{MerchandiseID: id, Quantity: qty})
	}
	return lines, nil
}

func parseAttributes(args []string) ([]domain.Attribute, error) {
	attrs := make([]domain.Attribute, 0, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("attribute %q: expected key=value", a)
		}
		attrs = append(attrs, domain.Attribute{Key: k, Value: v})
	}
	return attrs, nil
}
