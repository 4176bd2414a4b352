package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/storefront"
	"github.com/dwikikusuma/storefront-cart/pkg/config"
	"github.com/dwikikusuma/storefront-cart/pkg/graphql"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/dwikikusuma/storefront-cart/pkg/shutdown"
)

type options struct {
	url      string
	token    string
	timeout  time.Duration
	pageSize int
	verbose  bool

	svc *app.Service
}

func Execute() error {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Defaults come from the environment.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{}

	root := &cobra.Command{
		Use:          "cartctl",
		Short:        "Inspect and edit storefront carts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.url == "" {
				return fmt.Errorf("storefront url required (--url or STOREFRONT_URL)")
			}

			log := logger.Discard()
			if opts.verbose {
				log = logger.New(logger.Options{
					Service: "cartctl",
					Env:     cfg.AppEnv,
					Level:   "debug",
					Output:  cmd.ErrOrStderr(),
				})
			}

			gql := graphql.NewClient(opts.url,
				graphql.WithHTTPClient(&http.Client{Timeout: opts.timeout}),
				graphql.WithHeader("X-Shopify-Storefront-Access-Token", opts.token),
				graphql.WithLogger(log),
			)
			carts := storefront.NewCartResource(gql,
				storefront.WithPageSize(opts.pageSize),
				storefront.WithLogger(log),
			)
			opts.svc = app.NewService(carts, log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.url, "url", cfg.StorefrontURL, "storefront GraphQL endpoint")
	root.PersistentFlags().StringVar(&opts.token, "token", cfg.StorefrontToken, "storefront access token")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.StorefrontTimeout, "per request timeout")
	root.PersistentFlags().IntVar(&opts.pageSize, "page-size", cfg.LinesPageSize, "cart lines per page")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		getCmd(opts),
		createCmd(opts),
		addCmd(opts),
		removeCmd(opts),
		updateCmd(opts),
		attributesCmd(opts),
		buyerCmd(opts),
		discountsCmd(opts),
		noteCmd(opts),
	)
	return root
}

// run executes op and prints the cart it returns.
func run(cmd *cobra.Command, op func(ctx context.Context) (domain.Cart, error)) error {
	cart, err := op(cmd.Context())
	if err != nil {
		return err
	}
	return printCart(cmd.OutOrStdout(), cart)
}

func printCart(w io.Writer, cart domain.Cart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cart)
}
