// Package commands defines the cartctl CLI, which edits storefront carts
// directly over the Storefront GraphQL API.
//
// Commands
//
//   - get         Fetch a cart with every line
//   - create      Create a cart
//   - add         Add merchandise lines
//   - remove      Remove lines by id
//   - update      Change line quantities (0 removes)
//   - attributes  Replace the cart attributes
//   - buyer       Set the buyer identity
//   - discounts   Replace the discount codes (none clears them)
//   - note        Set the cart note
//
// Every command prints the resulting cart as indented JSON.
//
// Connection settings default to STOREFRONT_URL, STOREFRONT_TOKEN,
// STOREFRONT_TIMEOUT and CART_LINES_PAGE_SIZE and can be overridden by flags.
package commands
