package storefront

// Every document selects the first $linesFirst lines of the cart. Remaining
// pages are loaded with cartLinesQuery.

const cartLineFields = `
  pageInfo {
    hasNextPage
    endCursor
  }
  edges {
    cursor
    node {
      id
      quantity
      attributes {
        key
        value
      }
      cost {
        subtotalAmount {
          amount
          currencyCode
        }
        totalAmount {
          amount
          currencyCode
        }
      }
      merchandise {
        ... on ProductVariant {
          id
          title
          price {
            amount
            currencyCode
          }
          product {
            id
            title
          }
        }
      }
    }
  }
`

const cartFragment = `
fragment CartFragment on Cart {
  id
  checkoutUrl
  createdAt
  updatedAt
  note
  totalQuantity
  attributes {
    key
    value
  }
  buyerIdentity {
    email
    phone
    countryCode
    customer {
      id
    }
  }
  discountCodes {
    code
    applicable
  }
  cost {
    subtotalAmount {
      amount
      currencyCode
    }
    totalAmount {
      amount
      currencyCode
    }
    totalTaxAmount {
      amount
      currencyCode
    }
  }
  lines(first: $linesFirst) {` + cartLineFields + `  }
}
`

const userErrorFields = `
    userErrors {
      field
      message
      code
    }
`

// Variables: id, linesFirst.
const cartQuery = `
query CartFetch($id: ID!, $linesFirst: Int!) {
  cart(id: $id) {
    ...CartFragment
  }
}
` + cartFragment

// Variables: id, linesFirst, linesAfter.
const cartLinesQuery = `
query CartLines($id: ID!, $linesFirst: Int!, $linesAfter: String) {
  cart(id: $id) {
    id
    lines(first: $linesFirst, after: $linesAfter) {` + cartLineFields + `    }
  }
}
`

// Variables: input, linesFirst.
const cartCreateMutation = `
mutation CartCreate($input: CartInput!, $linesFirst: Int!) {
  cartCreate(input: $input) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: cartId, lines, linesFirst.
const cartLinesAddMutation = `
mutation CartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!, $linesFirst: Int!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: cartId, lineIds, linesFirst.
const cartLinesRemoveMutation = `
mutation CartLinesRemove($cartId: ID!, $lineIds: [ID!]!, $linesFirst: Int!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: cartId, lines, linesFirst.
const cartLinesUpdateMutation = `
mutation CartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!, $linesFirst: Int!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: attributes, cartId, linesFirst.
const cartAttributesUpdateMutation = `
mutation CartAttributesUpdate($attributes: [AttributeInput!]!, $cartId: ID!, $linesFirst: Int!) {
  cartAttributesUpdate(attributes: $attributes, cartId: $cartId) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: buyerIdentity, cartId, linesFirst.
const cartBuyerIdentityUpdateMutation = `
mutation CartBuyerIdentityUpdate($buyerIdentity: CartBuyerIdentityInput!, $cartId: ID!, $linesFirst: Int!) {
  cartBuyerIdentityUpdate(buyerIdentity: $buyerIdentity, cartId: $cartId) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: cartId, discountCodes, linesFirst.
const cartDiscountCodesUpdateMutation = `
mutation CartDiscountCodesUpdate($cartId: ID!, $discountCodes: [String!], $linesFirst: Int!) {
  cartDiscountCodesUpdate(cartId: $cartId, discountCodes: $discountCodes) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment

// Variables: cartId, note, linesFirst.
const cartNoteUpdateMutation = `
mutation CartNoteUpdate($cartId: ID!, $note: String!, $linesFirst: Int!) {
  cartNoteUpdate(cartId: $cartId, note: $note) {
    cart {
      ...CartFragment
    }` + userErrorFields + `  }
}
` + cartFragment
