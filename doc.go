// Package xlautomaten is a typed client for the XL Automaten vending
// machine API. It covers articles, categories, suppliers, machines,
// trays, positions, mappings, pickup codes and their items, cash
// vouchers with their transactions, and mastermodules.
//
// All operations hang off a Client:
//
//	client := xlautomaten.NewClient()
//	resp, err := client.Login(ctx, email, password)
//	if err != nil {
//		return err
//	}
//	client = client.WithToken(resp.Token)
//
//	articles, err := client.GetArticles(ctx)
//
// Responses are validated against the shapes the API guarantees before
// they are converted into domain types; a response that does not match
// surfaces as a *SchemaError rather than as zero values. Not-found
// responses satisfy errors.Is(err, ErrNotFound).
//
// Update operations take a patch of optional fields. The API only
// supports full writes, so a patch that does not carry every
// required-on-write field makes the client fetch the current state
// first and merge the patch on top.
package xlautomaten
