// Package convert turns vendor-exported order and subscription emails into
// templates built from partial includes.
//
// Each source document is reduced to its message body by ExtractContent,
// wrapped in the standard layout by Scaffold and written to a
// storage.Storage. A Profile names the source directory, the files it
// accepts and the naming rule for the resulting templates; OrdersProfile
// and SubscriptionsProfile cover the two exports in use.
//
//	out, _ := storage.NewLocalStorage("src/templates")
//	res, err := convert.NewConverter(out).Convert(ctx, convert.OrdersProfile("Original Email"))
//	fmt.Printf("%d/%d templates converted\n", len(res.Converted), res.Total)
package convert
