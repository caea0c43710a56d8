// Package routes resolves route names to absolute URLs and back.
//
// Signed verification links bind the name of the route that will handle them.
// The verifyemail service needs both directions: the name to URL mapping when
// a link is generated, and the URL to name mapping when a link comes back.
// This package provides two implementations of that pair.
//
//   - Static is a fixed table of route names and absolute URLs, handy for
//     CLIs, tests and services that do not share a router.
//   - Mux wraps a github.com/gorilla/mux router and uses its named routes, so
//     the links always agree with the routes the application actually serves.
//
// # Usage
//
//	r := mux.NewRouter()
//	r.HandleFunc("/verify/email", handleVerify).Name("verify_email")
//
//	resolver, err := routes.NewMux(r, "https://app.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	u, _ := resolver.URL("verify_email")  // https://app.example.com/verify/email
//	name, ok := resolver.Route(u)          // "verify_email", true
//
// Presented URLs without a host are matched on their path alone, which lets a
// handler pass r.URL straight through.
package routes
