// Package verifyemail generates and validates signed URLs that prove a user
// controls an email address, without storing one-time tokens.
//
// A link is bound to a route name, a user identifier, the email address being
// confirmed, an expiration timestamp and any extra query parameters. The
// binding is a signature over an injective, length-prefixed encoding of those
// inputs, so two different input sets can never share a signature. Nothing is
// persisted: verification recomputes the signature from the presented URL and
// the values the caller currently trusts for the authenticated user.
//
// # Architecture
//
// Helper is the only service type. It depends on two small interfaces:
//
//   - Router maps route names to absolute URLs and presented URLs back to
//     route names. See package routes for a static table and a gorilla/mux
//     adapter.
//   - signer.Signer produces and checks the signature. HMAC-SHA256 is the
//     default; BLAKE2b and Ed25519 can be swapped in without touching callers.
//
// Helper is immutable after New and safe for concurrent use.
//
// # Usage
//
//	cfg, err := verifyemail.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolver, _ := routes.NewStatic(map[string]string{
//	    "verify_email": "https://app.example.com/verify/email",
//	})
//	helper, err := verifyemail.NewFromConfig(cfg, resolver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Issue a link and mail it.
//	sc, err := helper.GenerateSignature("verify_email", user.ID, user.Email, nil)
//	send(user.Email, sc.SignedURL(), sc.ExpirationMessage(language.English))
//
//	// In the handler for verify_email, with the user authenticated:
//	ok, err := helper.IsValidSignature(r.URL.String(), user.ID, user.Email)
//	switch {
//	case errors.Is(err, verifyemail.ErrExpiredSignature):
//	    // offer to resend the link
//	case !ok:
//	    // reject
//	}
//
// # Error Handling
//
// Expiration is the only failure reported as an error (ErrExpiredSignature),
// and only for links whose signature is otherwise authentic. Every other
// mismatch (wrong user, wrong email, edited parameters, edited signature,
// malformed URL) is a plain false, so callers cannot learn which part of a
// forged link was wrong. ValidateEmailConfirmation offers the same outcomes
// as sentinel errors for handlers that prefer a single error value.
package verifyemail
