package verifyemail

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrymomot/verifyemail/pkg/logger"
	"github.com/dmitrymomot/verifyemail/pkg/signer"
)

// Query parameter names carried by every signed URL.
const (
	ParamExpires   = "expires"
	ParamSignature = "signature"
)

const component = "verifyemail"

// Router resolves route names to absolute URLs and presented URLs back to
// route names. Route must return false for URLs it does not serve.
type Router interface {
	URL(route string) (*url.URL, error)
	Route(u *url.URL) (string, bool)
}

// Helper generates and validates signed email verification URLs.
type Helper struct {
	router   Router
	signer   signer.Signer
	lifetime time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Helper. The signer holds the key material; Helper never sees it.
func New(router Router, s signer.Signer, opts ...Option) (*Helper, error) {
	if router == nil {
		return nil, ErrMissingRouter
	}
	if s == nil {
		return nil, ErrMissingSigner
	}

	h := &Helper{
		router:   router,
		signer:   s,
		lifetime: DefaultLifetime,
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.lifetime < time.Second {
		return nil, ErrInvalidLifetime
	}
	return h, nil
}

// NewFromConfig creates a Helper whose signer is built from cfg.
// Options are applied after the configured lifetime, so they win.
func NewFromConfig(cfg Config, router Router, opts ...Option) (*Helper, error) {
	s, err := signer.New(cfg.Algorithm, []byte(cfg.SigningSecret))
	if err != nil {
		return nil, err
	}
	if cfg.LifetimeSeconds != 0 {
		opts = append([]Option{WithLifetime(time.Duration(cfg.LifetimeSeconds) * time.Second)}, opts...)
	}
	return New(router, s, opts...)
}

// SignatureLifetime returns how long generated links stay valid, in seconds.
func (h *Helper) SignatureLifetime() int {
	return int(h.lifetime / time.Second)
}

// GenerateSignature returns a signed URL for route bound to userID and email.
// params are added to the URL as-is and covered by the signature; their order
// does not matter.
func (h *Helper) GenerateSignature(route, userID, email string, params map[string]string) (SignatureComponents, error) {
	if route == "" || userID == "" || email == "" {
		return SignatureComponents{}, ErrInvalidInput
	}

	u, err := h.router.URL(route)
	if err != nil {
		return SignatureComponents{}, fmt.Errorf("verifyemail: resolve route %q: %w", route, err)
	}

	signed, err := mergeParams(u.Query(), params)
	if err != nil {
		return SignatureComponents{}, err
	}

	generatedAt := time.Unix(h.now().Unix(), 0)
	expiresAt := generatedAt.Add(h.lifetime)
	expires := expiresAt.Unix()

	sig := h.signer.Sign(canonicalPayload(route, userID, email, expires, signed))
	if sig == "" {
		return SignatureComponents{}, ErrSigningFailed
	}

	q := make(url.Values, len(signed)+2)
	for k, v := range signed {
		q.Set(k, v)
	}
	q.Set(ParamExpires, strconv.FormatInt(expires, 10))
	q.Set(ParamSignature, sig)
	u.RawQuery = q.Encode()
	u.Fragment = ""

	return SignatureComponents{
		signedURL:   u.String(),
		generatedAt: generatedAt,
		expiresAt:   expiresAt,
		hashedToken: sig,
	}, nil
}

// IsValidSignature reports whether signedURL was generated for userID and email
// and has not expired. userID and email must come from the caller's session,
// not from the URL. An authentic but expired link returns ErrExpiredSignature;
// every other mismatch returns false with a nil error.
func (h *Helper) IsValidSignature(signedURL, userID, email string) (bool, error) {
	switch h.Verify(signedURL, userID, email) {
	case ResultValid:
		return true, nil
	case ResultExpired:
		return false, ErrExpiredSignature
	default:
		return false, nil
	}
}

// ValidateEmailConfirmation is IsValidSignature with sentinel errors:
// nil, ErrExpiredSignature or ErrInvalidSignature.
func (h *Helper) ValidateEmailConfirmation(signedURL, userID, email string) error {
	switch h.Verify(signedURL, userID, email) {
	case ResultValid:
		return nil
	case ResultExpired:
		return ErrExpiredSignature
	default:
		return ErrInvalidSignature
	}
}

// Verify checks signedURL and reports one of three outcomes. The signature is
// checked first, so ResultExpired is only ever returned for authentic links.
func (h *Helper) Verify(signedURL, userID, email string) Result {
	route, res := h.verify(signedURL, userID, email)
	if res != ResultValid {
		h.logger.Debug("signed url rejected",
			logger.Component(component),
			logger.Route(route),
			logger.UserID(userID),
			logger.Outcome(res),
		)
	}
	return res
}

func (h *Helper) verify(signedURL, userID, email string) (string, Result) {
	if signedURL == "" || userID == "" || email == "" {
		return "", ResultInvalid
	}

	u, err := url.Parse(signedURL)
	if err != nil {
		return "", ResultInvalid
	}
	route, ok := h.router.Route(u)
	if !ok {
		return "", ResultInvalid
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return route, ResultInvalid
	}

	expires, ok := parseExpires(q[ParamExpires])
	if !ok {
		return route, ResultInvalid
	}
	sig, ok := single(q[ParamSignature])
	if !ok || sig == "" {
		return route, ResultInvalid
	}

	params := make(map[string]string, len(q))
	for k, vs := range q {
		if k == ParamExpires || k == ParamSignature {
			continue
		}
		v, ok := single(vs)
		if !ok {
			return route, ResultInvalid
		}
		params[k] = v
	}

	if !h.signer.Verify(canonicalPayload(route, userID, email, expires, params), sig) {
		return route, ResultInvalid
	}
	if h.now().Unix() > expires {
		return route, ResultExpired
	}
	return route, ResultValid
}

// mergeParams combines the route's own query with the caller's parameters.
// Caller values win on conflict.
func mergeParams(base url.Values, params map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(base)+len(params))
	for k, vs := range base {
		v, ok := single(vs)
		if !ok {
			return nil, fmt.Errorf("verifyemail: route repeats query parameter %q", k)
		}
		out[k] = v
	}
	for k, v := range params {
		out[k] = v
	}
	for k := range out {
		if k == ParamExpires || k == ParamSignature {
			return nil, fmt.Errorf("%w: %q", ErrReservedParam, k)
		}
	}
	return out, nil
}

func single(vs []string) (string, bool) {
	if len(vs) != 1 {
		return "", false
	}
	return vs[0], true
}

// parseExpires accepts only the canonical decimal form so a timestamp has one spelling.
func parseExpires(vs []string) (int64, bool) {
	raw, ok := single(vs)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != raw {
		return 0, false
	}
	return n, true
}
