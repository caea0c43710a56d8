package routes

import "errors"

var (
	ErrUnknownRoute    = errors.New("routes: unknown route")
	ErrInvalidRouteURL = errors.New("routes: route URL must be absolute")
	ErrDuplicateRoute  = errors.New("routes: two routes share one URL")
	ErrMissingRouter   = errors.New("routes: router is required")
)
