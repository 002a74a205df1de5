// Package state contains the two application state machines — auth and
// feed — as independently testable units. Each machine pairs pure
// reducers over a state value with an effect-executing operation layer
// that talks to the API client and the session store.
package state

// Route identifies a UI navigation target. The machines emit routes; what
// a route looks like is the presentation layer's business.
type Route string

const (
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
	RouteHome     Route = "home"
)

// Navigator receives navigation signals from the state machines.
type Navigator interface {
	Replace(route Route)
}
