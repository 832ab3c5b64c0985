// internal/router/navigator.go
package router

// Navigator is implemented by the front end hosting the screens. Screens
// never navigate directly; they hand the destination to the host.
type Navigator interface {
	Navigate(Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }
