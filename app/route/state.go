package route

import "sync"

// Reader is the read-only side of AppRoute handed to views that only display
// navigation state
type Reader interface {
	Current() Route
	Subscribe(fn func(Route)) *Subscription
}

// AppRoute holds the route currently shown and the callbacks watching it
type AppRoute struct {
	mu     sync.Mutex
	route  Route
	subs   []*Subscription
	nextID int

	// Internal observers, kept for the lifetime of the container
	subscriptions []*Subscription
}

// Subscription is a registered change callback. Cancel removes it.
type Subscription struct {
	id    int
	fn    func(Route)
	owner *AppRoute // Set once by Subscribe, read-only afterwards
}

var _ Reader = (*AppRoute)(nil)

// New creates the route container with Home selected
func New() *AppRoute {
	a := &AppRoute{route: Home()}
	a.subscriptions = append(a.subscriptions, a.Subscribe(a.onRouteChanged))
	return a
}

// onRouteChanged runs first on every route change. It is the hook for side
// effects of navigation and does nothing yet.
func (a *AppRoute) onRouteChanged(Route) {}

// Current returns a snapshot of the active route
func (a *AppRoute) Current() Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

// Navigate makes r the active route and notifies subscribers in registration
// order. Returns false when r was already active, in which case nobody is notified.
func (a *AppRoute) Navigate(r Route) bool {
	a.mu.Lock()
	if a.route == r {
		a.mu.Unlock()
		return false
	}
	a.route = r
	subs := make([]*Subscription, len(a.subs))
	copy(subs, a.subs)
	a.mu.Unlock()

	// Callbacks may navigate or subscribe again, so they run unlocked
	for _, s := range subs {
		s.fn(r)
	}
	return true
}

// Subscribe registers fn to be called with the new route after every change
func (a *AppRoute) Subscribe(fn func(Route)) *Subscription {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	s := &Subscription{id: a.nextID, fn: fn, owner: a}
	a.subs = append(a.subs, s)
	return s
}

// Cancel stops further notifications. Calling it again is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.owner == nil {
		return
	}
	a := s.owner
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, other := range a.subs {
		if other.id == s.id {
			a.subs = append(a.subs[:i:i], a.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of active subscriptions, internal ones included
func (a *AppRoute) Subscribers() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.subs)
}
