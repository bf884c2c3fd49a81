package view

import "bagisadmin/internal/auth"

// Router decides which screen is active. Session state feeds in through
// ApplySession; explicit navigation is ignored unless a session is live, and
// losing the session forces the Login view from anywhere.
type Router struct {
	authed  bool
	view    View
	overlay *OverlayTarget
}

// NewRouter starts on the Login view with no session.
func NewRouter() *Router {
	return &Router{view: Login{}}
}

// View returns the active screen.
func (r *Router) View() View {
	return r.view
}

// Overlay returns the donations overlay target, if one is open.
func (r *Router) Overlay() (OverlayTarget, bool) {
	if r.overlay == nil {
		return OverlayTarget{}, false
	}
	return *r.overlay, true
}

// ApplySession folds a session state change into the navigation state.
func (r *Router) ApplySession(state auth.State) {
	switch state.Kind {
	case auth.StateUnauthenticated:
		// The guard overrides every other transition.
		r.authed = false
		r.view = Login{}
		r.overlay = nil
	case auth.StateAuthenticated:
		wasAuthed := r.authed
		r.authed = true
		if _, onLogin := r.view.(Login); onLogin && !wasAuthed {
			r.view = ListShelters{}
		}
	case auth.StateAuthenticating, auth.StateError:
		// Transient or action-level failure: session state is unchanged,
		// so navigation state is too.
	}
}

// Go navigates to the given view. Without a session it is a no-op and the
// forced Login view stays in place.
func (r *Router) Go(v View) {
	if !r.authed {
		return
	}
	r.view = v
}

// EditShelter opens the shelter editor for the given record and closes the
// donations overlay.
func (r *Router) EditShelter(id string) {
	if !r.authed {
		return
	}
	r.view = EditShelter{ShelterID: id}
	r.overlay = nil
}

// EditAnimal opens the animal editor for the given record and closes the
// donations overlay.
func (r *Router) EditAnimal(id string) {
	if !r.authed {
		return
	}
	r.view = EditAnimal{AnimalID: id}
	r.overlay = nil
}

// ShelterFormClosed returns from a shelter form to the shelter list.
func (r *Router) ShelterFormClosed() {
	if !r.authed {
		return
	}
	r.view = ListShelters{}
}

// AnimalFormClosed returns from an animal form to the animal list.
func (r *Router) AnimalFormClosed() {
	if !r.authed {
		return
	}
	r.view = ListAnimals{}
}

// PriceFormClosed leaves the price form. It lands on the shelter list because
// that is the console's default view, not because prices relate to shelters.
func (r *Router) PriceFormClosed() {
	if !r.authed {
		return
	}
	r.view = ListShelters{}
}

// OpenDonationsOverlay shows the donations modal for an animal without
// changing the underlying view.
func (r *Router) OpenDonationsOverlay(animalID, animalName string) {
	if !r.authed {
		return
	}
	r.overlay = &OverlayTarget{AnimalID: animalID, AnimalName: animalName}
}

// CloseDonationsOverlay hides the donations modal.
func (r *Router) CloseDonationsOverlay() {
	r.overlay = nil
}
