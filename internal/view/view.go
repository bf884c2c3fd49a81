// Package view holds the console's navigation state machine. It is pure
// state: no UI toolkit or store access, so the transition rules are testable
// with a fake session feed.
package view

// View is the active screen. Each variant carries exactly the data that is
// valid for it, so combinations like "shelter list with an animal being
// edited" cannot be represented.
type View interface {
	viewTag()
}

// Login is the unauthenticated screen and the initial view.
type Login struct{}

// ListShelters is the default landing view after sign-in.
type ListShelters struct{}

// AddShelter is the blank shelter form.
type AddShelter struct{}

// EditShelter is the shelter form pre-filled with an existing record.
type EditShelter struct{ ShelterID string }

// ListAnimals shows all animal records.
type ListAnimals struct{}

// AddAnimal is the blank animal form.
type AddAnimal struct{}

// EditAnimal is the animal form pre-filled with an existing record.
type EditAnimal struct{ AnimalID string }

// ManagePrices is the donation item price form.
type ManagePrices struct{}

func (Login) viewTag()        {}
func (ListShelters) viewTag() {}
func (AddShelter) viewTag()   {}
func (EditShelter) viewTag()  {}
func (ListAnimals) viewTag()  {}
func (AddAnimal) viewTag()    {}
func (EditAnimal) viewTag()   {}
func (ManagePrices) viewTag() {}

// OverlayTarget identifies the animal whose donations are shown in the modal
// overlay. The overlay is orthogonal to the underlying view.
type OverlayTarget struct {
	AnimalID   string
	AnimalName string
}
