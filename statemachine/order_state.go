package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// Actors that can drive an order through its lifecycle.
const (
	ActorRestaurant = "restaurant"
	ActorCustomer   = "customer"
	ActorSystem     = "system"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Payment confirmation moves the order to paid; the restaurant can
	// also confirm manually for out-of-band payments.
	{From: models.StatusPlaced, To: models.StatusPaid, Actor: ActorSystem},
	{From: models.StatusPlaced, To: models.StatusPaid, Actor: ActorRestaurant},
	// Kitchen starts working on a paid order
	{From: models.StatusPaid, To: models.StatusInProgress, Actor: ActorRestaurant},
	// Order leaves the restaurant
	{From: models.StatusInProgress, To: models.StatusOutForDelivery, Actor: ActorRestaurant},
	// Order reaches the customer
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: ActorRestaurant},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// IsValidStatus reports whether s is a member of the status enumeration.
func IsValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusPlaced, models.StatusPaid, models.StatusInProgress,
		models.StatusOutForDelivery, models.StatusDelivered:
		return true
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if !IsValidStatus(to) {
		return errors.New("unknown order status '" + string(to) + "'")
	}
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
