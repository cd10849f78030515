// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a booking is successfully
// allocated. It contains enough information for downstream consumers to
// log or notify without querying the entity store.
type ReservationConfirmedEvent struct {
	ReservationID  string `json:"reservation_id"`
	RestaurantName string `json:"restaurant_name"`
	ZoneName       string `json:"zone_name"`
	TableNumber    string `json:"table_number"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"party_size"`
	CustomerName   string `json:"customer_name"`
	ConfirmedAt    string `json:"confirmed_at"`
}
