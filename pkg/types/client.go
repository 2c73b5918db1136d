package types

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Client is the entity held by a ClientRepository.
// The ID is assigned once at construction; Name and Location change only
// through Edit. Client is a value type, so copies are independent.
type Client struct {
	id       uuid.UUID
	name     string
	location string
}

// NewClient builds a Client from an externally generated ID, usually one
// obtained from ClientRepository.NextIdentity.
func NewClient(id uuid.UUID, name, location string) Client {
	return Client{id: id, name: name, location: location}
}

// ID returns the client identifier.
func (c Client) ID() uuid.UUID { return c.id }

// Name returns the client name.
func (c Client) Name() string { return c.name }

// Location returns the client location.
func (c Client) Location() string { return c.location }

// Edit replaces the mutable attributes of the client.
func (c *Client) Edit(name, location string) {
	c.name = name
	c.location = location
}

// clientJSON is the wire form used by the CLI.
type clientJSON struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
}

// MarshalJSON encodes the client as {"id","name","location"}.
func (c Client) MarshalJSON() ([]byte, error) {
	return json.Marshal(clientJSON{ID: c.id, Name: c.name, Location: c.location})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (c *Client) UnmarshalJSON(data []byte) error {
	var raw clientJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = NewClient(raw.ID, raw.Name, raw.Location)
	return nil
}
