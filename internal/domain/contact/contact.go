// Package contact models the customer address book. Contacts are independent
// of the user directory and of tickets; a ticket's embedded customer is not
// kept in sync with a contact of the same name.
package contact

import (
	"fmt"

	"ghitdesk/internal/domain/common"
)

type Contact struct {
	ID              string             `json:"id" yaml:"id"`
	Name            string             `json:"name" yaml:"name"`
	Email           string             `json:"email,omitempty" yaml:"email,omitempty"`
	Phone           string             `json:"phone,omitempty" yaml:"phone,omitempty"`
	Avatar          string             `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Document        string             `json:"document,omitempty" yaml:"document,omitempty"`
	PrimaryChannel  common.ChannelType `json:"primaryChannel" yaml:"primary_channel"`
	LastInteraction string             `json:"lastInteraction" yaml:"last_interaction"`
	Tags            []string           `json:"tags" yaml:"tags"`
	Rating          float64            `json:"rating" yaml:"rating"`
	Company         string             `json:"company,omitempty" yaml:"company,omitempty"`
}

func (c Contact) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("contact ID is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !c.PrimaryChannel.IsValid() {
		return fmt.Errorf("invalid primary channel: %s", c.PrimaryChannel)
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("rating must be between 0.0 and 5.0")
	}
	return nil
}

// Update is a shallow partial update; nil fields are left unchanged.
type Update struct {
	Name            *string
	Email           *string
	Phone           *string
	Avatar          *string
	Document        *string
	PrimaryChannel  *common.ChannelType
	LastInteraction *string
	Tags            []string
	Rating          *float64
	Company         *string
}

// Apply merges the update into the contact.
func (c *Contact) Apply(u Update) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Avatar != nil {
		c.Avatar = *u.Avatar
	}
	if u.Document != nil {
		c.Document = *u.Document
	}
	if u.PrimaryChannel != nil {
		c.PrimaryChannel = *u.PrimaryChannel
	}
	if u.LastInteraction != nil {
		c.LastInteraction = *u.LastInteraction
	}
	if u.Tags != nil {
		c.Tags = u.Tags
	}
	if u.Rating != nil {
		c.Rating = *u.Rating
	}
	if u.Company != nil {
		c.Company = *u.Company
	}
}
