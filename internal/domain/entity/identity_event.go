package entity

// IdentityEvent is a lifecycle notification about an external identity.
type IdentityEvent struct {
	Type string
	Data IdentityEventData
}

// IdentityEventData carries the identity attributes delivered with an event.
// All fields except ID are optional.
type IdentityEventData struct {
	ID                    string
	EmailAddresses        []IdentityEmail
	PrimaryEmailAddressID *string
	EmailAddress          *string
	FirstName             *string
	LastName              *string
	ImageURL              *string
	Username              *string
}

// IdentityEmail is one address attached to an identity.
type IdentityEmail struct {
	ID           string
	EmailAddress string
}

// PrimaryEmail returns the address whose ID matches the designated primary,
// falling back to the top-level email field, or nil when neither is present.
func (d IdentityEventData) PrimaryEmail() *string {
	if d.PrimaryEmailAddressID != nil {
		for _, email := range d.EmailAddresses {
			if email.ID == *d.PrimaryEmailAddressID && email.EmailAddress != "" {
				address := email.EmailAddress

				return &address
			}
		}
	}

	if d.EmailAddress != nil && *d.EmailAddress != "" {
		address := *d.EmailAddress

		return &address
	}

	return nil
}

// Profile builds the profile row described by the event.
func (d IdentityEventData) Profile() *Profile {
	return &Profile{
		ID:        d.ID,
		Email:     d.PrimaryEmail(),
		FirstName: nonEmpty(d.FirstName),
		LastName:  nonEmpty(d.LastName),
		AvatarURL: nonEmpty(d.ImageURL),
	}
}

// User builds the internal user row described by the event.
func (d IdentityEventData) User() *User {
	return &User{
		ExternalUserID:    d.ID,
		Email:             d.PrimaryEmail(),
		FirstName:         nonEmpty(d.FirstName),
		LastName:          nonEmpty(d.LastName),
		AdditionalContext: nonEmpty(d.Username),
	}
}

func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	v := *value

	return &v
}
