package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNewsletterCountry is preselected on signup forms.
const DefaultNewsletterCountry = "United States"

// NewsletterCountries are the countries offered by the signup form.
var NewsletterCountries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Germany",
	"France",
	"Australia",
	"Japan",
	"Other",
}

// NewsletterSubscription is one email on the mailing list.
type NewsletterSubscription struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Country   string    `json:"country"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
}
