package person

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person is an immutable identity record. The import pipeline owns mutation; this
// codebase only reads.
type Person struct {
	id          uuid.UUID
	fullName    string
	firstName   string
	lastName    string
	linkedInURL string
	createdAt   time.Time
}

func Hydrate(
	id uuid.UUID,
	fullName string,
	firstName string,
	lastName string,
	linkedInURL string,
	createdAt time.Time,
) Person {
	return Person{
		id:          id,
		fullName:    strings.TrimSpace(fullName),
		firstName:   strings.TrimSpace(firstName),
		lastName:    strings.TrimSpace(lastName),
		linkedInURL: strings.TrimSpace(linkedInURL),
		createdAt:   createdAt,
	}
}

func (p Person) ID() uuid.UUID        { return p.id }
func (p Person) FullName() string     { return p.fullName }
func (p Person) FirstName() string    { return p.firstName }
func (p Person) LastName() string     { return p.lastName }
func (p Person) LinkedInURL() string  { return p.linkedInURL }
func (p Person) CreatedAt() time.Time { return p.createdAt }
