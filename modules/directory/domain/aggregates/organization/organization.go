package organization

import (
	"strings"

	"github.com/google/uuid"
)

type Type string

const (
	TypeTeam   Type = "Team"
	TypeLeague Type = "League"
	TypeBrand  Type = "Brand"
	TypeAgency Type = "Agency"
	TypeVendor Type = "Vendor"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeTeam, TypeLeague, TypeBrand, TypeAgency, TypeVendor:
		return true
	}
	return false
}

type Organization struct {
	id          uuid.UUID
	name        string
	orgType     Type
	sport       string
	industry    string
	parentOrgID *uuid.UUID
	isActive    bool
}

func Hydrate(
	id uuid.UUID,
	name string,
	orgType Type,
	sport string,
	industry string,
	parentOrgID *uuid.UUID,
	isActive bool,
) Organization {
	return Organization{
		id:          id,
		name:        strings.TrimSpace(name),
		orgType:     orgType,
		sport:       strings.TrimSpace(sport),
		industry:    strings.TrimSpace(industry),
		parentOrgID: parentOrgID,
		isActive:    isActive,
	}
}

func (o Organization) ID() uuid.UUID           { return o.id }
func (o Organization) Name() string            { return o.name }
func (o Organization) OrgType() Type           { return o.orgType }
func (o Organization) Sport() string           { return o.sport }
func (o Organization) Industry() string        { return o.industry }
func (o Organization) ParentOrgID() *uuid.UUID { return o.parentOrgID }
func (o Organization) IsActive() bool          { return o.isActive }
