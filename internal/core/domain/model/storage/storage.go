package storage

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrVendorStorageIsNotConstructed is returned when a VendorStorage instance
// was not created through the NewVendorStorage constructor.
var ErrVendorStorageIsNotConstructed = errors.New(
	"VendorStorage must be created via NewVendorStorage constructor")

// StockedMaterial describes one material available at a vendor storage:
// its unit price and the per-km delivery cost, both in minor currency units
// (the delivery cost may be fractional per km, the priced total is integral).
type StockedMaterial struct {
	MaterialID    kernel.UUID
	IsAvailable   bool
	UnitPrice     int64
	DeliveryPerKm float64
}

// VendorStorage is a vendor's pickup location: coordinates, a maximum
// delivery radius and the set of stocked materials. The core reads storages
// but never mutates them; activation management lives outside the core.
type VendorStorage struct {
	id            kernel.UUID
	vendorID      kernel.UUID
	location      kernel.GeoPoint
	maxRadiusKm   float64
	isActivated   bool
	materials     []StockedMaterial
	isConstructed bool
}

// NewVendorStorage creates a validated VendorStorage.
func NewVendorStorage(
	id, vendorID kernel.UUID,
	location kernel.GeoPoint,
	maxRadiusKm float64,
	isActivated bool,
	materials []StockedMaterial,
) (*VendorStorage, error) {
	s := &VendorStorage{
		isActivated:   isActivated,
		materials:     materials,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setVendorID(vendorID),
		s.setLocation(location),
		s.setMaxRadiusKm(maxRadiusKm),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the VendorStorage instance was properly constructed.
func (s *VendorStorage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrVendorStorageIsNotConstructed
	}
	return nil
}

// ID returns the storage's unique identifier.
func (s *VendorStorage) ID() kernel.UUID {
	return s.id
}

// VendorID returns the identifier of the owning vendor.
func (s *VendorStorage) VendorID() kernel.UUID {
	return s.vendorID
}

// Location returns the storage's pickup coordinates.
func (s *VendorStorage) Location() kernel.GeoPoint {
	return s.location
}

// MaxRadiusKm returns the maximum delivery radius in kilometers.
func (s *VendorStorage) MaxRadiusKm() float64 {
	return s.maxRadiusKm
}

// IsActivated reports whether the storage participates in matching.
func (s *VendorStorage) IsActivated() bool {
	return s.isActivated
}

// Materials returns all stocked material rows, available or not.
func (s *VendorStorage) Materials() []StockedMaterial {
	return s.materials
}

// AvailableMaterialIDs returns the identifiers of materials currently
// available at the storage. The matching engine restricts candidate orders
// to this set.
func (s *VendorStorage) AvailableMaterialIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(s.materials))
	for _, m := range s.materials {
		if m.IsAvailable {
			ids = append(ids, m.MaterialID)
		}
	}
	return ids
}

// MaterialByID returns the stocked material row for the given material.
// Fails with errs.ErrObjectNotFound when the storage does not stock it or it
// is unavailable.
func (s *VendorStorage) MaterialByID(materialID kernel.UUID) (StockedMaterial, error) {
	for _, m := range s.materials {
		if m.MaterialID.IsEqual(materialID) && m.IsAvailable {
			return m, nil
		}
	}
	return StockedMaterial{}, errs.NewObjectNotFoundError("stocked material", materialID.String())
}

func (s *VendorStorage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *VendorStorage) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.vendorID = id
	return nil
}

func (s *VendorStorage) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *VendorStorage) setMaxRadiusKm(radius float64) error {
	if radius <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max delivery radius is invalid", fmt.Errorf("%g is not greater than 0", radius))
	}
	s.maxRadiusKm = radius
	return nil
}
