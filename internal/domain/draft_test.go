package domain

import (
	"errors"
	"testing"

	"shipfront/internal/apperr"
)

func validDraft() *ShipmentDraft {
	w := 12.5
	return &ShipmentDraft{
		PickupLocation:   "Warehouse A",
		DeliveryLocation: "14 Harbor St",
		Weight:           &w,
	}
}

func TestShipmentDraft_Validate_OK(t *testing.T) {
	t.Parallel()

	if err := validDraft().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShipmentDraft_Validate_MissingLocations(t *testing.T) {
	t.Parallel()

	d := validDraft()
	d.PickupLocation = "   "
	if err := d.Validate(); !errors.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	d = validDraft()
	d.DeliveryLocation = ""
	if err := d.Validate(); !errors.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestShipmentDraft_Validate_CODRequiresAmount(t *testing.T) {
	t.Parallel()

	d := validDraft()
	d.IsCOD = true
	err := d.Validate()
	if !errors.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if apperr.Detail(err) != "Please enter a valid COD amount" {
		t.Fatalf("unexpected detail: %q", apperr.Detail(err))
	}

	zero := 0.0
	d.CODAmount = &zero
	if err := d.Validate(); !errors.Is(err, apperr.Validation) {
		t.Fatalf("zero COD amount should be rejected, got %v", err)
	}

	amount := 250.0
	d.CODAmount = &amount
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShipmentDraft_Validate_DropsCODAmountWhenNotCOD(t *testing.T) {
	t.Parallel()

	d := validDraft()
	amount := 100.0
	d.CODAmount = &amount
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.CODAmount != nil {
		t.Fatal("cod_amount should be cleared when is_cod is false")
	}
}

func TestShipmentDraft_Validate_NonPositiveWeight(t *testing.T) {
	t.Parallel()

	d := validDraft()
	w := -1.0
	d.Weight = &w
	if err := d.Validate(); !errors.Is(err, apperr.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
