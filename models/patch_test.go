package models

import (
	"reflect"
	"testing"
	"time"
)

func TestRoomPatchEmptyLeavesRoomUntouched(t *testing.T) {
	room := Room{
		ID:            1,
		RoomNumber:    "101",
		RoomType:      "standard",
		PricePerNight: 100,
		Capacity:      2,
		IsAvailable:   true,
	}

	got := RoomPatch{}.Apply(room)
	if !reflect.DeepEqual(got, room) {
		t.Fatalf("empty patch changed the room: %+v", got)
	}
}

func TestRoomPatchAppliesOnlySetFields(t *testing.T) {
	room := Room{RoomNumber: "101", PricePerNight: 100, Capacity: 2}
	price := 120.0

	got := RoomPatch{PricePerNight: &price}.Apply(room)
	if got.PricePerNight != 120 {
		t.Errorf("price = %v, want 120", got.PricePerNight)
	}
	if got.RoomNumber != "101" || got.Capacity != 2 {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUserPatchNeverAppliesPassword(t *testing.T) {
	user := User{Email: "a@b.c", PasswordHash: "hashed"}
	pw := "plaintext"
	name := "New Name"

	got := UserPatch{Password: &pw, FullName: &name}.Apply(user)
	if got.PasswordHash != "hashed" {
		t.Errorf("password hash changed by Apply; hashing is the service's job")
	}
	if got.FullName != "New Name" {
		t.Errorf("full name = %q, want New Name", got.FullName)
	}
}

func TestBookingPatchDetectsDateChange(t *testing.T) {
	in := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	booking := Booking{CheckIn: in, CheckOut: out, GuestsCount: 2, Status: BookingStatusPending}

	newOut := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	got, changes := BookingPatch{CheckOut: &newOut}.Apply(booking)

	if !changes.Dates {
		t.Error("Dates change not detected")
	}
	if changes.Guests || changes.Status || changes.Offers {
		t.Errorf("unexpected change flags: %+v", changes)
	}
	if !got.CheckOut.Equal(newOut) {
		t.Errorf("checkout = %v, want %v", got.CheckOut, newOut)
	}
	if !got.CheckIn.Equal(in) {
		t.Errorf("checkin moved: %v", got.CheckIn)
	}
}

func TestBookingPatchSameDateIsNoChange(t *testing.T) {
	out := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	booking := Booking{CheckOut: out, Status: BookingStatusPending}

	sameOut := out
	_, changes := BookingPatch{CheckOut: &sameOut}.Apply(booking)
	if changes.Dates {
		t.Error("resubmitting the same date should not count as a date change")
	}
}

func TestBookingPatchStatusAndOffers(t *testing.T) {
	booking := Booking{Status: BookingStatusPending}
	confirmed := BookingStatusConfirmed
	offerIDs := []uint{1, 2}

	got, changes := BookingPatch{Status: &confirmed, OfferIDs: &offerIDs}.Apply(booking)
	if !changes.Status {
		t.Error("Status change not detected")
	}
	if !changes.Offers {
		t.Error("Offers change not detected")
	}
	if got.Status != BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", got.Status)
	}
}

func TestOfferAssignableTo(t *testing.T) {
	room := Room{ID: 5, AssignableOffers: []Offer{{ID: 9}}}

	global := Offer{ID: 1, OfferType: OfferTypeGlobal}
	if !global.AssignableTo(room) {
		t.Error("global offers are assignable to every room")
	}

	assigned := Offer{ID: 9, OfferType: OfferTypeRoomSpecific}
	if !assigned.AssignableTo(room) {
		t.Error("assigned room-specific offer should be assignable")
	}

	unassigned := Offer{ID: 2, OfferType: OfferTypeRoomSpecific}
	if unassigned.AssignableTo(room) {
		t.Error("unassigned room-specific offer must not be assignable")
	}
}
