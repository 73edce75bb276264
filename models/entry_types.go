// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package models

import "fmt"

// Entry type vocabulary. Every PlanEntry carries exactly one of these tags;
// unknown tags from legacy records normalize to TypeLocation.
const (
	TypeLocation  = "location"
	TypeFlight    = "flight"
	TypeHotel     = "hotel"
	TypeCarRental = "car_rental"
	TypeTrain     = "train"
	TypeActivity  = "activity"
	TypeNote      = "note"
)

// EntryTypeSpec describes one entry type: its display label, the meta keys
// its payload may carry, and how to derive a display name from that payload.
type EntryTypeSpec struct {
	Label      string
	MetaFields []string
	DeriveName func(meta Meta) string
}

// EntryTypes maps each vocabulary tag to its spec.
var EntryTypes = map[string]EntryTypeSpec{
	TypeLocation: {
		Label:      "Location",
		MetaFields: nil,
	},
	TypeFlight: {
		Label: "Flight",
		MetaFields: []string{
			"airline", "flightNumber", "departureStation", "arrivalStation",
			"departureTime", "arrivalTime", "confirmationNumber",
		},
		DeriveName: deriveFlightName,
	},
	TypeHotel: {
		Label: "Hotel",
		MetaFields: []string{
			"confirmationNumber", "checkIn", "checkOut", "nights", "roomType",
		},
		DeriveName: func(meta Meta) string {
			if v := meta["roomType"]; v != "" {
				return string(v)
			}
			return "Hotel Booking"
		},
	},
	TypeCarRental: {
		Label: "Car Rental",
		MetaFields: []string{
			"company", "pickupLocation", "dropoffLocation",
			"pickupTime", "dropoffTime", "confirmationNumber",
		},
		DeriveName: func(meta Meta) string {
			if v := meta["company"]; v != "" {
				return fmt.Sprintf("%s Rental", v)
			}
			return "Car Rental"
		},
	},
	TypeTrain: {
		Label: "Train",
		MetaFields: []string{
			"operator", "departureStation", "arrivalStation",
			"departureTime", "arrivalTime",
		},
		DeriveName: deriveTrainName,
	},
	TypeActivity: {
		Label:      "Activity",
		MetaFields: []string{"venue", "time", "confirmationNumber"},
		DeriveName: func(meta Meta) string {
			if v := meta["venue"]; v != "" {
				return string(v)
			}
			return "Activity"
		},
	},
	TypeNote: {
		Label:      "Note",
		MetaFields: nil,
		DeriveName: func(Meta) string { return "Note" },
	},
}

// CreatableTypes lists the types a user can create directly from the entry
// creator surface. Locations are created through the location picker instead.
var CreatableTypes = []string{
	TypeFlight, TypeHotel, TypeCarRental, TypeTrain, TypeActivity, TypeNote,
}

// TypesWithConfirmation lists the types whose meta may carry a
// confirmationNumber, possibly encrypted.
var TypesWithConfirmation = []string{
	TypeFlight, TypeHotel, TypeCarRental, TypeActivity,
}

// KnownType reports whether tag belongs to the entry type vocabulary.
func KnownType(tag string) bool {
	_, ok := EntryTypes[tag]
	return ok
}

func deriveFlightName(meta Meta) string {
	number := meta["flightNumber"]
	from := meta["departureStation"]
	to := meta["arrivalStation"]

	switch {
	case number != "" && from != "" && to != "":
		return fmt.Sprintf("%s %s → %s", number, from, to)
	case number != "":
		return string(number)
	case from != "" && to != "":
		return fmt.Sprintf("%s %s", from, to)
	default:
		return "Flight"
	}
}

func deriveTrainName(meta Meta) string {
	from := meta["departureStation"]
	to := meta["arrivalStation"]

	if from != "" && to != "" {
		return fmt.Sprintf("%s → %s", from, to)
	}
	if op := meta["operator"]; op != "" {
		return string(op)
	}
	return "Train"
}
