// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Diagnosis is the predicate function for diagnosis builders.
type Diagnosis func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
