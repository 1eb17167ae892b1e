package entity

import "time"

// FlowType discriminates which login flow a challenge was issued for.
// A code issued for the owner flow must never validate an employee
// attempt on the same key namespace, and vice versa.
type FlowType string

const (
	// FlowOwnerPhone is the owner login flow, keyed by E.164 phone number.
	FlowOwnerPhone FlowType = "owner_phone"
	// FlowEmployeeEmail is the employee login flow, keyed by email address.
	FlowEmployeeEmail FlowType = "employee_email"
)

// String returns the string representation of the FlowType.
func (f FlowType) String() string {
	return string(f)
}

// Challenge is the server-held record of an outstanding one-time code for
// a subject. At most one challenge is live per subject; issuing a new one
// silently replaces the old.
type Challenge struct {
	Subject   string    // Phone number (owner flow) or email (employee flow). Storage key.
	Code      string    // 6-digit numeric string, secret until consumed.
	FlowType  FlowType  // Which login flow the code belongs to.
	OwnerUID  string    // Employee flow only: the employee ID consumed when minting the token.
	CreatedAt time.Time // Issuance timestamp.
	ExpiresAt time.Time // Absolute deadline, not sliding.
}

// ExpiredAt reports whether the challenge is past its deadline at the
// given instant. The deadline itself counts as expired.
func (c *Challenge) ExpiredAt(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Matches compares a claimed code against the stored code. Codes are
// numeric strings, so exact equality with no normalization.
func (c *Challenge) Matches(code string) bool {
	return c.Code != "" && c.Code == code
}
