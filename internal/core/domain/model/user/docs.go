// Package user contains the User aggregate: a sender or receiver account
// identified by a unique phone number. Users authenticate with phone+password
// (only the bcrypt digest is ever stored) and carry an optional address and
// geo point that delivery creation copies into pickup/dropoff fields.
package user
