// Package model holds the resource shapes exposed over the API.
//
// Every resource has three shapes: the persisted record, the payload
// required to create one, and the payload used to update one. Payloads
// validate themselves before anything touches the database.
package model
