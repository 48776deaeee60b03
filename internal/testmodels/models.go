// Package testmodels holds the entities used by the package tests.
package testmodels

import "time"

//go:generate go run github.com/gtechsltn/entities/cmd/entitygen

//entities:table name=Sample schema=whatever
type Sample struct {
	Id          int64  `db:"Id" entity:"key"`
	Name        string `db:"Name" entity:"altkey"`
	Description string `db:"Description"`
}

// ExoticEntity covers aliasing and insert-only / update-only timestamps.
//
//entities:table
type ExoticEntity struct {
	Id            int64      `db:"Id" entity:"key"`
	Name          string     `db:"Name"`
	Value         int        `db:"Value"`
	AliasedColumn string     `db:"Aliased"`
	DateCreated   time.Time  `db:"DateCreated" entity:"noupdate,modified=DateModified"`
	DateModified  *time.Time `db:"DateModified" entity:"noinsert"`
}

//entities:table
type CompositeKeyEntity struct {
	Id          int64  `db:"Id" entity:"key"`
	SomethingId int64  `db:"SomethingId" entity:"altkey"`
	Name        string `db:"Name" entity:"altkey"`
	Description string `db:"Description"`
}
