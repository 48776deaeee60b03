// Package entities generates INSERT, UPDATE, DELETE and SELECT statements from
// an explicit table mapping and runs them through sqlx.
//
// An entity is a struct whose pointer implements Entity: Table describes the
// table, schema, columns and keys, Params returns the bind values and SetKey
// receives the generated key after an insert. The methods are usually
// generated by cmd/entitygen from struct tags:
//
//	//entities:table schema=whatever name=Sample
//	type Sample struct {
//		Id          int64  `db:"Id" entity:"key"`
//		Name        string `db:"Name" entity:"altkey"`
//		Description string `db:"Description"`
//	}
//
// Reads scan result columns into fields by their db tag, or by the field
// name unchanged when untagged, matching the default column of a Column.
// Mapper exposes that rule for a caller's own *sqlx.DB.
//
// Statements are built once per entity type by the Store's StatementBuilder
// and cached:
//
//	store := entities.NewStore(entities.NewBuilder(entities.SQLServer()))
//	s, err := entities.Insert[Sample, int64](ctx, store, db, &Sample{Name: "a"})
//
// With the SQL Server dialect Sample yields
//
//	INSERT INTO [whatever].[Sample] ([Name], [Description]) VALUES (@Name, @Description); SELECT SCOPE_IDENTITY()
package entities
