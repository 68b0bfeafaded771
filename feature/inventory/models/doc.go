// Package models defines the database representation of catalog products.
//
// ProductRecord maps to the products table. Its gorm tags are also the
// expected schema the catalog audit compares the live table against, so
// every persisted column carries an explicit column name and, where the
// type matters, an explicit type.
package models
