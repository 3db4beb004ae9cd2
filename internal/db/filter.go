package db

import (
	"go.mongodb.org/mongo-driver/bson"
)

// FilterBuilder helps build MongoDB filters fluently
type FilterBuilder struct {
	filter bson.M
}

// NewFilter creates a new FilterBuilder
func NewFilter() *FilterBuilder {
	return &FilterBuilder{filter: bson.M{}}
}

// Eq adds an equality condition
func (f *FilterBuilder) Eq(field string, value interface{}) *FilterBuilder {
	f.filter[field] = value
	return f
}

// ID adds an equality condition on the document ID
func (f *FilterBuilder) ID(id string) *FilterBuilder {
	f.filter["_id"] = id
	return f
}

// ElemMatch adds an $elemMatch condition requiring one array element to
// satisfy every listed field condition at once.
func (f *FilterBuilder) ElemMatch(field string, conditions bson.M) *FilterBuilder {
	f.filter[field] = bson.M{"$elemMatch": conditions}
	return f
}

// Build returns the final bson.M filter
func (f *FilterBuilder) Build() bson.M {
	return f.filter
}
