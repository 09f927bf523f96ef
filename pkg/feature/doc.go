// Package feature classifies requested locale-data feature names into the
// categories the aggregation engine dispatches on.
package feature
