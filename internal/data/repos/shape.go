package repos

import "gorm.io/gorm"

// Load names one relation path to eager-load, with optional filter
// conditions applied to the loaded collection.
type Load struct {
	Path string
	Args []interface{}
}

// Shape is the declarative fetch description for a query: the exact set of
// relation paths resolved alongside the root rows. Each specialized query
// declares its shape as a value, so the contract of "what comes back loaded"
// is stated in one place and testable against the returned graph.
type Shape []Load

func With(paths ...string) Shape {
	s := make(Shape, 0, len(paths))
	for _, p := range paths {
		s = append(s, Load{Path: p})
	}
	return s
}

func (s Shape) Filtered(path string, query string, args ...interface{}) Shape {
	conds := append([]interface{}{query}, args...)
	return append(s, Load{Path: path, Args: conds})
}

func (s Shape) apply(tx *gorm.DB) *gorm.DB {
	for _, l := range s {
		tx = tx.Preload(l.Path, l.Args...)
	}
	return tx
}
