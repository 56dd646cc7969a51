// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], and [String].
// Beyond the primitives, [Natural] orders strings by natural-sort comparison
// (so "item2" sorts before "item10"), and [Collated] orders strings by a
// locale-aware collation key. These types are designed to work with sorted
// collections like the red-black tree map
// (see [github.com/amp-labs/amp-ordered/treemap.New]).
//
// The Sortable interface combines equality comparison (Equals) with ordering
// (LessThan). Implementations must keep the two consistent: keys that compare
// equal must not order before one another.
//
// # Usage
//
// Use the provided wrapper types when you need sorted collections:
//
//	// Create a sorted map keyed by integers
//	m := treemap.New[sortable.Int, string]()
//	m.Put(sortable.Int(42), "a")
//	m.Put(sortable.Int(10), "b")
//	m.Put(sortable.Int(25), "c")
//
//	// Entries are yielded in sorted key order: 10, 25, 42
//	for k, v := range m.Seq() {
//	    fmt.Println(int(k), v)
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types (like red-black trees)
// may not be thread-safe and require external synchronization for concurrent access.
package sortable
