package record_test

import (
	"fmt"

	"github.com/katalvlaran/dataprovider/record"
)

// ExampleParse decodes a YAML mapping without losing key order.
func ExampleParse() {
	r, err := record.Parse([]byte("tom: 1.0\n1: One\nactor: Kelly\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, k := range r.Keys() {
		v, _ := r.Lookup(k)
		fmt.Println(k, v.Kind(), v)
	}

	// Output:
	// tom float64 1
	// 1 text One
	// actor text Kelly
}
