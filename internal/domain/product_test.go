package domain

import (
	"reflect"
	"testing"
)

func TestProductIDs(t *testing.T) {
	products := []Product{*NewProduct("soda", "sugar", "lt", 2), {ID: 7}}
	products[0].ID = 3

	got := ProductIDs(products)
	if !reflect.DeepEqual(got, []int64{3, 7}) {
		t.Errorf("Expected [3 7], got %v", got)
	}
	if len(ProductIDs(nil)) != 0 {
		t.Error("Expected no ids for no products")
	}
}
