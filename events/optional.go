// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a payload field that remembers whether it was sent at all.
// The zero value is an absent field. A field that was sent as null is
// specified but carries no value.
type Optional[T any] struct {
	value     T
	specified bool
	null      bool
}

// Some returns a specified Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, specified: true}
}

// Null returns a specified Optional that was sent as null.
func Null[T any]() Optional[T] {
	return Optional[T]{specified: true, null: true}
}

// Specified reports if the field was present in the payload, null or not.
func (o Optional[T]) Specified() bool {
	return o.specified
}

// IsNull reports if the field was present and null.
func (o Optional[T]) IsNull() bool {
	return o.specified && o.null
}

// Get returns the value and true if the field was present and not null.
func (o Optional[T]) Get() (v T, ok bool) {
	if !o.specified || o.null {
		return
	}
	return o.value, true
}

// Or returns the value, or def when there is none.
func (o Optional[T]) Or(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

// Ptr returns a pointer to a copy of the value, nil when there is none.
func (o Optional[T]) Ptr() *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}

// IsZero lets omitzero drop absent fields when marshalling.
func (o Optional[T]) IsZero() bool {
	return !o.specified
}

// MarshalJSON writes null for null and absent fields, the value otherwise.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.specified || o.null {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON is only called by encoding/json when the key is present,
// which is what marks the field as specified.
func (o *Optional[T]) UnmarshalJSON(data []byte) (err error) {
	var zero T

	o.specified = true
	if string(data) == "null" {
		o.value, o.null = zero, true
		return
	}

	o.null = false
	if err = json.Unmarshal(data, &o.value); err != nil {
		o.value = zero
	}
	return
}
