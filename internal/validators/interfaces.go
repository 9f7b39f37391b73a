// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the animal catalog.
//
// A [Validator] checks one value (an [models.Animal] on create, an
// [models.AnimalFields] on update or an animal id) and returns one of the
// sentinel errors in errors.go. The service layer wraps it around the
// repository so handlers never see unchecked input reach the store.
package validators

import "context"

// Validator checks obj. When fields is empty the implementation applies its
// default rule set for the dynamic type of obj; otherwise only the named
// rules run, in order, and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
