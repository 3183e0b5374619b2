// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package model

// Unit is an analyzed translation unit.
type Unit struct {
	// Filename is the name of the main file.
	Filename string

	// Content is the source text of the main file.
	Content []byte

	// Accesses lists all member accesses of the main file in pre-order.
	Accesses []Access
}

// Text returns the source text covered by r, or "" when r is out of bounds.
func (u *Unit) Text(r Range) string {
	if !r.Valid() || r.End > len(u.Content) {
		return ""
	}

	return string(u.Content[r.Start:r.End])
}
